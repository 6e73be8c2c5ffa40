package externalapi

// FallbackBlockHeader is the header of a fallback block.
type FallbackBlockHeader struct {
	// FallbackDSEpochNum is the DS epoch the fallback applies within.
	FallbackDSEpochNum uint64
	FallbackEpochNum   uint64
	// ShardID identifies which shard's committee co-signed this block.
	ShardID      uint32
	LeaderPubKey PublicKey
	LeaderPeer   Peer
}

// FallbackBlock is the replacement path taken when DS consensus fails.
// Unlike DS and VC blocks it is co-signed by a single shard's committee,
// not by the DS committee.
type FallbackBlock struct {
	Header FallbackBlockHeader
	CoSigs CoSignatures
}

// FallbackBlockWithShards bundles a fallback block with the sharding
// structure it was produced under. The structure must hash to the
// sharding hash committed by the previous DS block, which is what lets a
// verifier locate the signing shard's committee.
type FallbackBlockWithShards struct {
	Block  FallbackBlock
	Shards ShardingStructure
}

func (*FallbackBlockWithShards) isDirectoryBlock() {}
