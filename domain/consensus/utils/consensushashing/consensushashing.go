package consensushashing

import (
	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensusserialization"
	"github.com/shardchain/shardchaind/domain/consensus/utils/hashes"
)

// DSBlockHash returns the hash of a DS block, computed over its
// canonically serialized header.
func DSBlockHash(block *externalapi.DSBlock) *externalapi.Hash {
	return hashes.HashData(consensusserialization.SerializeDSBlockHeader(&block.Header))
}

// VCBlockHash returns the hash of a VC block.
func VCBlockHash(block *externalapi.VCBlock) *externalapi.Hash {
	return hashes.HashData(consensusserialization.SerializeVCBlockHeader(&block.Header))
}

// FallbackBlockHash returns the hash of a fallback block. The bundled
// sharding structure is not part of the hash; it is committed separately
// through the previous DS block's sharding hash.
func FallbackBlockHash(block *externalapi.FallbackBlock) *externalapi.Hash {
	return hashes.HashData(consensusserialization.SerializeFallbackBlockHeader(&block.Header))
}

// TxBlockHash returns the self hash of a transaction block header.
func TxBlockHash(header *externalapi.TxBlockHeader) *externalapi.Hash {
	return hashes.HashData(consensusserialization.SerializeTxBlockHeader(header))
}

// ShardingStructureHash returns the commitment hash of a sharding
// structure under the given structure version.
func ShardingStructureHash(version uint32, shards externalapi.ShardingStructure) *externalapi.Hash {
	return hashes.HashData(consensusserialization.SerializeShardingStructure(version, shards))
}
