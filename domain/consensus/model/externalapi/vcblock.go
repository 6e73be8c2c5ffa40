package externalapi

// VCBlockHeader is the header of a view-change block.
type VCBlockHeader struct {
	// ViewChangeDSEpochNum is the DS epoch the view change applies within.
	// Note that this is the epoch that has not yet landed on the chain:
	// a view change precedes the DS block it makes room for.
	ViewChangeDSEpochNum  uint64
	ViewChangeEpochNum    uint64
	CandidateLeaderPubKey PublicKey
	CandidateLeaderPeer   Peer
	// FaultyLeaders are the members the committee rotated away from.
	FaultyLeaders []CommitteeMember
}

// VCBlock is a view-change block, inserted when the DS committee performs
// a view change within an epoch.
type VCBlock struct {
	Header VCBlockHeader
	CoSigs CoSignatures
}

func (*VCBlock) isDirectoryBlock() {}
