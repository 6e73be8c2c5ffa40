package model

import "github.com/shardchain/shardchaind/domain/consensus/model/externalapi"

// DirectoryChainWalker sequentially validates a mixed sequence of DS, VC
// and fallback blocks, evolving the DS committee roster as it goes.
type DirectoryChainWalker interface {
	// Walk validates dirBlocks against the supplied chain tip state. It
	// stops at the first offending block. It returns whether the whole
	// sequence was accepted, the evolved roster (also on failure, evolved
	// up to the failure point), and the ordered side-effect log for the
	// accepted prefix. The walker commits nothing; the caller owns the
	// commit and any rollback.
	Walk(dirBlocks []externalapi.DirectoryBlock, initialRoster externalapi.Committee,
		startIndex uint64, dsTipBlockNum uint64, dsTipShardingHash *externalapi.Hash,
	) (ok bool, evolvedRoster externalapi.Committee, sideEffects []SideEffect)
}
