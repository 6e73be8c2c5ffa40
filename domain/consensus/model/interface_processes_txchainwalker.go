package model

import "github.com/shardchain/shardchaind/domain/consensus/model/externalapi"

// TxChainWalker validates the tip of a transaction-block sequence against
// the current DS committee and walks the parent-hash chain backwards from
// it. It performs no side effects.
type TxChainWalker interface {
	CheckTxBlocks(txBlocks []*externalapi.TxBlock, dsCommittee externalapi.Committee,
		latestBlockLink *externalapi.BlockLink) externalapi.TxBlockVerdict
}
