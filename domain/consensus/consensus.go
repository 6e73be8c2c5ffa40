package consensus

import (
	"github.com/pkg/errors"

	"github.com/shardchain/shardchaind/domain/consensus/model"
	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
)

// Consensus is the validation core's single entry point. Every inbound
// transaction, directory-block sequence and transaction-block sequence
// flows through it before any state transition.
//
// All entry points are synchronous and execute on the caller's thread.
// The core holds no locks; callers that share the mutable collaborators
// they passed in (account snapshot, header chain, roster) must serialize
// access to them.
type Consensus struct {
	transactionValidator model.TransactionValidator
	directoryChainWalker model.DirectoryChainWalker
	txChainWalker        model.TxChainWalker
	persistence          model.Persistence
	headerChain          model.HeaderChain
}

// VerifyTransaction verifies a transaction's signature over its canonical
// core fields.
func (c *Consensus) VerifyTransaction(tx *externalapi.Transaction) bool {
	return c.transactionValidator.VerifyTransaction(tx)
}

// CheckCreatedTransaction admits a transaction from the node's own pool,
// tentatively applying it to the caller-owned account store snapshot.
func (c *Consensus) CheckCreatedTransaction(tx *externalapi.Transaction,
	receipt *externalapi.TransactionReceipt) bool {
	return c.transactionValidator.CheckCreatedTransaction(tx, receipt)
}

// CheckCreatedTransactionFromLookup admits a transaction forwarded by a
// lookup node. Pure.
func (c *Consensus) CheckCreatedTransactionFromLookup(tx *externalapi.Transaction) bool {
	return c.transactionValidator.CheckCreatedTransactionFromLookup(tx)
}

// ValidateDirectoryBlocks walks the given directory-block sequence from
// the current DS chain tip and, for the accepted prefix, commits the
// walker's side-effect log to persistence and the live chain. The evolved
// roster is returned for the caller to swap in atomically.
func (c *Consensus) ValidateDirectoryBlocks(dirBlocks []externalapi.DirectoryBlock,
	initialRoster externalapi.Committee, startIndex uint64,
) (bool, externalapi.Committee, error) {

	tip := c.headerChain.LatestDSBlock()
	ok, evolvedRoster, sideEffects := c.directoryChainWalker.Walk(
		dirBlocks, initialRoster, startIndex, tip.Header.BlockNum, &tip.Header.ShardingHash)

	err := c.commitSideEffects(sideEffects)
	if err != nil {
		return false, evolvedRoster, err
	}
	return ok, evolvedRoster, nil
}

// CheckTxBlocks validates a transaction-block sequence against the given
// DS committee and the newest directory-era block link.
func (c *Consensus) CheckTxBlocks(txBlocks []*externalapi.TxBlock,
	dsCommittee externalapi.Committee, latestBlockLink *externalapi.BlockLink) externalapi.TxBlockVerdict {
	return c.txChainWalker.CheckTxBlocks(txBlocks, dsCommittee, latestBlockLink)
}

// commitSideEffects applies the walker's deferred log strictly in input
// order.
func (c *Consensus) commitSideEffects(sideEffects []model.SideEffect) error {
	for _, sideEffect := range sideEffects {
		switch effect := sideEffect.(type) {
		case *model.AppendBlockLinkEffect:
			err := c.persistence.AppendBlockLink(&effect.Link)
			if err != nil {
				return err
			}
		case *model.StoreDSBlockEffect:
			err := c.persistence.PutDSBlock(effect.BlockNum, effect.BlockBytes)
			if err != nil {
				return err
			}
		case *model.AdvanceDSChainEffect:
			c.headerChain.AppendDSBlock(effect.Block)
		case *model.StoreVCBlockEffect:
			err := c.persistence.PutVCBlock(&effect.BlockHash, effect.BlockBytes)
			if err != nil {
				return err
			}
		case *model.StoreFallbackBlockEffect:
			err := c.persistence.PutFallbackBlock(&effect.BlockHash, effect.BlockBytes)
			if err != nil {
				return err
			}
		default:
			return errors.Errorf("unknown side effect type %T", sideEffect)
		}
	}
	return nil
}
