package txchainwalker

import (
	"github.com/shardchain/shardchaind/domain/consensus/model"
	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/domain/consensus/ruleerrors"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensusserialization"
)

// txChainWalker validates a transaction-block sequence: the tip against
// the current DS committee, older blocks transitively through the
// parent-hash chain.
type txChainWalker struct {
	coSigVerifier model.CoSigVerifier
}

// New instantiates a new TxChainWalker
func New(coSigVerifier model.CoSigVerifier) model.TxChainWalker {
	return &txChainWalker{coSigVerifier: coSigVerifier}
}

// CheckTxBlocks validates the given non-empty sequence, whose last entry
// is the sequence tip. Only the tip's co-signature is verified; the tip's
// valid co-sig anchors the whole run and older blocks are established by
// walking prev hashes backwards. No side effects are performed.
func (w *txChainWalker) CheckTxBlocks(txBlocks []*externalapi.TxBlock,
	dsCommittee externalapi.Committee, latestBlockLink *externalapi.BlockLink,
) externalapi.TxBlockVerdict {

	if len(txBlocks) == 0 {
		log.Warnf("Empty transaction block sequence")
		return externalapi.TxBlockVerdictInvalid
	}

	// Derive the DS epoch this sequence should sit under. A non-DS link
	// sits one past the DS block it follows.
	expectedDSBlockNum := latestBlockLink.DSEpochNum
	if latestBlockLink.Kind != externalapi.BlockKindDS {
		if expectedDSBlockNum == 0 {
			log.Warnf("Latest block link has DS index 0 and is not a DS block")
			return externalapi.TxBlockVerdictInvalid
		}
		expectedDSBlockNum--
	}

	tip := txBlocks[len(txBlocks)-1]
	if tip.Header.DSBlockNum != expectedDSBlockNum {
		if expectedDSBlockNum > tip.Header.DSBlockNum {
			log.Warnf("%s: expected DS %d, tip under DS %d", ruleerrors.ErrStaleTxBlockTip,
				expectedDSBlockNum, tip.Header.DSBlockNum)
			return externalapi.TxBlockVerdictInvalid
		}

		log.Warnf("%s: the latest DS index %d does not match the tip's DS block num %d, "+
			"try fetching tx and dir blocks again", ruleerrors.ErrStaleDSInfo, expectedDSBlockNum, tip.Header.DSBlockNum)
		return externalapi.TxBlockVerdictStaleDSInfo
	}

	headerBytes := consensusserialization.SerializeTxBlockHeader(&tip.Header)
	if err := w.coSigVerifier.VerifyCoSignature(headerBytes, &tip.CoSigs, dsCommittee); err != nil {
		log.Warnf("Co-sig verification of tip tx block %d failed: %s", tip.Header.BlockNum, err)
		return externalapi.TxBlockVerdictInvalid
	}

	if len(txBlocks) < 2 {
		return externalapi.TxBlockVerdictValid
	}

	prevBlockHash := tip.Header.PrevHash
	for i := len(txBlocks) - 2; i >= 0; i-- {
		if !prevBlockHash.Equal(&txBlocks[i].BlockHash) {
			log.Warnf("%s: prev hash %s does not match the hash of tx block %d",
				ruleerrors.ErrBrokenTxBlockChain, prevBlockHash, txBlocks[i].Header.BlockNum)
			return externalapi.TxBlockVerdictInvalid
		}
		prevBlockHash = txBlocks[i].Header.PrevHash
	}

	return externalapi.TxBlockVerdictValid
}
