package txchainwalker_test

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/domain/consensus/processes/cosigverifier"
	"github.com/shardchain/shardchaind/domain/consensus/processes/txchainwalker"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensushashing"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensusserialization"
	"github.com/shardchain/shardchaind/domain/consensus/utils/multisig"
	"github.com/shardchain/shardchaind/domain/consensus/utils/testutils"
)

// newTxBlockChain builds a chain of length blocks under the given DS
// epoch, with correct self and prev hashes, and co-signs the tip with
// every committee key.
func newTxBlockChain(t *testing.T, length int, dsBlockNum uint64,
	committeeKeys []*secp256k1.PrivateKey) []*externalapi.TxBlock {

	blocks := make([]*externalapi.TxBlock, length)
	var prevHash externalapi.Hash
	for i := range blocks {
		header := externalapi.TxBlockHeader{
			BlockNum:   uint64(i + 1),
			DSBlockNum: dsBlockNum,
			GasPrice:   1,
			PrevHash:   prevHash,
		}
		blocks[i] = &externalapi.TxBlock{Header: header, BlockHash: *consensushashing.TxBlockHash(&header)}
		prevHash = blocks[i].BlockHash
	}

	tip := blocks[length-1]
	headerBytes := consensusserialization.SerializeTxBlockHeader(&tip.Header)
	tip.CoSigs = testutils.CoSign(t, headerBytes, committeeKeys, testutils.AllSet(len(committeeKeys)))
	return blocks
}

func TestCheckTxBlocks(t *testing.T) {
	walker := txchainwalker.New(cosigverifier.New(multisig.NewCryptoAdapter()))

	committeeKeys := testutils.GenerateKeys(t, 4)
	dsCommittee := testutils.CommitteeFromKeys(committeeKeys)

	const currentDS = 9
	dsLink := &externalapi.BlockLink{TotalIndex: 40, DSEpochNum: currentDS, Kind: externalapi.BlockKindDS}

	blocks := newTxBlockChain(t, 3, currentDS, committeeKeys)
	if verdict := walker.CheckTxBlocks(blocks, dsCommittee, dsLink); verdict != externalapi.TxBlockVerdictValid {
		t.Fatalf("a linked, co-signed sequence should be VALID, got %s", verdict)
	}

	// A single block sequence needs no linkage walk.
	single := newTxBlockChain(t, 1, currentDS, committeeKeys)
	if verdict := walker.CheckTxBlocks(single, dsCommittee, dsLink); verdict != externalapi.TxBlockVerdictValid {
		t.Fatalf("a single co-signed tip should be VALID, got %s", verdict)
	}

	// The tip sits one epoch past the caller's directory view: the
	// caller must refetch.
	ahead := newTxBlockChain(t, 3, currentDS+1, committeeKeys)
	if verdict := walker.CheckTxBlocks(ahead, dsCommittee, dsLink); verdict != externalapi.TxBlockVerdictStaleDSInfo {
		t.Fatalf("a tip ahead of the DS view should be STALEDSINFO, got %s", verdict)
	}

	// The tip is older than the directory view: permanently invalid.
	stale := newTxBlockChain(t, 3, currentDS-1, committeeKeys)
	if verdict := walker.CheckTxBlocks(stale, dsCommittee, dsLink); verdict != externalapi.TxBlockVerdictInvalid {
		t.Fatalf("a stale tip should be INVALID, got %s", verdict)
	}

	// A tip co-signed by strangers is rejected.
	strangerKeys := testutils.GenerateKeys(t, 4)
	forged := newTxBlockChain(t, 3, currentDS, strangerKeys)
	if verdict := walker.CheckTxBlocks(forged, dsCommittee, dsLink); verdict != externalapi.TxBlockVerdictInvalid {
		t.Fatalf("a foreign co-signature should be INVALID, got %s", verdict)
	}

	// Breaking one parent hash breaks the whole run.
	broken := newTxBlockChain(t, 3, currentDS, committeeKeys)
	broken[0].BlockHash[0] ^= 0xff
	if verdict := walker.CheckTxBlocks(broken, dsCommittee, dsLink); verdict != externalapi.TxBlockVerdictInvalid {
		t.Fatalf("a broken parent-hash chain should be INVALID, got %s", verdict)
	}

	if verdict := walker.CheckTxBlocks(nil, dsCommittee, dsLink); verdict != externalapi.TxBlockVerdictInvalid {
		t.Fatalf("an empty sequence should be INVALID, got %s", verdict)
	}
}

func TestCheckTxBlocksNonDSLink(t *testing.T) {
	walker := txchainwalker.New(cosigverifier.New(multisig.NewCryptoAdapter()))

	committeeKeys := testutils.GenerateKeys(t, 4)
	dsCommittee := testutils.CommitteeFromKeys(committeeKeys)

	// A VC link at DS epoch 10 means the transaction tip sits under
	// epoch 9.
	vcLink := &externalapi.BlockLink{TotalIndex: 41, DSEpochNum: 10, Kind: externalapi.BlockKindVC}
	blocks := newTxBlockChain(t, 2, 9, committeeKeys)
	if verdict := walker.CheckTxBlocks(blocks, dsCommittee, vcLink); verdict != externalapi.TxBlockVerdictValid {
		t.Fatalf("expected VALID under a non-DS link, got %s", verdict)
	}

	// A non-DS link at DS index 0 is an impossible state.
	impossibleLink := &externalapi.BlockLink{TotalIndex: 0, DSEpochNum: 0, Kind: externalapi.BlockKindVC}
	if verdict := walker.CheckTxBlocks(blocks, dsCommittee, impossibleLink); verdict != externalapi.TxBlockVerdictInvalid {
		t.Fatalf("expected INVALID for a non-DS link at index 0, got %s", verdict)
	}
}
