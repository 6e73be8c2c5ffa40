package dirchainwalker

import (
	"github.com/shardchain/shardchaind/domain/consensus/model"
	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/domain/consensus/ruleerrors"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensushashing"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensusserialization"
)

// directoryChainWalker validates directory-layer block sequences and
// evolves the DS committee roster as it consumes them.
type directoryChainWalker struct {
	coSigVerifier            model.CoSigVerifier
	rosterMutator            model.RosterMutator
	shardingStructureVersion uint32
}

// New instantiates a new DirectoryChainWalker
func New(coSigVerifier model.CoSigVerifier, rosterMutator model.RosterMutator,
	shardingStructureVersion uint32) model.DirectoryChainWalker {

	return &directoryChainWalker{
		coSigVerifier:            coSigVerifier,
		rosterMutator:            rosterMutator,
		shardingStructureVersion: shardingStructureVersion,
	}
}

// Walk validates dirBlocks in order against the supplied DS chain tip
// state and returns the evolved roster together with the deferred
// side-effect log of everything the accepted prefix requires persisting.
// The walk stops at the first offending block; the walker rolls nothing
// back and commits nothing itself.
//
// A VC block intentionally leaves the DS block number and the sharding
// hash untouched: it applies to the next DS epoch, which has not landed
// yet.
func (w *directoryChainWalker) Walk(dirBlocks []externalapi.DirectoryBlock,
	initialRoster externalapi.Committee, startIndex uint64,
	dsTipBlockNum uint64, dsTipShardingHash *externalapi.Hash,
) (bool, externalapi.Committee, []model.SideEffect) {

	roster := initialRoster.Clone()
	prevDSBlockNum := dsTipBlockNum
	prevShardingHash := *dsTipShardingHash
	totalIndex := startIndex
	var sideEffects []model.SideEffect

	for _, dirBlock := range dirBlocks {
		switch block := dirBlock.(type) {
		case *externalapi.DSBlock:
			if block.Header.BlockNum != prevDSBlockNum+1 {
				log.Warnf("%s: got %d after %d", ruleerrors.ErrNonSequentialDSBlock,
					block.Header.BlockNum, prevDSBlockNum)
				return false, roster, sideEffects
			}

			headerBytes := consensusserialization.SerializeDSBlockHeader(&block.Header)
			if err := w.coSigVerifier.VerifyCoSignature(headerBytes, &block.CoSigs, roster); err != nil {
				log.Warnf("Co-sig verification of DS block %d failed: %s", block.Header.BlockNum, err)
				return false, roster, sideEffects
			}

			blockHash := consensushashing.DSBlockHash(block)
			sideEffects = append(sideEffects,
				&model.AppendBlockLinkEffect{Link: externalapi.BlockLink{
					TotalIndex: totalIndex,
					DSEpochNum: prevDSBlockNum + 1,
					Kind:       externalapi.BlockKindDS,
					BlockHash:  *blockHash,
				}},
				&model.StoreDSBlockEffect{
					BlockNum:   block.Header.BlockNum,
					BlockBytes: consensusserialization.SerializeDSBlock(block),
				},
				&model.AdvanceDSChainEffect{Block: block},
			)

			roster = w.rosterMutator.OnDSBlock(roster, block)
			prevDSBlockNum++
			prevShardingHash = block.Header.ShardingHash
			totalIndex++

		case *externalapi.VCBlock:
			// The view change applies within the DS epoch that has not
			// yet landed on the chain.
			if block.Header.ViewChangeDSEpochNum != prevDSBlockNum+1 {
				log.Warnf("%s: VC block DS epoch %d does not match the epoch being processed %d",
					ruleerrors.ErrWrongVCEpoch, block.Header.ViewChangeDSEpochNum, prevDSBlockNum+1)
				return false, roster, sideEffects
			}

			headerBytes := consensusserialization.SerializeVCBlockHeader(&block.Header)
			if err := w.coSigVerifier.VerifyCoSignature(headerBytes, &block.CoSigs, roster); err != nil {
				log.Warnf("Co-sig verification of VC block in epoch %d failed: %s",
					prevDSBlockNum+1, err)
				return false, roster, sideEffects
			}

			roster = w.rosterMutator.OnVCBlock(roster, block)

			blockHash := consensushashing.VCBlockHash(block)
			sideEffects = append(sideEffects,
				&model.AppendBlockLinkEffect{Link: externalapi.BlockLink{
					TotalIndex: totalIndex,
					DSEpochNum: prevDSBlockNum + 1,
					Kind:       externalapi.BlockKindVC,
					BlockHash:  *blockHash,
				}},
				&model.StoreVCBlockEffect{
					BlockHash:  *blockHash,
					BlockBytes: consensusserialization.SerializeVCBlock(block),
				},
			)
			totalIndex++

		case *externalapi.FallbackBlockWithShards:
			fallbackBlock := &block.Block
			if fallbackBlock.Header.FallbackDSEpochNum != prevDSBlockNum+1 {
				log.Warnf("%s: fallback block DS epoch %d does not match the epoch being processed %d",
					ruleerrors.ErrWrongFallbackEpoch, fallbackBlock.Header.FallbackDSEpochNum, prevDSBlockNum+1)
				return false, roster, sideEffects
			}

			// The claimed fallback must operate under the sharding
			// snapshot the chain currently commits to.
			shardingHash := consensushashing.ShardingStructureHash(w.shardingStructureVersion, block.Shards)
			if !shardingHash.Equal(&prevShardingHash) {
				log.Warnf("%s: sharding hash %s does not match committed %s",
					ruleerrors.ErrShardingHashMismatch, shardingHash, prevShardingHash)
				return false, roster, sideEffects
			}

			shardID := fallbackBlock.Header.ShardID
			if uint64(shardID) >= uint64(len(block.Shards)) {
				log.Warnf("%s: fallback block names shard %d, structure has %d shards",
					ruleerrors.ErrUnknownShardID, shardID, len(block.Shards))
				return false, roster, sideEffects
			}

			// A fallback block is co-signed by its shard's committee,
			// not by the DS committee.
			headerBytes := consensusserialization.SerializeFallbackBlockHeader(&fallbackBlock.Header)
			err := w.coSigVerifier.VerifyCoSignature(headerBytes, &fallbackBlock.CoSigs, block.Shards[shardID])
			if err != nil {
				log.Warnf("Co-sig verification of fallback block in epoch %d failed: %s",
					prevDSBlockNum+1, err)
				return false, roster, sideEffects
			}

			roster = w.rosterMutator.OnFallback(roster, fallbackBlock, block.Shards)

			blockHash := consensushashing.FallbackBlockHash(fallbackBlock)
			sideEffects = append(sideEffects,
				&model.AppendBlockLinkEffect{Link: externalapi.BlockLink{
					TotalIndex: totalIndex,
					DSEpochNum: prevDSBlockNum + 1,
					Kind:       externalapi.BlockKindFB,
					BlockHash:  *blockHash,
				}},
				&model.StoreFallbackBlockEffect{
					BlockHash:  *blockHash,
					BlockBytes: consensusserialization.SerializeFallbackBlockWithShards(block),
				},
			)
			totalIndex++

		default:
			// Lenient for forward compatibility: an unknown variant is
			// skipped, not a walk failure.
			log.Warnf("Unexpected directory block variant %T", dirBlock)
		}
	}

	return true, roster, sideEffects
}
