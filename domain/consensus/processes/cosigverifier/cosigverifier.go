package cosigverifier

import (
	"github.com/pkg/errors"

	"github.com/shardchain/shardchaind/domain/consensus/model"
	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/domain/consensus/ruleerrors"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensusserialization"
	"github.com/shardchain/shardchaind/domain/consensus/utils/constants"
)

// coSigVerifier checks block co-signatures against the committee that
// produced them.
type coSigVerifier struct {
	cryptoAdapter model.CryptoAdapter
}

// New instantiates a new CoSigVerifier
func New(cryptoAdapter model.CryptoAdapter) model.CoSigVerifier {
	return &coSigVerifier{cryptoAdapter: cryptoAdapter}
}

// VerifyCoSignature accepts iff the round-2 bitmap is index-aligned with
// the committee, the set bits meet the consensus threshold, and the final
// aggregate signature verifies over the canonical co-signed buffer under
// the aggregate of the participating members' keys.
func (v *coSigVerifier) VerifyCoSignature(headerBytes []byte, coSigs *externalapi.CoSignatures,
	committee externalapi.Committee) error {

	if len(committee) != len(coSigs.B2) {
		return errors.Wrapf(ruleerrors.ErrCommitteeBitmapMismatch,
			"committee size = %d, co-sig bitmap size = %d", len(committee), len(coSigs.B2))
	}

	signerKeys := make([]*externalapi.PublicKey, 0, len(committee))
	for i := range committee {
		if coSigs.B2[i] {
			signerKeys = append(signerKeys, &committee[i].PubKey)
		}
	}

	if numForConsensus := constants.NumForConsensus(len(coSigs.B2)); len(signerKeys) < numForConsensus {
		return errors.Wrapf(ruleerrors.ErrThresholdUnmet,
			"co-sig was generated by %d nodes, consensus requires %d", len(signerKeys), numForConsensus)
	}

	message := consensusserialization.CoSignedMessage(headerBytes, coSigs)
	if !v.cryptoAdapter.AggregateAndVerify(message, signerKeys, &coSigs.CS2) {
		return errors.WithStack(ruleerrors.ErrAggregateVerifyFailed)
	}
	return nil
}
