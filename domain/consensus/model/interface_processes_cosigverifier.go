package model

import "github.com/shardchain/shardchaind/domain/consensus/model/externalapi"

// CoSigVerifier checks a block's threshold co-signature against the
// committee that produced it. headerBytes is the block header's canonical
// serialization; the verifier derives the signed message from it together
// with the envelope's first-round signature and bitmap.
type CoSigVerifier interface {
	VerifyCoSignature(headerBytes []byte, coSigs *externalapi.CoSignatures,
		committee externalapi.Committee) error
}
