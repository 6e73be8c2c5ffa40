package model

import "github.com/shardchain/shardchaind/domain/consensus/model/externalapi"

// CryptoAdapter abstracts the Schnorr signature primitives the validation
// core depends on. Implementations must be deterministic: the same inputs
// always yield the same verdict.
type CryptoAdapter interface {
	// VerifySingle verifies a single Schnorr signature over message under
	// publicKey.
	VerifySingle(message []byte, signature *externalapi.Signature, publicKey *externalapi.PublicKey) bool

	// AggregateAndVerify aggregates the ordered key list into a single
	// public key and verifies a Schnorr multi-signature against it.
	// Returns false if the aggregate cannot be formed, for instance on an
	// empty or malformed key set.
	AggregateAndVerify(message []byte, publicKeys []*externalapi.PublicKey, signature *externalapi.Signature) bool
}
