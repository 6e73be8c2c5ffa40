package multisig

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/shardchain/shardchaind/domain/consensus/model"
	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
)

type cryptoAdapter struct{}

// NewCryptoAdapter returns the Schnorr-backed model.CryptoAdapter used in
// production wiring.
func NewCryptoAdapter() model.CryptoAdapter {
	return &cryptoAdapter{}
}

func (*cryptoAdapter) VerifySingle(message []byte, signature *externalapi.Signature,
	publicKey *externalapi.PublicKey) bool {

	parsedKey, err := ParsePublicKey(publicKey)
	if err != nil {
		return false
	}
	return VerifyMessage(message, signature, parsedKey)
}

func (*cryptoAdapter) AggregateAndVerify(message []byte, publicKeys []*externalapi.PublicKey,
	signature *externalapi.Signature) bool {

	parsedKeys := make([]*secp256k1.PublicKey, 0, len(publicKeys))
	for _, publicKey := range publicKeys {
		parsedKey, err := ParsePublicKey(publicKey)
		if err != nil {
			return false
		}
		parsedKeys = append(parsedKeys, parsedKey)
	}

	aggregatedKey, err := AggregatePublicKeys(parsedKeys)
	if err != nil {
		return false
	}
	return VerifyMessage(message, signature, aggregatedKey)
}
