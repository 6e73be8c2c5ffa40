package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// PublicKeySize is the size of a serialized compressed secp256k1 public key.
const PublicKeySize = 33

// SignatureSize is the size of a serialized Schnorr signature (r ‖ s).
const SignatureSize = 64

// PublicKey is the serialized compressed form of an account or committee
// member public key.
type PublicKey [PublicKeySize]byte

// NewPublicKeyFromByteSlice returns a new PublicKey from the given byte slice.
func NewPublicKeyFromByteSlice(publicKeyBytes []byte) (*PublicKey, error) {
	if len(publicKeyBytes) != PublicKeySize {
		return nil, errors.Errorf("invalid public key size. Want: %d, got: %d",
			PublicKeySize, len(publicKeyBytes))
	}
	var publicKey PublicKey
	copy(publicKey[:], publicKeyBytes)
	return &publicKey, nil
}

// String returns the PublicKey as a hexadecimal string.
func (publicKey PublicKey) String() string {
	return hex.EncodeToString(publicKey[:])
}

// Equal returns whether publicKey equals to other.
func (publicKey *PublicKey) Equal(other *PublicKey) bool {
	if publicKey == nil || other == nil {
		return publicKey == other
	}
	return *publicKey == *other
}

// Signature is a serialized Schnorr signature. Both single signatures and
// aggregated multi-signatures use the same representation.
type Signature [SignatureSize]byte

// NewSignatureFromByteSlice returns a new Signature from the given byte slice.
func NewSignatureFromByteSlice(signatureBytes []byte) (*Signature, error) {
	if len(signatureBytes) != SignatureSize {
		return nil, errors.Errorf("invalid signature size. Want: %d, got: %d",
			SignatureSize, len(signatureBytes))
	}
	var signature Signature
	copy(signature[:], signatureBytes)
	return &signature, nil
}

// String returns the Signature as a hexadecimal string.
func (signature Signature) String() string {
	return hex.EncodeToString(signature[:])
}
