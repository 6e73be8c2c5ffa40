package multisig

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
)

// This package implements the commitment-style Schnorr scheme the
// protocol co-signs with. A signature is (r ‖ s), two 32-byte big-endian
// scalars. Signing commits to Q = kG and derives the challenge
// r = H(Q ‖ P ‖ message) mod n with s = k - r·x. Verification
// reconstructs Q = sG + rP and recomputes the challenge. Because the
// challenge binds the public key, a multi-signature is simply a plain
// signature under the sum of the signers' public keys.

const scalarSize = 32

// SerializePublicKey returns the compressed wire form of a public key.
func SerializePublicKey(publicKey *secp256k1.PublicKey) *externalapi.PublicKey {
	var serialized externalapi.PublicKey
	copy(serialized[:], publicKey.SerializeCompressed())
	return &serialized
}

// ParsePublicKey parses a compressed wire-form public key. It rejects
// encodings that are not points on the curve.
func ParsePublicKey(serialized *externalapi.PublicKey) (*secp256k1.PublicKey, error) {
	publicKey, err := secp256k1.ParsePubKey(serialized[:])
	if err != nil {
		return nil, errors.Wrap(err, "malformed public key")
	}
	return publicKey, nil
}

func challenge(commitment []byte, publicKey []byte, message []byte) *secp256k1.ModNScalar {
	hasher := sha256.New()
	hasher.Write(commitment)
	hasher.Write(publicKey)
	hasher.Write(message)

	r := new(secp256k1.ModNScalar)
	r.SetByteSlice(hasher.Sum(nil))
	return r
}

func compress(point *secp256k1.JacobianPoint) []byte {
	point.ToAffine()
	return secp256k1.NewPublicKey(&point.X, &point.Y).SerializeCompressed()
}

// SignMessage produces a Schnorr signature over message with the given
// private key.
func SignMessage(privateKey *secp256k1.PrivateKey, message []byte) (*externalapi.Signature, error) {
	publicKeyBytes := privateKey.PubKey().SerializeCompressed()

	for {
		nonce, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return nil, errors.Wrap(err, "generating signing nonce")
		}

		var commitment secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(&nonce.Key, &commitment)

		r := challenge(compress(&commitment), publicKeyBytes, message)
		if r.IsZero() {
			continue
		}

		// s = k - r·x
		s := new(secp256k1.ModNScalar).Set(r)
		s.Mul(&privateKey.Key).Negate().Add(&nonce.Key)
		if s.IsZero() {
			continue
		}

		var signature externalapi.Signature
		rBytes := r.Bytes()
		sBytes := s.Bytes()
		copy(signature[:scalarSize], rBytes[:])
		copy(signature[scalarSize:], sBytes[:])
		return &signature, nil
	}
}

// VerifyMessage verifies a Schnorr signature over message under publicKey.
func VerifyMessage(message []byte, signature *externalapi.Signature, publicKey *secp256k1.PublicKey) bool {
	r := new(secp256k1.ModNScalar)
	s := new(secp256k1.ModNScalar)
	if overflow := r.SetByteSlice(signature[:scalarSize]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(signature[scalarSize:]); overflow {
		return false
	}
	if r.IsZero() || s.IsZero() {
		return false
	}

	// Q = sG + rP. For a valid signature Q equals the signer's nonce
	// commitment, so the recomputed challenge equals r.
	var sG, rP, q, publicKeyJacobian secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(s, &sG)
	publicKey.AsJacobian(&publicKeyJacobian)
	secp256k1.ScalarMultNonConst(r, &publicKeyJacobian, &rP)
	secp256k1.AddNonConst(&sG, &rP, &q)
	if (q.X.IsZero() && q.Y.IsZero()) || q.Z.IsZero() {
		return false
	}

	expected := challenge(compress(&q), publicKey.SerializeCompressed(), message)
	return expected.Equals(r)
}

// AggregatePublicKeys sums the given public keys into the aggregate key a
// multi-signature verifies against. Returns an error for an empty key set
// or when the sum is the point at infinity.
func AggregatePublicKeys(publicKeys []*secp256k1.PublicKey) (*secp256k1.PublicKey, error) {
	if len(publicKeys) == 0 {
		return nil, errors.New("cannot aggregate an empty set of public keys")
	}

	var sum secp256k1.JacobianPoint
	publicKeys[0].AsJacobian(&sum)
	for _, publicKey := range publicKeys[1:] {
		var point, result secp256k1.JacobianPoint
		publicKey.AsJacobian(&point)
		secp256k1.AddNonConst(&sum, &point, &result)
		sum = result
	}
	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return nil, errors.New("aggregated public key is the point at infinity")
	}

	sum.ToAffine()
	return secp256k1.NewPublicKey(&sum.X, &sum.Y), nil
}

// AggregatePrivateKeys sums the given private keys into the private key
// matching AggregatePublicKeys of the corresponding public keys.
func AggregatePrivateKeys(privateKeys []*secp256k1.PrivateKey) (*secp256k1.PrivateKey, error) {
	if len(privateKeys) == 0 {
		return nil, errors.New("cannot aggregate an empty set of private keys")
	}

	sum := new(secp256k1.ModNScalar)
	for _, privateKey := range privateKeys {
		sum.Add(&privateKey.Key)
	}
	if sum.IsZero() {
		return nil, errors.New("aggregated private key is zero")
	}
	return secp256k1.NewPrivateKey(sum), nil
}
