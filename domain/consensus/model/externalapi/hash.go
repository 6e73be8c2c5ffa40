package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// HashSize of array used to store hashes.
const HashSize = 32

// Hash is the domain representation of a 32-byte hash.
type Hash [HashSize]byte

// NewHashFromByteSlice returns a new Hash from the given byte slice.
// An error is returned if the number of bytes passed in is not HashSize.
func NewHashFromByteSlice(hashBytes []byte) (*Hash, error) {
	if len(hashBytes) != HashSize {
		return nil, errors.Errorf("invalid hash size. Want: %d, got: %d",
			HashSize, len(hashBytes))
	}
	var hash Hash
	copy(hash[:], hashBytes)
	return &hash, nil
}

// NewHashFromString returns a new Hash from a hash string. The string
// should be the hexadecimal string of a hash.
func NewHashFromString(hashString string) (*Hash, error) {
	expectedLength := HashSize * 2
	if len(hashString) != expectedLength {
		return nil, errors.Errorf("hash string length is %d, while it should be %d",
			len(hashString), expectedLength)
	}

	hashBytes, err := hex.DecodeString(hashString)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return NewHashFromByteSlice(hashBytes)
}

// String returns the Hash as the hexadecimal string of the hash.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// Equal returns whether hash equals to other.
func (hash *Hash) Equal(other *Hash) bool {
	if hash == nil || other == nil {
		return hash == other
	}
	return *hash == *other
}
