package hashes

import (
	"crypto/sha256"
	"hash"

	"github.com/pkg/errors"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
)

// HashWriter is used to incrementally hash data without concatenating all
// of the data to a single buffer. It exposes an io.Writer api and a
// Finalize function to get the resulting hash. The hash function is
// SHA-256, the protocol's commitment hash.
type HashWriter struct {
	hash.Hash
}

// NewHashWriter returns a new SHA-256 HashWriter.
func NewHashWriter() *HashWriter {
	return &HashWriter{sha256.New()}
}

// InfallibleWrite is just like write but doesn't return anything
func (h *HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error, this is part of the hash.Hash interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting hash
func (h *HashWriter) Finalize() *externalapi.Hash {
	var sum externalapi.Hash
	copy(sum[:], h.Sum(sum[:0]))
	return &sum
}

// HashData returns the SHA-256 hash of the given buffer.
func HashData(data []byte) *externalapi.Hash {
	writer := NewHashWriter()
	writer.InfallibleWrite(data)
	return writer.Finalize()
}
