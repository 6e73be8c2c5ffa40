package bitvector

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// lengthPrefixSize is the size of the big-endian bit-count prefix.
const lengthPrefixSize = 2

// Serialize encodes a bitmap into its canonical wire form: a two-byte
// big-endian count of bits followed by ⌈n/8⌉ payload bytes, MSB-first
// within each byte. This layout is part of the co-signature wire contract
// and must stay bit-exact across nodes.
func Serialize(bits []bool) []byte {
	serialized := make([]byte, lengthPrefixSize+(len(bits)+7)/8)
	binary.BigEndian.PutUint16(serialized[:lengthPrefixSize], uint16(len(bits)))
	for i, bit := range bits {
		if bit {
			serialized[lengthPrefixSize+i/8] |= 0x80 >> uint(i%8)
		}
	}
	return serialized
}

// Deserialize decodes a canonical bitmap encoding. It rejects buffers
// whose payload length disagrees with the bit-count prefix.
func Deserialize(serialized []byte) ([]bool, error) {
	if len(serialized) < lengthPrefixSize {
		return nil, errors.Errorf("bitvector is %d bytes, shorter than its %d-byte length prefix",
			len(serialized), lengthPrefixSize)
	}
	numBits := int(binary.BigEndian.Uint16(serialized[:lengthPrefixSize]))
	expectedLength := lengthPrefixSize + (numBits+7)/8
	if len(serialized) != expectedLength {
		return nil, errors.Errorf("bitvector declares %d bits but is %d bytes, expected %d",
			numBits, len(serialized), expectedLength)
	}

	bits := make([]bool, numBits)
	for i := range bits {
		bits[i] = serialized[lengthPrefixSize+i/8]&(0x80>>uint(i%8)) != 0
	}
	return bits, nil
}
