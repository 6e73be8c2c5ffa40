package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// AddressSize of array used to store account addresses.
const AddressSize = 20

// Address is a 20-byte account identifier, derived from the trailing
// bytes of the SHA-256 digest of an account's public key.
type Address [AddressSize]byte

// NullAddress is the distinguished all-zero address. It denotes
// contract creation when used as a transaction recipient, and absence
// everywhere else.
var NullAddress = Address{}

// NewAddressFromByteSlice returns a new Address from the given byte slice.
// An error is returned if the number of bytes passed in is not AddressSize.
func NewAddressFromByteSlice(addressBytes []byte) (*Address, error) {
	if len(addressBytes) != AddressSize {
		return nil, errors.Errorf("invalid address size. Want: %d, got: %d",
			AddressSize, len(addressBytes))
	}
	var address Address
	copy(address[:], addressBytes)
	return &address, nil
}

// String returns the Address as a hexadecimal string.
func (address Address) String() string {
	return hex.EncodeToString(address[:])
}

// IsNull returns whether this address is the null address.
func (address *Address) IsNull() bool {
	return *address == NullAddress
}

// Equal returns whether address equals to other.
func (address *Address) Equal(other *Address) bool {
	if address == nil || other == nil {
		return address == other
	}
	return *address == *other
}
