package addresses

import (
	"crypto/sha256"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
)

// FromPublicKey derives an account address from a serialized public key:
// the trailing AddressSize bytes of SHA-256(publicKey).
func FromPublicKey(publicKey *externalapi.PublicKey) externalapi.Address {
	digest := sha256.Sum256(publicKey[:])

	var address externalapi.Address
	copy(address[:], digest[len(digest)-externalapi.AddressSize:])
	return address
}
