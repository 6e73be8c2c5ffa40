package shardrouter

import (
	"encoding/binary"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
)

// ShardOf deterministically maps an address to a shard index in
// [0, numShards). Every node must compute this bit-for-bit identically:
// the partitioning key is the address's trailing 4 bytes read big-endian.
// numShards of zero maps everything to shard 0.
func ShardOf(address *externalapi.Address, numShards uint32) uint32 {
	if numShards == 0 {
		return 0
	}
	key := binary.BigEndian.Uint32(address[externalapi.AddressSize-4:])
	return key % numShards
}
