package externalapi

import (
	"fmt"
	"net"
)

// Peer is the network identity of a committee member.
type Peer struct {
	IP   net.IP
	Port uint16
}

// String returns the Peer in host:port form.
func (peer Peer) String() string {
	return fmt.Sprintf("%s:%d", peer.IP, peer.Port)
}

// CommitteeMember is a single (public key, network identity) pair of a
// consensus committee.
type CommitteeMember struct {
	PubKey PublicKey
	Peer   Peer
}

// Committee is an ordered sequence of members. The order is significant:
// member positions are index-aligned with the B1/B2 co-signature bitmaps
// of any block the committee co-signs.
type Committee []CommitteeMember

// Clone returns a copy of the committee that may be mutated without
// affecting the original.
func (committee Committee) Clone() Committee {
	clone := make(Committee, len(committee))
	copy(clone, committee)
	return clone
}

// IndexOf returns the position of the member holding the given public key,
// or -1 if no such member exists.
func (committee Committee) IndexOf(pubKey *PublicKey) int {
	for i := range committee {
		if committee[i].PubKey.Equal(pubKey) {
			return i
		}
	}
	return -1
}

// ShardingStructure is the ordered list of shard committees active in a
// DS epoch. Its hash is committed to by the DS block header so that a
// fallback block can prove which shard co-signed it.
type ShardingStructure []Committee
