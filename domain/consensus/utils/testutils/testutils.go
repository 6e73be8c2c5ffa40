package testutils

import (
	"math/big"
	"net"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensusserialization"
	"github.com/shardchain/shardchaind/domain/consensus/utils/multisig"
)

// AccountStore is an in-memory account state double implementing both
// model.AccountView and model.AccountStoreSnapshot.
type AccountStore struct {
	Balances map[externalapi.Address]*big.Int
	// UpdateCalls counts tentative applications, letting tests assert
	// that rejected transactions never reach the store.
	UpdateCalls int
	// RejectUpdates makes UpdateAccountsTemp refuse every application.
	RejectUpdates bool
}

// NewAccountStore returns an empty in-memory account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{Balances: make(map[externalapi.Address]*big.Int)}
}

// Exists implements model.AccountView.
func (s *AccountStore) Exists(address *externalapi.Address) bool {
	_, ok := s.Balances[*address]
	return ok
}

// BalanceOf implements model.AccountView. Unknown accounts have a zero
// balance.
func (s *AccountStore) BalanceOf(address *externalapi.Address) *big.Int {
	balance, ok := s.Balances[*address]
	if !ok {
		return big.NewInt(0)
	}
	return balance
}

// UpdateAccountsTemp implements model.AccountStoreSnapshot.
func (s *AccountStore) UpdateAccountsTemp(epoch uint64, numShards uint32, isDSNode bool,
	tx *externalapi.Transaction, receipt *externalapi.TransactionReceipt) bool {

	if s.RejectUpdates {
		return false
	}
	s.UpdateCalls++
	receipt.Success = true
	return true
}

// NodeContext is a static model.NodeContext double.
type NodeContext struct {
	LookupNode bool
	DSIdle     bool
	DSNode     bool
	Epoch      uint64
	Shard      uint32
	Shards     uint32
}

// IsLookupNode implements model.NodeContext.
func (c *NodeContext) IsLookupNode() bool { return c.LookupNode }

// IsDSIdle implements model.NodeContext.
func (c *NodeContext) IsDSIdle() bool { return c.DSIdle }

// IsDSNode implements model.NodeContext.
func (c *NodeContext) IsDSNode() bool { return c.DSNode }

// CurrentEpoch implements model.NodeContext.
func (c *NodeContext) CurrentEpoch() uint64 { return c.Epoch }

// ShardID implements model.NodeContext.
func (c *NodeContext) ShardID() uint32 { return c.Shard }

// NumShards implements model.NodeContext.
func (c *NodeContext) NumShards() uint32 { return c.Shards }

// HeaderChain is an in-memory model.HeaderChain double.
type HeaderChain struct {
	Blocks []*externalapi.DSBlock
}

// LatestDSBlock implements model.HeaderChain.
func (c *HeaderChain) LatestDSBlock() *externalapi.DSBlock {
	return c.Blocks[len(c.Blocks)-1]
}

// AppendDSBlock implements model.HeaderChain.
func (c *HeaderChain) AppendDSBlock(block *externalapi.DSBlock) {
	c.Blocks = append(c.Blocks, block)
}

// Persistence is an in-memory model.Persistence double recording every
// commit in order.
type Persistence struct {
	DSBlocks       map[uint64][]byte
	VCBlocks       map[externalapi.Hash][]byte
	FallbackBlocks map[externalapi.Hash][]byte
	BlockLinks     []externalapi.BlockLink
}

// NewPersistence returns an empty in-memory persistence double.
func NewPersistence() *Persistence {
	return &Persistence{
		DSBlocks:       make(map[uint64][]byte),
		VCBlocks:       make(map[externalapi.Hash][]byte),
		FallbackBlocks: make(map[externalapi.Hash][]byte),
	}
}

// PutDSBlock implements model.Persistence.
func (p *Persistence) PutDSBlock(blockNum uint64, blockBytes []byte) error {
	p.DSBlocks[blockNum] = blockBytes
	return nil
}

// PutVCBlock implements model.Persistence.
func (p *Persistence) PutVCBlock(blockHash *externalapi.Hash, blockBytes []byte) error {
	p.VCBlocks[*blockHash] = blockBytes
	return nil
}

// PutFallbackBlock implements model.Persistence.
func (p *Persistence) PutFallbackBlock(blockHash *externalapi.Hash, blockBytes []byte) error {
	p.FallbackBlocks[*blockHash] = blockBytes
	return nil
}

// AppendBlockLink implements model.Persistence.
func (p *Persistence) AppendBlockLink(link *externalapi.BlockLink) error {
	p.BlockLinks = append(p.BlockLinks, *link)
	return nil
}

// GenerateKeys generates count fresh secp256k1 key pairs.
func GenerateKeys(t *testing.T, count int) []*secp256k1.PrivateKey {
	privateKeys := make([]*secp256k1.PrivateKey, count)
	for i := range privateKeys {
		privateKey, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			t.Fatalf("Failed to generate a private key: %v", err)
		}
		privateKeys[i] = privateKey
	}
	return privateKeys
}

// CommitteeFromKeys builds a committee whose member i holds
// privateKeys[i] and a synthetic network identity.
func CommitteeFromKeys(privateKeys []*secp256k1.PrivateKey) externalapi.Committee {
	committee := make(externalapi.Committee, len(privateKeys))
	for i, privateKey := range privateKeys {
		committee[i] = externalapi.CommitteeMember{
			PubKey: *multisig.SerializePublicKey(privateKey.PubKey()),
			Peer:   externalapi.Peer{IP: net.IPv4(127, 0, 0, 1), Port: uint16(10000 + i)},
		}
	}
	return committee
}

// CoSign produces a full two-round co-signature envelope over
// headerBytes. Members whose signerBitmap bit is set participate in both
// rounds; the aggregate signatures are produced under the sum of their
// keys, which is what the verifier reconstructs from the bitmap.
func CoSign(t *testing.T, headerBytes []byte, privateKeys []*secp256k1.PrivateKey,
	signerBitmap []bool) externalapi.CoSignatures {

	if len(signerBitmap) != len(privateKeys) {
		t.Fatalf("signer bitmap size %d does not match key count %d", len(signerBitmap), len(privateKeys))
	}

	var signerKeys []*secp256k1.PrivateKey
	for i, signs := range signerBitmap {
		if signs {
			signerKeys = append(signerKeys, privateKeys[i])
		}
	}
	aggregatedKey, err := multisig.AggregatePrivateKeys(signerKeys)
	if err != nil {
		t.Fatalf("Failed to aggregate private keys: %v", err)
	}

	cs1, err := multisig.SignMessage(aggregatedKey, headerBytes)
	if err != nil {
		t.Fatalf("Failed to sign round 1: %v", err)
	}

	b1 := make([]bool, len(signerBitmap))
	copy(b1, signerBitmap)
	coSigs := externalapi.CoSignatures{CS1: *cs1, B1: b1}
	message := consensusserialization.CoSignedMessage(headerBytes, &coSigs)
	cs2, err := multisig.SignMessage(aggregatedKey, message)
	if err != nil {
		t.Fatalf("Failed to sign round 2: %v", err)
	}

	coSigs.CS2 = *cs2
	coSigs.B2 = make([]bool, len(signerBitmap))
	copy(coSigs.B2, signerBitmap)
	return coSigs
}

// AllSet returns a bitmap of the given width with every bit set.
func AllSet(width int) []bool {
	bitmap := make([]bool, width)
	for i := range bitmap {
		bitmap[i] = true
	}
	return bitmap
}
