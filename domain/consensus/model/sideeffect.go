package model

import "github.com/shardchain/shardchaind/domain/consensus/model/externalapi"

// SideEffect is one deferred persistence action emitted by the directory
// chain walker. The walker never persists anything itself; it returns an
// ordered side-effect log and the caller commits it. This keeps a failed
// sequence from leaving partial state behind unless the caller decides to
// commit the accepted prefix.
type SideEffect interface {
	isSideEffect()
}

// AppendBlockLinkEffect appends one link to the block link chain.
type AppendBlockLinkEffect struct {
	Link externalapi.BlockLink
}

// StoreDSBlockEffect stores a serialized DS block under its block number.
type StoreDSBlockEffect struct {
	BlockNum   uint64
	BlockBytes []byte
}

// AdvanceDSChainEffect appends a DS block to the live DS header chain.
type AdvanceDSChainEffect struct {
	Block *externalapi.DSBlock
}

// StoreVCBlockEffect stores a serialized VC block under its hash.
type StoreVCBlockEffect struct {
	BlockHash  externalapi.Hash
	BlockBytes []byte
}

// StoreFallbackBlockEffect stores a serialized fallback block (with its
// sharding structure) under the block's hash.
type StoreFallbackBlockEffect struct {
	BlockHash  externalapi.Hash
	BlockBytes []byte
}

func (*AppendBlockLinkEffect) isSideEffect()    {}
func (*StoreDSBlockEffect) isSideEffect()       {}
func (*AdvanceDSChainEffect) isSideEffect()     {}
func (*StoreVCBlockEffect) isSideEffect()       {}
func (*StoreFallbackBlockEffect) isSideEffect() {}
