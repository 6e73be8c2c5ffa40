package model

import "github.com/shardchain/shardchaind/domain/consensus/model/externalapi"

// Persistence is the durable block/link storage the caller commits the
// directory walker's side-effect log into.
type Persistence interface {
	PutDSBlock(blockNum uint64, blockBytes []byte) error
	PutVCBlock(blockHash *externalapi.Hash, blockBytes []byte) error
	PutFallbackBlock(blockHash *externalapi.Hash, blockBytes []byte) error
	AppendBlockLink(link *externalapi.BlockLink) error
}

// HeaderChain is the caller-owned live DS block chain tip.
type HeaderChain interface {
	LatestDSBlock() *externalapi.DSBlock
	AppendDSBlock(block *externalapi.DSBlock)
}
