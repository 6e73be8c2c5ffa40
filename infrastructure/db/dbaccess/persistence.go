package dbaccess

import (
	"github.com/shardchain/shardchaind/domain/consensus/model"
	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
)

// persistence adapts a DatabaseContext to the validation core's
// model.Persistence contract.
type persistence struct {
	ctx *DatabaseContext
}

// NewPersistence returns a model.Persistence backed by the given database
// context.
func NewPersistence(ctx *DatabaseContext) model.Persistence {
	return &persistence{ctx: ctx}
}

func (p *persistence) PutDSBlock(blockNum uint64, blockBytes []byte) error {
	return StoreDSBlock(p.ctx, blockNum, blockBytes)
}

func (p *persistence) PutVCBlock(blockHash *externalapi.Hash, blockBytes []byte) error {
	return StoreVCBlock(p.ctx, blockHash, blockBytes)
}

func (p *persistence) PutFallbackBlock(blockHash *externalapi.Hash, blockBytes []byte) error {
	return StoreFallbackBlock(p.ctx, blockHash, blockBytes)
}

func (p *persistence) AppendBlockLink(link *externalapi.BlockLink) error {
	return StoreBlockLink(p.ctx, link)
}
