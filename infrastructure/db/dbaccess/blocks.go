package dbaccess

import (
	"encoding/binary"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/infrastructure/db/database"
)

var (
	dsBlocksBucket       = database.MakeBucket([]byte("ds-blocks"))
	vcBlocksBucket       = database.MakeBucket([]byte("vc-blocks"))
	fallbackBlocksBucket = database.MakeBucket([]byte("fallback-blocks"))
)

// DatabaseContext carries the database handle the typed accessors in this
// package operate on.
type DatabaseContext struct {
	db database.Database
}

// New returns a new DatabaseContext over the given database.
func New(db database.Database) *DatabaseContext {
	return &DatabaseContext{db: db}
}

// Close closes the underlying database.
func (ctx *DatabaseContext) Close() error {
	return ctx.db.Close()
}

func dsBlockKey(blockNum uint64) []byte {
	var serializedBlockNum [8]byte
	binary.BigEndian.PutUint64(serializedBlockNum[:], blockNum)
	return dsBlocksBucket.Key(serializedBlockNum[:])
}

// StoreDSBlock stores a serialized DS block under its block number.
func StoreDSBlock(ctx *DatabaseContext, blockNum uint64, blockBytes []byte) error {
	return ctx.db.Put(dsBlockKey(blockNum), blockBytes)
}

// FetchDSBlock returns the serialized DS block stored under the given
// block number. Returns database.ErrNotFound if no such block was stored.
func FetchDSBlock(ctx *DatabaseContext, blockNum uint64) ([]byte, error) {
	return ctx.db.Get(dsBlockKey(blockNum))
}

// HasDSBlock returns whether a DS block was stored under the given block
// number.
func HasDSBlock(ctx *DatabaseContext, blockNum uint64) (bool, error) {
	return ctx.db.Has(dsBlockKey(blockNum))
}

// StoreVCBlock stores a serialized VC block under its hash.
func StoreVCBlock(ctx *DatabaseContext, blockHash *externalapi.Hash, blockBytes []byte) error {
	return ctx.db.Put(vcBlocksBucket.Key(blockHash[:]), blockBytes)
}

// FetchVCBlock returns the serialized VC block stored under the given
// hash. Returns database.ErrNotFound if no such block was stored.
func FetchVCBlock(ctx *DatabaseContext, blockHash *externalapi.Hash) ([]byte, error) {
	return ctx.db.Get(vcBlocksBucket.Key(blockHash[:]))
}

// StoreFallbackBlock stores a serialized fallback block (bundled with its
// sharding structure) under the block's hash.
func StoreFallbackBlock(ctx *DatabaseContext, blockHash *externalapi.Hash, blockBytes []byte) error {
	return ctx.db.Put(fallbackBlocksBucket.Key(blockHash[:]), blockBytes)
}

// FetchFallbackBlock returns the serialized fallback block stored under
// the given hash. Returns database.ErrNotFound if no such block was
// stored.
func FetchFallbackBlock(ctx *DatabaseContext, blockHash *externalapi.Hash) ([]byte, error) {
	return ctx.db.Get(fallbackBlocksBucket.Key(blockHash[:]))
}
