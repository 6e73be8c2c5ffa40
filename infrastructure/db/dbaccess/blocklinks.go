package dbaccess

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/infrastructure/db/database"
)

var (
	blockLinksBucket  = database.MakeBucket([]byte("block-links"))
	blockLinkCountKey = database.MakeBucket([]byte("block-link-chain")).Key([]byte("count"))
)

const serializedBlockLinkSize = 8 + 8 + 1 + externalapi.HashSize

func blockLinkKey(totalIndex uint64) []byte {
	var serializedIndex [8]byte
	binary.BigEndian.PutUint64(serializedIndex[:], totalIndex)
	return blockLinksBucket.Key(serializedIndex[:])
}

func serializeBlockLink(link *externalapi.BlockLink) []byte {
	serialized := make([]byte, serializedBlockLinkSize)
	binary.BigEndian.PutUint64(serialized[:8], link.TotalIndex)
	binary.BigEndian.PutUint64(serialized[8:16], link.DSEpochNum)
	serialized[16] = byte(link.Kind)
	copy(serialized[17:], link.BlockHash[:])
	return serialized
}

func deserializeBlockLink(serialized []byte) (*externalapi.BlockLink, error) {
	if len(serialized) != serializedBlockLinkSize {
		return nil, errors.Errorf("serialized block link is %d bytes, expected %d",
			len(serialized), serializedBlockLinkSize)
	}
	link := &externalapi.BlockLink{
		TotalIndex: binary.BigEndian.Uint64(serialized[:8]),
		DSEpochNum: binary.BigEndian.Uint64(serialized[8:16]),
		Kind:       externalapi.BlockKind(serialized[16]),
	}
	copy(link.BlockHash[:], serialized[17:])
	return link, nil
}

// StoreBlockLink appends a block link to the link chain. Links must be
// appended exactly once each, at strictly increasing total indices; an
// out-of-order append is rejected.
func StoreBlockLink(ctx *DatabaseContext, link *externalapi.BlockLink) error {
	count, err := BlockLinkCount(ctx)
	if err != nil {
		return err
	}
	if link.TotalIndex != count {
		return errors.Errorf("block link index %d is not the next index in the chain (%d links stored)",
			link.TotalIndex, count)
	}

	err = ctx.db.Put(blockLinkKey(link.TotalIndex), serializeBlockLink(link))
	if err != nil {
		return err
	}

	var serializedCount [8]byte
	binary.BigEndian.PutUint64(serializedCount[:], count+1)
	return ctx.db.Put(blockLinkCountKey, serializedCount[:])
}

// FetchBlockLink returns the block link stored at the given total index.
// Returns database.ErrNotFound if no such link exists.
func FetchBlockLink(ctx *DatabaseContext, totalIndex uint64) (*externalapi.BlockLink, error) {
	serialized, err := ctx.db.Get(blockLinkKey(totalIndex))
	if err != nil {
		return nil, err
	}
	return deserializeBlockLink(serialized)
}

// BlockLinkCount returns the number of links stored in the link chain.
func BlockLinkCount(ctx *DatabaseContext) (uint64, error) {
	serialized, err := ctx.db.Get(blockLinkCountKey)
	if err != nil {
		if database.IsNotFoundError(err) {
			return 0, nil
		}
		return 0, err
	}
	if len(serialized) != 8 {
		return 0, errors.Errorf("serialized block link count is %d bytes, expected 8", len(serialized))
	}
	return binary.BigEndian.Uint64(serialized), nil
}
