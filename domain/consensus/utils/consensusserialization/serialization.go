package consensusserialization

import (
	"bytes"
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/domain/consensus/utils/bitvector"
	"github.com/shardchain/shardchaind/domain/consensus/utils/constants"
)

// The canonical encodings in this package are part of the wire contract:
// every co-signed buffer and every committed hash is computed over them,
// so they must stay bit-exact across nodes. All scalars are big-endian
// and fixed width; variable-length fields carry a uint32 count prefix.

const amountSize = constants.MaxTransactionAmountBits / 8

type writer struct {
	buffer bytes.Buffer
}

func (w *writer) writeUint16(value uint16) {
	var scratch [2]byte
	binary.BigEndian.PutUint16(scratch[:], value)
	w.buffer.Write(scratch[:])
}

func (w *writer) writeUint32(value uint32) {
	var scratch [4]byte
	binary.BigEndian.PutUint32(scratch[:], value)
	w.buffer.Write(scratch[:])
}

func (w *writer) writeUint64(value uint64) {
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], value)
	w.buffer.Write(scratch[:])
}

func (w *writer) writeBytes(data []byte) {
	w.buffer.Write(data)
}

func (w *writer) writeVarBytes(data []byte) {
	w.writeUint32(uint32(len(data)))
	w.buffer.Write(data)
}

func (w *writer) writePeer(peer *externalapi.Peer) {
	var ip [16]byte
	if ip16 := peer.IP.To16(); ip16 != nil {
		copy(ip[:], ip16)
	}
	w.writeBytes(ip[:])
	w.writeUint16(peer.Port)
}

func (w *writer) writeCommitteeMembers(members []externalapi.CommitteeMember) {
	w.writeUint32(uint32(len(members)))
	for i := range members {
		w.writeBytes(members[i].PubKey[:])
		w.writePeer(&members[i].Peer)
	}
}

func (w *writer) bytes() []byte {
	return w.buffer.Bytes()
}

// SerializeTransactionCoreFields serializes the fields of a transaction
// that its signature covers. An error is returned for amounts outside the
// 128-bit range.
func SerializeTransactionCoreFields(tx *externalapi.Transaction) ([]byte, error) {
	amount, err := serializeAmount(tx.Amount)
	if err != nil {
		return nil, err
	}

	w := &writer{}
	w.writeUint32(tx.Version)
	w.writeUint64(tx.Nonce)
	w.writeBytes(tx.SenderPubKey[:])
	w.writeBytes(tx.ToAddr[:])
	w.writeBytes(amount)
	w.writeUint64(tx.GasPrice)
	w.writeUint64(tx.GasLimit)
	w.writeVarBytes(tx.Payload)
	return w.bytes(), nil
}

func serializeAmount(amount *big.Int) ([]byte, error) {
	if amount == nil {
		return nil, errors.New("transaction amount is nil")
	}
	if amount.Sign() < 0 || amount.BitLen() > constants.MaxTransactionAmountBits {
		return nil, errors.Errorf("transaction amount %s is outside the unsigned %d-bit range",
			amount, constants.MaxTransactionAmountBits)
	}
	serialized := make([]byte, amountSize)
	amount.FillBytes(serialized)
	return serialized, nil
}

// SerializeDSBlockHeader serializes a DS block header canonically.
func SerializeDSBlockHeader(header *externalapi.DSBlockHeader) []byte {
	w := &writer{}
	w.writeUint64(header.BlockNum)
	w.writeBytes(header.ShardingHash[:])
	w.writeUint64(header.GasPrice)
	w.writeBytes(header.LeaderPubKey[:])
	w.writeUint64(header.Timestamp)
	w.writeCommitteeMembers(header.IncomingMembers)
	return w.bytes()
}

// SerializeVCBlockHeader serializes a VC block header canonically.
func SerializeVCBlockHeader(header *externalapi.VCBlockHeader) []byte {
	w := &writer{}
	w.writeUint64(header.ViewChangeDSEpochNum)
	w.writeUint64(header.ViewChangeEpochNum)
	w.writeBytes(header.CandidateLeaderPubKey[:])
	w.writePeer(&header.CandidateLeaderPeer)
	w.writeCommitteeMembers(header.FaultyLeaders)
	return w.bytes()
}

// SerializeFallbackBlockHeader serializes a fallback block header
// canonically.
func SerializeFallbackBlockHeader(header *externalapi.FallbackBlockHeader) []byte {
	w := &writer{}
	w.writeUint64(header.FallbackDSEpochNum)
	w.writeUint64(header.FallbackEpochNum)
	w.writeUint32(header.ShardID)
	w.writeBytes(header.LeaderPubKey[:])
	w.writePeer(&header.LeaderPeer)
	return w.bytes()
}

// SerializeTxBlockHeader serializes a transaction block header canonically.
func SerializeTxBlockHeader(header *externalapi.TxBlockHeader) []byte {
	w := &writer{}
	w.writeUint64(header.BlockNum)
	w.writeUint64(header.DSBlockNum)
	w.writeUint64(header.GasPrice)
	w.writeBytes(header.PrevHash[:])
	return w.bytes()
}

// SerializeShardingStructure serializes a sharding structure under the
// given structure version. This is the buffer the sharding hash commits to.
func SerializeShardingStructure(version uint32, shards externalapi.ShardingStructure) []byte {
	w := &writer{}
	w.writeUint32(version)
	w.writeUint32(uint32(len(shards)))
	for _, shard := range shards {
		w.writeCommitteeMembers(shard)
	}
	return w.bytes()
}

// CoSignedMessage builds the canonical buffer a block's final-round
// co-signature signs: serialize(header) ‖ serialize(CS1) ‖ bitvector(B1).
func CoSignedMessage(headerBytes []byte, coSigs *externalapi.CoSignatures) []byte {
	w := &writer{}
	w.writeBytes(headerBytes)
	w.writeBytes(coSigs.CS1[:])
	w.writeBytes(bitvector.Serialize(coSigs.B1))
	return w.bytes()
}

func serializeCoSignatures(w *writer, coSigs *externalapi.CoSignatures) {
	w.writeBytes(coSigs.CS1[:])
	w.writeBytes(bitvector.Serialize(coSigs.B1))
	w.writeBytes(coSigs.CS2[:])
	w.writeBytes(bitvector.Serialize(coSigs.B2))
}

// SerializeDSBlock serializes a full DS block, header and co-signature
// envelope, for persistence.
func SerializeDSBlock(block *externalapi.DSBlock) []byte {
	w := &writer{}
	w.writeBytes(SerializeDSBlockHeader(&block.Header))
	serializeCoSignatures(w, &block.CoSigs)
	return w.bytes()
}

// SerializeVCBlock serializes a full VC block for persistence.
func SerializeVCBlock(block *externalapi.VCBlock) []byte {
	w := &writer{}
	w.writeBytes(SerializeVCBlockHeader(&block.Header))
	serializeCoSignatures(w, &block.CoSigs)
	return w.bytes()
}

// SerializeFallbackBlockWithShards serializes a fallback block together
// with its bundled sharding structure for persistence.
func SerializeFallbackBlockWithShards(block *externalapi.FallbackBlockWithShards) []byte {
	w := &writer{}
	w.writeBytes(SerializeFallbackBlockHeader(&block.Block.Header))
	serializeCoSignatures(w, &block.Block.CoSigs)
	w.writeBytes(SerializeShardingStructure(constants.ShardingStructureVersion, block.Shards))
	return w.bytes()
}

// SerializeTxBlock serializes a full transaction block for persistence.
func SerializeTxBlock(block *externalapi.TxBlock) []byte {
	w := &writer{}
	w.writeBytes(SerializeTxBlockHeader(&block.Header))
	w.writeBytes(block.BlockHash[:])
	serializeCoSignatures(w, &block.CoSigs)
	return w.bytes()
}
