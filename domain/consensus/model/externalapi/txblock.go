package externalapi

// TxBlockHeader is the header of a transaction block.
type TxBlockHeader struct {
	BlockNum uint64
	// DSBlockNum is the DS epoch this transaction block was produced under.
	DSBlockNum uint64
	GasPrice   uint64
	// PrevHash is the self hash of the preceding transaction block.
	PrevHash Hash
}

// TxBlock is a transaction block. BlockHash is the block's self hash,
// computed over the serialized header; adjacent blocks in a valid chain
// satisfy blocks[i].BlockHash == blocks[i+1].Header.PrevHash.
type TxBlock struct {
	Header    TxBlockHeader
	BlockHash Hash
	CoSigs    CoSignatures
}
