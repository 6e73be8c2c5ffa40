package externalapi

import (
	"math/big"
)

// PackTransactionVersion packs a chain identifier and a transaction format
// version into a transaction's Version field. The chain identifier occupies
// the upper 16 bits.
func PackTransactionVersion(chainID uint32, formatVersion uint32) uint32 {
	return chainID<<16 | formatVersion&0xffff
}

// Transaction is a single value-transfer or contract-call transaction.
// It is constructed and signed externally and is immutable once signed;
// the validation core only ever reads it.
type Transaction struct {
	// Version packs the chain identifier into its upper 16 bits and the
	// transaction format version into its lower 16 bits.
	Version      uint32
	Nonce        uint64
	SenderPubKey PublicKey
	// ToAddr is NullAddress for contract-creation transactions.
	ToAddr Address
	// Amount is a 128-bit unsigned quantity.
	Amount   *big.Int
	GasPrice uint64
	GasLimit uint64
	// Payload is empty for plain transfers; non-empty indicates a
	// smart-contract call or creation.
	Payload   []byte
	Signature Signature
}

// ChainID returns the chain identifier packed into the transaction version.
func (tx *Transaction) ChainID() uint32 {
	return tx.Version >> 16
}

// TransactionReceipt accumulates the admission outcome of a transaction.
type TransactionReceipt struct {
	Epoch   uint64
	GasUsed uint64
	Success bool
}
