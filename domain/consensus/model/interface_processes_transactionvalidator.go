package model

import "github.com/shardchain/shardchaind/domain/consensus/model/externalapi"

// TransactionValidator exposes the single-transaction admission checks,
// after which it's possible to determine whether a transaction is
// acceptable on this node.
type TransactionValidator interface {
	// VerifyTransaction verifies the transaction's Schnorr signature over
	// its canonical core fields.
	VerifyTransaction(tx *externalapi.Transaction) bool

	// CheckCreatedTransaction admits a transaction drawn from the node's
	// own pool and tentatively applies it to the account store snapshot.
	CheckCreatedTransaction(tx *externalapi.Transaction, receipt *externalapi.TransactionReceipt) bool

	// CheckCreatedTransactionFromLookup admits a transaction forwarded by
	// a lookup node. It mutates nothing.
	CheckCreatedTransactionFromLookup(tx *externalapi.Transaction) bool
}
