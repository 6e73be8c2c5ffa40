package model

import (
	"math/big"

	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
)

// AccountView is a read-only projection of the account state the
// transaction validator checks against.
type AccountView interface {
	Exists(address *externalapi.Address) bool
	BalanceOf(address *externalapi.Address) *big.Int
}

// AccountStoreSnapshot is a caller-owned temporary account store that
// tentatively applies an admitted transaction's amount and nonce updates.
// The caller commits or discards the snapshot as a whole.
type AccountStoreSnapshot interface {
	UpdateAccountsTemp(epoch uint64, numShards uint32, isDSNode bool,
		tx *externalapi.Transaction, receipt *externalapi.TransactionReceipt) bool
}
