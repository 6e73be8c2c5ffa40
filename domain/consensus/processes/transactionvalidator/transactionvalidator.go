package transactionvalidator

import (
	"github.com/shardchain/shardchaind/domain/consensus/model"
	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/domain/consensus/ruleerrors"
	"github.com/shardchain/shardchaind/domain/consensus/utils/addresses"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensusserialization"
	"github.com/shardchain/shardchaind/domain/consensus/utils/shardrouter"
)

// transactionValidator exposes a set of validation classes, after which
// it's possible to determine whether a transaction is acceptable to this
// node.
type transactionValidator struct {
	chainID       uint32
	nodeContext   model.NodeContext
	accountView   model.AccountView
	accountStore  model.AccountStoreSnapshot
	cryptoAdapter model.CryptoAdapter
	headerChain   model.HeaderChain
}

// New instantiates a new TransactionValidator
func New(chainID uint32,
	nodeContext model.NodeContext,
	accountView model.AccountView,
	accountStore model.AccountStoreSnapshot,
	cryptoAdapter model.CryptoAdapter,
	headerChain model.HeaderChain,
) model.TransactionValidator {

	return &transactionValidator{
		chainID:       chainID,
		nodeContext:   nodeContext,
		accountView:   accountView,
		accountStore:  accountStore,
		cryptoAdapter: cryptoAdapter,
		headerChain:   headerChain,
	}
}

// VerifyTransaction verifies the transaction's Schnorr signature over its
// canonical core fields under the sender's public key.
func (v *transactionValidator) VerifyTransaction(tx *externalapi.Transaction) bool {
	coreFields, err := consensusserialization.SerializeTransactionCoreFields(tx)
	if err != nil {
		log.Warnf("%s: failed to serialize transaction core fields: %s", ruleerrors.ErrMalformedInput, err)
		return false
	}
	return v.cryptoAdapter.VerifySingle(coreFields, &tx.Signature, &tx.SenderPubKey)
}

// CheckCreatedTransaction admits a transaction drawn from the node's own
// pool. On acceptance the receipt is stamped with the current epoch and
// the transaction is tentatively applied to the account store snapshot.
//
// A lookup node has no shard state to judge against, so the check
// trivially passes there with a warning. This mirrors long-standing
// network behavior; see the lookup-mode note in DESIGN.md.
func (v *transactionValidator) CheckCreatedTransaction(tx *externalapi.Transaction,
	receipt *externalapi.TransactionReceipt) bool {

	if v.nodeContext.IsLookupNode() {
		log.Warnf("CheckCreatedTransaction not expected to be called from a lookup node")
		return true
	}

	if tx.ChainID() != v.chainID {
		log.Warnf("%s: got %d, expected %d", ruleerrors.ErrChainIDMismatch, tx.ChainID(), v.chainID)
		return false
	}

	senderAddress := addresses.FromPublicKey(&tx.SenderPubKey)
	if senderAddress.IsNull() {
		log.Warnf("%s: invalid address for issuing transactions", ruleerrors.ErrNullSenderAddress)
		return false
	}

	if !v.accountView.Exists(&senderAddress) {
		log.Warnf("%s: sender address %s not found, transaction rejected", ruleerrors.ErrUnknownAccount, senderAddress)
		return false
	}

	if v.accountView.BalanceOf(&senderAddress).Cmp(tx.Amount) < 0 {
		log.Warnf("%s: source account %s has balance = %s, debit amount = %s",
			ruleerrors.ErrInsufficientBalance, senderAddress, v.accountView.BalanceOf(&senderAddress), tx.Amount)
		return false
	}

	receipt.Epoch = v.nodeContext.CurrentEpoch()

	if !v.accountStore.UpdateAccountsTemp(v.nodeContext.CurrentEpoch(),
		v.nodeContext.NumShards(), v.nodeContext.IsDSNode(), tx, receipt) {
		log.Warnf("%s: temporary account store refused the transaction", ruleerrors.ErrTempStoreRejected)
		return false
	}
	return true
}

// CheckCreatedTransactionFromLookup admits a transaction forwarded by a
// lookup node. It is a pure check: no state is mutated.
func (v *transactionValidator) CheckCreatedTransactionFromLookup(tx *externalapi.Transaction) bool {
	if v.nodeContext.IsLookupNode() {
		log.Warnf("CheckCreatedTransactionFromLookup not expected to be called from a lookup node")
		return true
	}

	if tx.ChainID() != v.chainID {
		log.Warnf("%s: got %d, expected %d", ruleerrors.ErrChainIDMismatch, tx.ChainID(), v.chainID)
		return false
	}

	senderAddress := addresses.FromPublicKey(&tx.SenderPubKey)
	if senderAddress.IsNull() {
		log.Warnf("%s: invalid address for issuing transactions", ruleerrors.ErrNullSenderAddress)
		return false
	}

	// Shard routing only binds a shard node acting normally. A DS node in
	// any active mode sees transactions from every shard.
	if v.nodeContext.IsDSIdle() {
		numShards := v.nodeContext.NumShards()
		senderShard := shardrouter.ShardOf(&senderAddress, numShards)
		if senderShard != v.nodeContext.ShardID() {
			log.Warnf("%s: sender = %s, correct shard = %d, this shard = %d",
				ruleerrors.ErrShardMisroute, senderAddress, senderShard, v.nodeContext.ShardID())
			return false
		}

		// Contract calls must route within one shard.
		if len(tx.Payload) > 0 && !tx.ToAddr.IsNull() {
			recipientShard := shardrouter.ShardOf(&tx.ToAddr, numShards)
			if recipientShard != senderShard {
				log.Warnf("%s: sender shard %d and recipient shard %d differ",
					ruleerrors.ErrCrossShardContractCall, senderShard, recipientShard)
				return false
			}
		}
	}

	if minGasPrice := v.headerChain.LatestDSBlock().Header.GasPrice; tx.GasPrice < minGasPrice {
		log.Warnf("%s: gas price %d lower than minimum allowable %d", ruleerrors.ErrGasPriceFloor, tx.GasPrice, minGasPrice)
		return false
	}

	if !v.VerifyTransaction(tx) {
		log.Warnf("%s: transaction from %s rejected", ruleerrors.ErrSignatureInvalid, senderAddress)
		return false
	}

	if !v.accountView.Exists(&senderAddress) {
		log.Warnf("%s: sender address %s not found, transaction rejected", ruleerrors.ErrUnknownAccount, senderAddress)
		return false
	}

	if v.accountView.BalanceOf(&senderAddress).Cmp(tx.Amount) < 0 {
		log.Warnf("%s: source account %s has balance = %s, debit amount = %s",
			ruleerrors.ErrInsufficientBalance, senderAddress, v.accountView.BalanceOf(&senderAddress), tx.Amount)
		return false
	}

	return true
}
