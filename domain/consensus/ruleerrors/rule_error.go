package ruleerrors

// These constants are used to identify a specific RuleError.
var (
	// ErrChainIDMismatch indicates the chain identifier packed into a
	// transaction's version field is not this node's chain identifier.
	ErrChainIDMismatch = newRuleError("ErrChainIDMismatch")

	// ErrNullSenderAddress indicates the sender public key derives to the
	// null address, which may never issue transactions.
	ErrNullSenderAddress = newRuleError("ErrNullSenderAddress")

	// ErrUnknownAccount indicates the sender account does not exist in
	// the local account state.
	ErrUnknownAccount = newRuleError("ErrUnknownAccount")

	// ErrInsufficientBalance indicates the sender balance does not cover
	// the transaction amount.
	ErrInsufficientBalance = newRuleError("ErrInsufficientBalance")

	// ErrShardMisroute indicates the sender address does not route to the
	// shard validating the transaction.
	ErrShardMisroute = newRuleError("ErrShardMisroute")

	// ErrCrossShardContractCall indicates a contract-call transaction
	// whose recipient routes to a different shard than its sender.
	// Contract calls must route within one shard.
	ErrCrossShardContractCall = newRuleError("ErrCrossShardContractCall")

	// ErrGasPriceFloor indicates the transaction gas price is below the
	// minimum committed by the DS chain tip.
	ErrGasPriceFloor = newRuleError("ErrGasPriceFloor")

	// ErrSignatureInvalid indicates a single Schnorr signature check
	// failed.
	ErrSignatureInvalid = newRuleError("ErrSignatureInvalid")

	// ErrTempStoreRejected indicates the temporary account store refused
	// the tentative application of the transaction.
	ErrTempStoreRejected = newRuleError("ErrTempStoreRejected")

	// ErrCommitteeBitmapMismatch indicates a co-signed block whose
	// round-2 bitmap length does not equal the committee size.
	ErrCommitteeBitmapMismatch = newRuleError("ErrCommitteeBitmapMismatch")

	// ErrThresholdUnmet indicates a co-signature produced by fewer
	// signers than consensus requires.
	ErrThresholdUnmet = newRuleError("ErrThresholdUnmet")

	// ErrAggregateVerifyFailed indicates the aggregate Schnorr signature
	// did not verify against the aggregated signer keys.
	ErrAggregateVerifyFailed = newRuleError("ErrAggregateVerifyFailed")

	// ErrNonSequentialDSBlock indicates a DS block whose number is not
	// exactly one past the current DS tip.
	ErrNonSequentialDSBlock = newRuleError("ErrNonSequentialDSBlock")

	// ErrWrongVCEpoch indicates a VC block that does not apply to the
	// next DS epoch.
	ErrWrongVCEpoch = newRuleError("ErrWrongVCEpoch")

	// ErrWrongFallbackEpoch indicates a fallback block that does not
	// apply to the next DS epoch.
	ErrWrongFallbackEpoch = newRuleError("ErrWrongFallbackEpoch")

	// ErrShardingHashMismatch indicates a fallback block whose bundled
	// sharding structure does not hash to the committed sharding hash.
	ErrShardingHashMismatch = newRuleError("ErrShardingHashMismatch")

	// ErrUnknownShardID indicates a fallback block naming a shard that
	// does not exist in its bundled sharding structure.
	ErrUnknownShardID = newRuleError("ErrUnknownShardID")

	// ErrBrokenTxBlockChain indicates a parent-hash mismatch between
	// adjacent transaction blocks.
	ErrBrokenTxBlockChain = newRuleError("ErrBrokenTxBlockChain")

	// ErrStaleTxBlockTip indicates the caller fetched a transaction-block
	// tip older than its own directory view.
	ErrStaleTxBlockTip = newRuleError("ErrStaleTxBlockTip")

	// ErrStaleDSInfo indicates the caller's directory view is behind the
	// transaction-block tip; the caller should refetch and retry.
	ErrStaleDSInfo = newRuleError("ErrStaleDSInfo")

	// ErrMalformedInput indicates an input that could not be decoded or
	// serialized into its canonical form.
	ErrMalformedInput = newRuleError("ErrMalformedInput")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a transaction or block sequence failed due to one of the
// many validation rules. The caller can use type assertions to determine
// if a failure was specifically due to a rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}
