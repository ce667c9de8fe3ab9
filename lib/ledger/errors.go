package ledger

import "errors"

var (
	// ErrInvalidAmount indicates a non-positive amount or more than
	// two decimal places.
	ErrInvalidAmount = errors.New("amount must be positive with at most two decimal places")

	// ErrInvalidKind indicates a transaction kind other than deposit
	// or withdrawal.
	ErrInvalidKind = errors.New("transaction type must be deposit or withdrawal")

	// ErrFirstTransactionMustBeDeposit indicates a withdrawal against
	// an account which does not exist yet.
	ErrFirstTransactionMustBeDeposit = errors.New("first transaction for an account cannot be a withdrawal")

	// ErrInsufficientBalance indicates a withdrawal exceeding the
	// account balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound indicates an unknown account id.
	ErrAccountNotFound = errors.New("account not found")
)
