package ledger

import (
	"time"

	"github.com/gicbank/gicbank/lib/common/compare"
	"github.com/shopspring/decimal"
)

// Kind is the kind of a transaction.
type Kind int

const (
	// Deposit adds funds to an account.
	Deposit Kind = iota + 1
	// Withdrawal removes funds from an account.
	Withdrawal
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "Deposit"
	case Withdrawal:
		return "Withdrawal"
	}
	return ""
}

// Code returns the single-letter code of the kind.
func (k Kind) Code() string {
	switch k {
	case Deposit:
		return "D"
	case Withdrawal:
		return "W"
	}
	return ""
}

// Transaction is an immutable booking against an account. Sequence is
// the position within the transaction's date, Balance the account
// balance immediately after applying the transaction.
type Transaction struct {
	ID       string
	Sequence int
	Date     time.Time
	Account  string
	Kind     Kind
	Amount   decimal.Decimal
	Balance  decimal.Decimal
}

// Compare defines an order on transactions: by date, with same-day
// transactions ordered by sequence number. The id string is not
// order-sortable once the sequence outgrows its zero-padding.
func Compare(t *Transaction, t2 *Transaction) compare.Order {
	if o := compare.Time(t.Date, t2.Date); o != compare.Equal {
		return o
	}
	return compare.Ordered(t.Sequence, t2.Sequence)
}
