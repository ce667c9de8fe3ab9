package ledger

import (
	"sort"
	"time"

	"github.com/gicbank/gicbank/lib/common/compare"
	"github.com/shopspring/decimal"
)

// Account is the state of a single account: its current balance and
// its transaction history, kept ordered by date and id.
type Account struct {
	ID string

	balance      decimal.Decimal
	transactions []*Transaction
}

func newAccount(id string) *Account {
	return &Account{ID: id}
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Transactions returns the account's history, date ascending with
// same-day transactions ordered by id.
func (a *Account) Transactions() []*Transaction {
	res := make([]*Transaction, len(a.transactions))
	copy(res, a.transactions)
	return res
}

// insert adds the transaction at its ordered position, so that reads
// never have to sort.
func (a *Account) insert(t *Transaction) {
	i := sort.Search(len(a.transactions), func(i int) bool {
		return Compare(a.transactions[i], t) != compare.Smaller
	})
	a.transactions = append(a.transactions, nil)
	copy(a.transactions[i+1:], a.transactions[i:])
	a.transactions[i] = t
}

// latestBefore returns the last transaction dated strictly before d,
// or nil if there is none.
func (a *Account) latestBefore(d time.Time) *Transaction {
	i := sort.Search(len(a.transactions), func(i int) bool {
		return !a.transactions[i].Date.Before(d)
	})
	if i == 0 {
		return nil
	}
	return a.transactions[i-1]
}
