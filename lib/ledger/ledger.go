// Package ledger implements the single-branch ledger: accounts, their
// transaction histories and the rules for applying deposits and
// withdrawals. All amounts are fixed-point decimals. The ledger holds
// its state in memory only and performs no I/O.
package ledger

import (
	"fmt"
	"time"

	"github.com/gicbank/gicbank/lib/common/date"
	"github.com/shopspring/decimal"
)

// Ledger owns the accounts and assigns transaction ids. It is an
// explicit context object: callers create as many independent ledgers
// as they need. A Ledger is not safe for concurrent use.
type Ledger struct {
	accounts map[string]*Account
	sequence map[time.Time]int
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[string]*Account),
		sequence: make(map[time.Time]int),
	}
}

// Apply validates and applies a single transaction. The account is
// created on its first deposit. On failure the ledger is left
// unchanged. The returned transaction is an immutable snapshot.
func (l *Ledger) Apply(d time.Time, accountID string, kind Kind, amount decimal.Decimal) (*Transaction, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return nil, ErrInvalidAmount
	}
	if kind != Deposit && kind != Withdrawal {
		return nil, ErrInvalidKind
	}
	account, ok := l.accounts[accountID]
	if !ok {
		if kind == Withdrawal {
			return nil, ErrFirstTransactionMustBeDeposit
		}
		account = newAccount(accountID)
		l.accounts[accountID] = account
	}
	balance := account.balance
	switch kind {
	case Deposit:
		balance = balance.Add(amount)
	case Withdrawal:
		if amount.GreaterThan(balance) {
			return nil, ErrInsufficientBalance
		}
		balance = balance.Sub(amount)
	}
	day := date.Day(d)
	l.sequence[day]++
	seq := l.sequence[day]
	t := &Transaction{
		ID:       fmt.Sprintf("%s-%02d", day.Format("20060102"), seq),
		Sequence: seq,
		Date:     day,
		Account:  accountID,
		Kind:     kind,
		Amount:   amount,
		Balance:  balance,
	}
	account.balance = balance
	account.insert(t)
	return t, nil
}

// Account returns the account with the given id.
func (l *Ledger) Account(accountID string) (*Account, error) {
	account, ok := l.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// Balance returns the current balance of the given account.
func (l *Ledger) Balance(accountID string) (decimal.Decimal, error) {
	account, err := l.Account(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance(), nil
}

// Transactions returns the ordered history of the given account.
func (l *Ledger) Transactions(accountID string) ([]*Transaction, error) {
	account, err := l.Account(accountID)
	if err != nil {
		return nil, err
	}
	return account.Transactions(), nil
}
