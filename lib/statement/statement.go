// Package statement assembles account statements: the account's
// transactions joined with accrued interest, ready for rendering.
package statement

import (
	"errors"
	"time"

	"github.com/gicbank/gicbank/lib/common/date"
	"github.com/gicbank/gicbank/lib/interest"
	"github.com/gicbank/gicbank/lib/ledger"
	"github.com/shopspring/decimal"
)

// ErrInvalidMonth indicates a month outside 1-12.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Line is a single statement row. Interest lines carry the code "I"
// and an empty transaction id.
type Line struct {
	Date    time.Time
	TxnID   string
	Code    string
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

// Statement is a monthly account statement: the month's transactions
// followed by exactly one interest line dated on the month's last day.
type Statement struct {
	Account string
	Lines   []Line
}

// Activity is an account's full history together with the interest
// earned up to a given date.
type Activity struct {
	Account      string
	Lines        []Line
	Interest     decimal.Decimal
	FinalBalance decimal.Decimal
}

// Builder builds statements from a ledger and a rate timeline.
type Builder struct {
	Ledger     *ledger.Ledger
	Calculator interest.Calculator
}

// Monthly builds the statement for the given calendar month. The
// interest line is always present, 0.00 when no rate applied, with a
// display balance of the end-of-month balance plus accrued interest.
func (b Builder) Monthly(accountID string, year int, month time.Month) (*Statement, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}
	period := date.Month(year, month)
	accrued, _, err := b.Calculator.Accrue(accountID, period)
	if err != nil {
		return nil, err
	}
	transactions, err := b.Ledger.Transactions(accountID)
	if err != nil {
		return nil, err
	}
	var lines []Line
	for _, t := range transactions {
		if period.Contains(t.Date) {
			lines = append(lines, newLine(t))
		}
	}
	balances, err := b.Ledger.DailyBalances(accountID, period)
	if err != nil {
		return nil, err
	}
	lines = append(lines, Line{
		Date:    period.End,
		Code:    "I",
		Amount:  accrued,
		Balance: balances[period.End].Add(accrued),
	})
	return &Statement{Account: accountID, Lines: lines}, nil
}

// AccountActivity builds the account's full transaction history with
// interest earned as of the given date.
func (b Builder) AccountActivity(accountID string, asOf time.Time) (*Activity, error) {
	transactions, err := b.Ledger.Transactions(accountID)
	if err != nil {
		return nil, err
	}
	accrued, err := b.Calculator.AccrueToDate(accountID, asOf)
	if err != nil {
		return nil, err
	}
	balance, err := b.Ledger.Balance(accountID)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(transactions))
	for _, t := range transactions {
		lines = append(lines, newLine(t))
	}
	return &Activity{
		Account:      accountID,
		Lines:        lines,
		Interest:     accrued,
		FinalBalance: balance.Add(accrued),
	}, nil
}

func newLine(t *ledger.Transaction) Line {
	return Line{
		Date:    t.Date,
		TxnID:   t.ID,
		Code:    t.Kind.Code(),
		Amount:  t.Amount,
		Balance: t.Balance,
	}
}
