package ledger

import (
	"sort"
	"time"

	"github.com/gicbank/gicbank/lib/common/date"
	"github.com/shopspring/decimal"
)

// DailyBalances returns the end-of-day balance for every day of the
// period, with no gaps. The balance carried into the first day is the
// resulting balance of the latest transaction strictly before the
// period, or zero. Days without transactions carry the previous day's
// balance forward.
func (l *Ledger) DailyBalances(accountID string, period date.Period) (map[time.Time]decimal.Decimal, error) {
	account, err := l.Account(accountID)
	if err != nil {
		return nil, err
	}
	res := make(map[time.Time]decimal.Decimal, period.Days())
	balance := decimal.Zero
	if t := account.latestBefore(period.Start); t != nil {
		balance = t.Balance
	}
	i := sort.Search(len(account.transactions), func(i int) bool {
		return !account.transactions[i].Date.Before(period.Start)
	})
	for day := period.Start; !day.After(period.End); day = day.AddDate(0, 0, 1) {
		for i < len(account.transactions) && account.transactions[i].Date.Equal(day) {
			balance = account.transactions[i].Balance
			i++
		}
		res[day] = balance
	}
	return res, nil
}
