package interest

import (
	"time"

	"github.com/gicbank/gicbank/lib/common/date"
	"github.com/gicbank/gicbank/lib/ledger"
	"github.com/shopspring/decimal"
)

var daysPerYear = decimal.NewFromInt(365)

// Segment is a maximal sub-period of an accrual window over which the
// rate is constant. The balance is the end-of-day balance of the
// segment's first day, held constant across the segment; interest is
// the unrounded contribution balance * rate/100 * days / 365.
type Segment struct {
	Period   date.Period
	Rate     decimal.Decimal
	Balance  decimal.Decimal
	Interest decimal.Decimal
}

// Calculator computes accrued interest by joining an account's daily
// balances with the rate timeline.
type Calculator struct {
	Ledger   *ledger.Ledger
	Timeline *Timeline
}

// Accrue computes simple daily interest over the period, inclusive on
// both ends. It returns the total rounded to two decimal places, half
// away from zero, together with the accrual segments contributing to
// it. Days before the first applicable rule accrue nothing.
func (c Calculator) Accrue(accountID string, period date.Period) (decimal.Decimal, []Segment, error) {
	balances, err := c.Ledger.DailyBalances(accountID, period)
	if err != nil {
		return decimal.Zero, nil, err
	}
	var breakpoints []time.Time
	for _, rule := range c.Timeline.All() {
		if rule.Date.After(period.Start) && !rule.Date.After(period.End) {
			breakpoints = append(breakpoints, rule.Date)
		}
	}
	// Synthetic breakpoint closing the final segment.
	breakpoints = append(breakpoints, period.End.AddDate(0, 0, 1))

	var (
		total    decimal.Decimal
		segments []Segment
		cursor   = period.Start
	)
	rate, _ := c.Timeline.RateAsOf(cursor)
	for _, breakpoint := range breakpoints {
		days := date.Between(cursor, breakpoint)
		if days > 0 && rate.IsPositive() {
			balance := balances[cursor]
			interest := balance.Mul(rate).Div(hundred).Mul(decimal.NewFromInt(int64(days))).Div(daysPerYear)
			total = total.Add(interest)
			segments = append(segments, Segment{
				Period:   date.Period{Start: cursor, End: breakpoint.AddDate(0, 0, -1)},
				Rate:     rate,
				Balance:  balance,
				Interest: interest,
			})
		}
		cursor = breakpoint
		if r, ok := c.Timeline.RateAsOf(breakpoint); ok {
			rate = r
		}
	}
	return total.Round(2), segments, nil
}

// AccrueToDate computes the interest earned from the account's first
// transaction up to and including asOf.
func (c Calculator) AccrueToDate(accountID string, asOf time.Time) (decimal.Decimal, error) {
	transactions, err := c.Ledger.Transactions(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	day := date.Day(asOf)
	if len(transactions) == 0 || day.Before(transactions[0].Date) {
		return decimal.Zero, nil
	}
	total, _, err := c.Accrue(accountID, date.Period{Start: transactions[0].Date, End: day})
	return total, err
}
