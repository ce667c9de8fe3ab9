// Package interest implements the interest rule timeline and the
// accrual calculator. Rates are annual percentages; interest accrues
// as simple daily interest over a 365-day year.
package interest

import (
	"errors"
	"sort"
	"time"

	"github.com/gicbank/gicbank/lib/common/date"
	"github.com/shopspring/decimal"
)

// ErrInvalidRate indicates a rate outside the open interval (0, 100).
var ErrInvalidRate = errors.New("interest rate must be greater than 0 and less than 100")

var hundred = decimal.NewFromInt(100)

// Rule is an immutable interest rule: from its effective date on, the
// given annual rate applies, until superseded by a later rule. The id
// is for display only.
type Rule struct {
	Date time.Time
	ID   string
	Rate decimal.Decimal
}

// Timeline owns the set of interest rules, kept sorted by effective
// date. At most one rule exists per date. The zero value is an empty
// timeline ready for use.
type Timeline struct {
	rules []*Rule
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return new(Timeline)
}

// Set inserts a rule at the given effective date, replacing any rule
// already effective on exactly that date.
func (tl *Timeline) Set(d time.Time, ruleID string, rate decimal.Decimal) error {
	if !rate.IsPositive() || !rate.LessThan(hundred) {
		return ErrInvalidRate
	}
	day := date.Day(d)
	rule := &Rule{Date: day, ID: ruleID, Rate: rate}
	i := sort.Search(len(tl.rules), func(i int) bool {
		return !tl.rules[i].Date.Before(day)
	})
	if i < len(tl.rules) && tl.rules[i].Date.Equal(day) {
		tl.rules[i] = rule
		return nil
	}
	tl.rules = append(tl.rules, nil)
	copy(tl.rules[i+1:], tl.rules[i:])
	tl.rules[i] = rule
	return nil
}

// RateAsOf returns the rate of the latest rule with effective date on
// or before d. The second return value is false if no rule applies.
func (tl *Timeline) RateAsOf(d time.Time) (decimal.Decimal, bool) {
	i := sort.Search(len(tl.rules), func(i int) bool {
		return tl.rules[i].Date.After(d)
	})
	if i == 0 {
		return decimal.Zero, false
	}
	return tl.rules[i-1].Rate, true
}

// All returns the rules ordered by effective date ascending.
func (tl *Timeline) All() []*Rule {
	res := make([]*Rule, len(tl.rules))
	copy(res, tl.rules)
	return res
}
