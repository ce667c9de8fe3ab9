package ledger

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/gicbank/gicbank/lib/common/date"
)

func setupAccount(t *testing.T) *Ledger {
	t.Helper()
	l := New()
	var bookings = []struct {
		day    int
		kind   Kind
		amount string
	}{
		{day: 1, kind: Deposit, amount: "100.00"},
		{day: 5, kind: Deposit, amount: "50.00"},
		{day: 5, kind: Withdrawal, amount: "30.00"},
	}
	for _, b := range bookings {
		if _, err := l.Apply(date.Date(2023, 6, b.day), "AC001", b.kind, decimal.RequireFromString(b.amount)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return l
}

func TestDailyBalances(t *testing.T) {
	l := setupAccount(t)

	got, err := l.DailyBalances("AC001", date.Period{Start: date.Date(2023, 6, 1), End: date.Date(2023, 6, 7)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[time.Time]decimal.Decimal{
		date.Date(2023, 6, 1): decimal.RequireFromString("100.00"),
		date.Date(2023, 6, 2): decimal.RequireFromString("100.00"),
		date.Date(2023, 6, 3): decimal.RequireFromString("100.00"),
		date.Date(2023, 6, 4): decimal.RequireFromString("100.00"),
		date.Date(2023, 6, 5): decimal.RequireFromString("120.00"),
		date.Date(2023, 6, 6): decimal.RequireFromString("120.00"),
		date.Date(2023, 6, 7): decimal.RequireFromString("120.00"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected balances (-want/+got):\n%s", diff)
	}
}

func TestDailyBalancesCarryIn(t *testing.T) {
	l := setupAccount(t)

	got, err := l.DailyBalances("AC001", date.Period{Start: date.Date(2023, 6, 3), End: date.Date(2023, 6, 4)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[time.Time]decimal.Decimal{
		date.Date(2023, 6, 3): decimal.RequireFromString("100.00"),
		date.Date(2023, 6, 4): decimal.RequireFromString("100.00"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected balances (-want/+got):\n%s", diff)
	}
}

func TestDailyBalancesBeforeFirstTransaction(t *testing.T) {
	l := setupAccount(t)

	got, err := l.DailyBalances("AC001", date.Period{Start: date.Date(2023, 5, 30), End: date.Date(2023, 5, 31)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for day, balance := range got {
		if !balance.IsZero() {
			t.Errorf("balance on %v before first transaction: got %s, wanted 0", day, balance)
		}
	}
	if len(got) != 2 {
		t.Errorf("got %d entries, wanted 2", len(got))
	}
}

func TestDailyBalancesTotalCoverage(t *testing.T) {
	l := setupAccount(t)

	period := date.Month(2023, 6)
	got, err := l.DailyBalances("AC001", period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != period.Days() {
		t.Fatalf("got %d entries, wanted %d", len(got), period.Days())
	}
	for day := period.Start; !day.After(period.End); day = day.AddDate(0, 0, 1) {
		if _, ok := got[day]; !ok {
			t.Errorf("missing balance for %v", day)
		}
	}
}
