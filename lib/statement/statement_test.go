package statement

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/gicbank/gicbank/lib/common/date"
	"github.com/gicbank/gicbank/lib/interest"
	"github.com/gicbank/gicbank/lib/ledger"
)

func setupBuilder(t *testing.T) Builder {
	t.Helper()
	l := ledger.New()
	if _, err := l.Apply(date.Date(2023, 6, 1), "AC001", ledger.Deposit, decimal.RequireFromString("100.00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tl := interest.NewTimeline()
	if err := tl.Set(date.Date(2023, 6, 1), "RULE01", decimal.RequireFromString("1.95")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return Builder{
		Ledger:     l,
		Calculator: interest.Calculator{Ledger: l, Timeline: tl},
	}
}

func TestMonthly(t *testing.T) {
	b := setupBuilder(t)

	got, err := b.Monthly("AC001", 2023, time.June)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Statement{
		Account: "AC001",
		Lines: []Line{
			{
				Date:    date.Date(2023, 6, 1),
				TxnID:   "20230601-01",
				Code:    "D",
				Amount:  decimal.RequireFromString("100.00"),
				Balance: decimal.RequireFromString("100.00"),
			},
			{
				Date:    date.Date(2023, 6, 30),
				Code:    "I",
				Amount:  decimal.RequireFromString("0.16"),
				Balance: decimal.RequireFromString("100.16"),
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected statement (-want/+got):\n%s", diff)
	}
}

func TestMonthlyWithoutTransactions(t *testing.T) {
	b := setupBuilder(t)

	// July has no transactions, the interest line is still emitted.
	got, err := b.Monthly("AC001", 2023, time.July)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Lines) != 1 {
		t.Fatalf("got %d lines, wanted 1", len(got.Lines))
	}
	line := got.Lines[0]
	if line.Code != "I" || !line.Date.Equal(date.Date(2023, 7, 31)) {
		t.Errorf("got line %+v, wanted interest line on 20230731", line)
	}
	// 100.00 * 1.95/100 * 31/365 = 0.16561...
	if want := decimal.RequireFromString("0.17"); !line.Amount.Equal(want) {
		t.Errorf("got interest %s, wanted %s", line.Amount, want)
	}
	if want := decimal.RequireFromString("100.17"); !line.Balance.Equal(want) {
		t.Errorf("got balance %s, wanted %s", line.Balance, want)
	}
}

func TestMonthlyWithoutRate(t *testing.T) {
	l := ledger.New()
	if _, err := l.Apply(date.Date(2023, 6, 1), "AC001", ledger.Deposit, decimal.RequireFromString("100.00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := Builder{
		Ledger:     l,
		Calculator: interest.Calculator{Ledger: l, Timeline: interest.NewTimeline()},
	}

	got, err := b.Monthly("AC001", 2023, time.June)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := got.Lines[len(got.Lines)-1]
	if line.Code != "I" || !line.Amount.IsZero() {
		t.Errorf("got line %+v, wanted 0.00 interest line", line)
	}
	if want := decimal.RequireFromString("100.00"); !line.Balance.Equal(want) {
		t.Errorf("got balance %s, wanted %s", line.Balance, want)
	}
}

func TestMonthlyInvalidMonth(t *testing.T) {
	b := setupBuilder(t)

	for _, month := range []time.Month{0, 13} {
		if _, err := b.Monthly("AC001", 2023, month); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("Monthly(%d): got %v, wanted ErrInvalidMonth", month, err)
		}
	}
}

func TestMonthlyUnknownAccount(t *testing.T) {
	b := setupBuilder(t)

	if _, err := b.Monthly("AC404", 2023, time.June); !errors.Is(err, ledger.ErrAccountNotFound) {
		t.Errorf("got %v, wanted ErrAccountNotFound", err)
	}
}

func TestAccountActivity(t *testing.T) {
	b := setupBuilder(t)
	if _, err := b.Ledger.Apply(date.Date(2023, 6, 26), "AC001", ledger.Withdrawal, decimal.RequireFromString("20.00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := b.AccountActivity("AC001", date.Date(2023, 6, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Lines) != 2 {
		t.Fatalf("got %d lines, wanted 2", len(got.Lines))
	}
	if want := decimal.RequireFromString("0.16"); !got.Interest.Equal(want) {
		t.Errorf("got interest %s, wanted %s", got.Interest, want)
	}
	if want := decimal.RequireFromString("80.16"); !got.FinalBalance.Equal(want) {
		t.Errorf("got final balance %s, wanted %s", got.FinalBalance, want)
	}
}
