package statement

import (
	"github.com/gicbank/gicbank/lib/interest"
	"github.com/gicbank/gicbank/lib/table"
)

const dateLayout = "20060102"

// Table renders the statement lines as a table.
func (s *Statement) Table() *table.Table {
	return linesTable(s.Lines)
}

// Table renders the activity lines as a table.
func (a *Activity) Table() *table.Table {
	return linesTable(a.Lines)
}

func linesTable(lines []Line) *table.Table {
	t := table.New(5)
	t.AddSeparatorRow()
	t.AddRow().
		AddText("Date", table.Center).
		AddText("Txn Id", table.Center).
		AddText("Type", table.Center).
		AddText("Amount", table.Center).
		AddText("Balance", table.Center)
	t.AddSeparatorRow()
	for _, line := range lines {
		row := t.AddRow().AddText(line.Date.Format(dateLayout), table.Left)
		if line.TxnID == "" {
			row.AddEmpty()
		} else {
			row.AddText(line.TxnID, table.Left)
		}
		row.
			AddText(line.Code, table.Center).
			AddNumber(line.Amount).
			AddNumber(line.Balance)
	}
	t.AddSeparatorRow()
	return t
}

// RulesTable renders the interest rules as a table.
func RulesTable(rules []*interest.Rule) *table.Table {
	t := table.New(3)
	t.AddSeparatorRow()
	t.AddRow().
		AddText("Date", table.Center).
		AddText("RuleId", table.Center).
		AddText("Rate (%)", table.Center)
	t.AddSeparatorRow()
	for _, rule := range rules {
		t.AddRow().
			AddText(rule.Date.Format(dateLayout), table.Left).
			AddText(rule.ID, table.Left).
			AddNumber(rule.Rate)
	}
	t.AddSeparatorRow()
	return t
}
