package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gicbank/gicbank/lib/interest"
	"github.com/gicbank/gicbank/lib/ledger"
	"github.com/gicbank/gicbank/lib/statement"
	"github.com/gicbank/gicbank/lib/table"
)

const dateLayout = "20060102"

// session holds the state of one interactive run. All state is
// in-memory and discarded when the session ends.
type session struct {
	scanner  *bufio.Scanner
	out      io.Writer
	ledger   *ledger.Ledger
	timeline *interest.Timeline
	builder  statement.Builder
	renderer *table.Renderer
	asOf     time.Time
}

func (s *session) run() {
	s.println("Welcome to AwesomeGIC Bank! What would you like to do?")
	for {
		s.println("")
		s.println("[T] Input transactions")
		s.println("[I] Define interest rules")
		s.println("[P] Print statement")
		s.println("[Q] Quit")
		s.print("> ")
		line, ok := s.readLine()
		if !ok {
			return
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "T":
			s.transactionMenu()
		case "I":
			s.ruleMenu()
		case "P":
			s.statementMenu()
		case "Q":
			s.println("")
			s.println("Thank you for banking with AwesomeGIC Bank.")
			s.println("Have a nice day!")
			return
		default:
			s.println("Invalid option. Please try again.")
		}
	}
}

func (s *session) transactionMenu() {
	s.println("")
	s.println("Please enter transaction details in <Date> <Account> <Type> <Amount> format")
	s.println("Example: 20230626 AC001 W 100.00")
	s.println("(or enter blank to go back to main menu):")
	s.prompt(s.applyTransaction)
}

func (s *session) ruleMenu() {
	s.println("")
	s.println("Please enter interest rules details in <Date> <RuleId> <Rate in %> format")
	s.println("Example: 20230615 RULE03 2.20")
	s.println("(or enter blank to go back to main menu):")
	s.prompt(s.defineRule)
}

func (s *session) statementMenu() {
	s.println("")
	s.println("Please enter account and month to generate the statement <Account> <Year><Month>")
	s.println("Example: AC001 202306")
	s.println("(or enter blank to go back to main menu):")
	s.prompt(s.printStatement)
}

// prompt reads lines until a blank line or EOF, handing each line to
// the given handler and reporting its error.
func (s *session) prompt(handle func(string) error) {
	for {
		line, ok := s.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}
		if err := handle(line); err != nil {
			s.printf("Error: %v\n", err)
			s.println("Please try again or press enter to go back.")
		}
	}
}

func (s *session) applyTransaction(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return fmt.Errorf("invalid input format, expected <Date> <Account> <Type> <Amount>")
	}
	day, err := time.Parse(dateLayout, fields[0])
	if err != nil {
		return fmt.Errorf("date must be in YYYYMMDD format")
	}
	accountID := fields[1]
	var kind ledger.Kind
	switch strings.ToUpper(fields[2]) {
	case "D":
		kind = ledger.Deposit
	case "W":
		kind = ledger.Withdrawal
	}
	amount, err := decimal.NewFromString(fields[3])
	if err != nil {
		return fmt.Errorf("amount must be a valid number")
	}
	if _, err := s.ledger.Apply(day, accountID, kind, amount); err != nil {
		return err
	}
	return s.printActivity(accountID)
}

func (s *session) defineRule(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("invalid input format, expected <Date> <RuleId> <Rate>")
	}
	day, err := time.Parse(dateLayout, fields[0])
	if err != nil {
		return fmt.Errorf("date must be in YYYYMMDD format")
	}
	rate, err := decimal.NewFromString(fields[2])
	if err != nil {
		return fmt.Errorf("rate must be a valid number")
	}
	if err := s.timeline.Set(day, fields[1], rate); err != nil {
		return err
	}
	s.println("")
	s.println("Interest rules:")
	return s.renderer.Render(statement.RulesTable(s.timeline.All()), s.out)
}

func (s *session) printStatement(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("invalid input format, expected <Account> <YearMonth>")
	}
	accountID, yearMonth := fields[0], fields[1]
	if len(yearMonth) != 6 {
		return fmt.Errorf("month must be in YYYYMM format (e.g. 202306)")
	}
	year, err := strconv.Atoi(yearMonth[:4])
	if err != nil {
		return fmt.Errorf("month must be in YYYYMM format (e.g. 202306)")
	}
	month, err := strconv.Atoi(yearMonth[4:])
	if err != nil {
		return fmt.Errorf("month must be in YYYYMM format (e.g. 202306)")
	}
	stmt, err := s.builder.Monthly(accountID, year, time.Month(month))
	if err != nil {
		return err
	}
	s.println("")
	s.printf("Account: %s\n", stmt.Account)
	return s.renderer.Render(stmt.Table(), s.out)
}

func (s *session) printActivity(accountID string) error {
	activity, err := s.builder.AccountActivity(accountID, s.asOf)
	if err != nil {
		return err
	}
	s.println("")
	s.printf("Account: %s\n", activity.Account)
	if err := s.renderer.Render(activity.Table(), s.out); err != nil {
		return err
	}
	s.println("")
	s.printf("Interest earned: %s\n", activity.Interest.StringFixed(2))
	s.printf("Final balance: %s\n", activity.FinalBalance.StringFixed(2))
	return nil
}

func (s *session) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *session) print(msg string) {
	io.WriteString(s.out, msg)
}

func (s *session) println(msg string) {
	io.WriteString(s.out, msg+"\n")
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
