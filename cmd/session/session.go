// Package session implements the interactive banking console.
package session

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/gicbank/gicbank/cmd/flags"
	"github.com/gicbank/gicbank/lib/common/date"
	"github.com/gicbank/gicbank/lib/interest"
	"github.com/gicbank/gicbank/lib/ledger"
	"github.com/gicbank/gicbank/lib/statement"
	"github.com/gicbank/gicbank/lib/table"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {

	var r runner

	c := &cobra.Command{
		Use:   "session",
		Short: "start an interactive banking session",
		Long: `Start an interactive banking session. Transactions, interest rules and
statements live in memory for the lifetime of the session.`,
		Args: cobra.NoArgs,
		Run:  r.run,
	}
	r.setupFlags(c)
	return c
}

type runner struct {
	file   string
	output string
	asOf   flags.DateFlag
	color  bool
}

func (r *runner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().StringVarP(&r.file, "file", "f", "", "read commands from a script instead of stdin")
	c.Flags().StringVarP(&r.output, "output", "o", "", "write the session transcript to a file")
	c.Flags().Var(&r.asOf, "as-of", "compute interest as of this date (default: today)")
	c.Flags().BoolVar(&r.color, "color", false, "print amounts in color")
}

func (r *runner) execute(cmd *cobra.Command, args []string) (err error) {
	in := cmd.InOrStdin()
	if r.file != "" {
		f, ferr := os.Open(r.file)
		if ferr != nil {
			return ferr
		}
		defer func() { err = multierr.Append(err, f.Close()) }()
		in = f
	}
	var (
		transcript bytes.Buffer
		target     = io.Writer(cmd.OutOrStdout())
	)
	if r.output != "" {
		target = io.MultiWriter(target, &transcript)
	}
	out := bufio.NewWriter(target)

	led := ledger.New()
	timeline := interest.NewTimeline()
	s := &session{
		scanner:  bufio.NewScanner(in),
		out:      out,
		ledger:   led,
		timeline: timeline,
		builder: statement.Builder{
			Ledger:     led,
			Calculator: interest.Calculator{Ledger: led, Timeline: timeline},
		},
		renderer: table.NewRenderer(r.color),
		asOf:     r.asOf.ValueOr(date.Today()),
	}
	s.run()

	if err := out.Flush(); err != nil {
		return err
	}
	if r.output != "" {
		return atomic.WriteFile(r.output, &transcript)
	}
	return nil
}
