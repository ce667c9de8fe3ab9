// Package cmdtest runs commands in tests and captures their output.
package cmdtest

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// Run executes the given command with the given arguments and returns
// the combined output.
func Run(t *testing.T, cmd *cobra.Command, args []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	return buf.Bytes()
}
