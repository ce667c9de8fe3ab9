// Package cmd is the main command file for Cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/gicbank/gicbank/cmd/session"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gicbank",
	Short: "gicbank is a console banking tool",
	Long:  `gicbank is an interactive console for booking transactions, defining interest rules and printing account statements.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(session.CreateCmd())
}
