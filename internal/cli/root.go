// Package cli implements the terminal interface.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any
// subcommands.
var RootCmd = &cobra.Command{
	Use:     "get",
	Short:   "A typed terminal HTTP client",
	Version: version,
	Long: `Get is a terminal HTTP client built around typed request descriptors
and response envelopes, with detailed timing metrics, config-driven
request suites, JSONPath extraction, and JSON Schema validation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(headCmd)
	RootCmd.AddCommand(postCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(patchCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(runCmd)
}
