package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var deleteFlags methodFlags

var deleteCmd = &cobra.Command{
	Use:   "delete URL",
	Short: "Make a DELETE request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMethod(cmd, http.MethodDelete, args[0], &deleteFlags)
	},
}

func init() {
	addMethodFlags(deleteCmd, &deleteFlags, true)
}
