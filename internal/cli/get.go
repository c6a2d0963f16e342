package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var getFlags methodFlags

var getCmd = &cobra.Command{
	Use:   "get URL",
	Short: "Make a GET request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMethod(cmd, http.MethodGet, args[0], &getFlags)
	},
}

var headFlags methodFlags

var headCmd = &cobra.Command{
	Use:   "head URL",
	Short: "Make a HEAD request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMethod(cmd, http.MethodHead, args[0], &headFlags)
	},
}

func init() {
	addMethodFlags(getCmd, &getFlags, false)
	addMethodFlags(headCmd, &headFlags, false)
}
