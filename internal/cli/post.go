package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var postFlags methodFlags

var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Make a POST request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMethod(cmd, http.MethodPost, args[0], &postFlags)
	},
}

func init() {
	addMethodFlags(postCmd, &postFlags, true)
}
