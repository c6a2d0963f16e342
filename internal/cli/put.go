package cli

import (
	"net/http"

	"github.com/spf13/cobra"
)

var putFlags methodFlags

var putCmd = &cobra.Command{
	Use:   "put URL",
	Short: "Make a PUT request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMethod(cmd, http.MethodPut, args[0], &putFlags)
	},
}

var patchFlags methodFlags

var patchCmd = &cobra.Command{
	Use:   "patch URL",
	Short: "Make a PATCH request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMethod(cmd, http.MethodPatch, args[0], &patchFlags)
	},
}

func init() {
	addMethodFlags(putCmd, &putFlags, true)
	addMethodFlags(patchCmd, &patchFlags, true)
}
