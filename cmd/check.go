package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check documentation compliance",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}
	opts.bind(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
