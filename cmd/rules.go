package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/doclint/internal/controller"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	var rulesFlag string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rule table",
		Long:  rulesLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := loadRegistry(rulesFlag)
			if err != nil {
				return &ExitError{Code: ExitConfigError, Err: err}
			}

			ui := controller.NewUI(cmd, "", controller.IsTTY(os.Stdout))

			return ui.DisplayRules(registry)
		},
	}
	cmd.Flags().StringVar(&rulesFlag, "rules", "", "rule table JSON file (default: embedded table, or DOCLINT_RULES)")

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
