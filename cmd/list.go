package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/doclint/internal/controller"
	"github.com/mouse-blink/doclint/internal/domain"
	"github.com/mouse-blink/doclint/internal/schema"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	var excludeFlags []string

	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List declarations and documentation coverage",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow := domain.NewWorkflow(fsAdapter, schema.Default())

			inventories, err := workflow.Inventory(cmd.Context(), domain.ListArgs{
				Paths:   parsePaths(args),
				Exclude: excludeFlags,
			})
			if err != nil {
				return &ExitError{Code: ExitConfigError, Err: err}
			}

			ui := controller.NewUI(cmd, "", controller.IsTTY(os.Stdout))

			return ui.DisplayInventory(inventories)
		},
	}
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
