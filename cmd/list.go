package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `List the files a run with the same flags would rename, as a table.
Nothing is renamed.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the files that would be renamed",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := resolvePlan(cmd)
			if err != nil {
				return err
			}

			ui := newUI(cmd)

			ops, err := newWorkflow(ui).Plan(cmd.Context(), plan)
			if err != nil {
				return err
			}

			return ui.DisplayPlan(ops)
		},
	}

	return cmd
}
