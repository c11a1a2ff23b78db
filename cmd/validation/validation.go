// Package validation provides the data_validation command group: cleanup
// actions that repair or coerce dataset values.
package validation

import "github.com/spf13/cobra"

// NewCommand returns the data_validation command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data_validation",
		Short: "Validate and clean dataset values",
		Long:  "Cleanup actions for tabular data: fill missing values or coerce a column to a target type.",
	}

	cmd.AddCommand(newFillNACommand())
	cmd.AddCommand(newConvertTypeCommand())

	return cmd
}
