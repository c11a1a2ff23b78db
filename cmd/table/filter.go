package table

import (
	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/dataset"
)

// NewFilterCommand returns the filter action command.
func NewFilterCommand() *cobra.Command {
	var (
		input  string
		output string
		column string
		value  string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter rows based on a column value",
		Long:  "Keeps the rows whose cell in the given column equals the given value (string-compared).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasetAction("filter", input, output, func(d *dataset.Dataset) (*dataset.Dataset, error) {
				return d.Filter(column, value)
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringVar(&column, "column", "", "Column to filter on (required)")
	cmd.Flags().StringVar(&value, "value", "", "Value to filter for (required)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("column")
	cmd.MarkFlagRequired("value")

	return cmd
}
