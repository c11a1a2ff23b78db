package table

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/dataset"
)

// NewSortCommand returns the sort action command.
func NewSortCommand() *cobra.Command {
	var (
		input  string
		output string
		by     []string
		order  string
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort rows based on columns",
		Long:  "Stable sort by one or more columns, all in the same direction.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if order != "asc" && order != "desc" {
				return fmt.Errorf("invalid sort order %q — expected asc or desc", order)
			}
			return runDatasetAction("sort", input, output, func(d *dataset.Dataset) (*dataset.Dataset, error) {
				return d.SortBy(by, order == "desc")
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringSliceVar(&by, "by", nil, "Column(s) to sort by (required)")
	cmd.Flags().StringVar(&order, "order", "asc", "Sort order: asc | desc")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("by")

	return cmd
}
