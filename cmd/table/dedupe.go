package table

import (
	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/dataset"
)

// NewDropDuplicatesCommand returns the drop_duplicates action command.
func NewDropDuplicatesCommand() *cobra.Command {
	var (
		input  string
		output string
		subset []string
	)

	cmd := &cobra.Command{
		Use:   "drop_duplicates",
		Short: "Remove duplicate rows",
		Long:  "Removes rows that duplicate an earlier row's values, keeping the first occurrence. Without --subset, all columns are compared.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasetAction("drop_duplicates", input, output, func(d *dataset.Dataset) (*dataset.Dataset, error) {
				return d.DropDuplicates(subset)
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringSliceVar(&subset, "subset", nil, "Column(s) to consider for identifying duplicates")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}
