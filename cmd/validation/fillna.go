package validation

import (
	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/output"
	"github.com/klytics/sheetops/internal/workbook"
)

func newFillNACommand() *cobra.Command {
	var (
		input   string
		out     string
		value   string
		columns []string
	)

	cmd := &cobra.Command{
		Use:   "fill_na",
		Short: "Replace missing values with a literal value",
		Long:  "Replaces missing cells with the given literal value in the named columns, or in all columns when none are named.",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := workbook.LoadDataset(input)
			if err != nil {
				return err
			}
			filled, err := d.FillNA(value, columns)
			if err != nil {
				return err
			}
			if err := workbook.SaveDataset(filled, out); err != nil {
				return err
			}
			output.ActionCompleted("fill_na", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringVar(&value, "value", "", "Replacement value for missing cells (required)")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Column(s) to fill (default: all columns)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("value")

	return cmd
}
