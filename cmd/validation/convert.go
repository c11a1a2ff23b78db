package validation

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/dataset"
	"github.com/klytics/sheetops/internal/output"
	"github.com/klytics/sheetops/internal/workbook"
)

func newConvertTypeCommand() *cobra.Command {
	var (
		input  string
		out    string
		column string
		toType string
	)

	cmd := &cobra.Command{
		Use:   "convert_type",
		Short: "Coerce a column's values to a target type",
		Long: fmt.Sprintf(`Coerces every value in a column to the target type. Values that cannot be
parsed become missing (int, float, datetime) or stay as literal text (str).

Supported target types: %v`, dataset.TargetTypes),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := workbook.LoadDataset(input)
			if err != nil {
				return err
			}
			converted, err := d.ConvertType(column, toType)
			if err != nil {
				return err
			}
			if err := workbook.SaveDataset(converted, out); err != nil {
				return err
			}
			output.ActionCompleted("convert_type", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringVar(&column, "column", "", "Column to convert (required)")
	cmd.Flags().StringVar(&toType, "to-type", "", "Target type: int | float | str | datetime (required)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("column")
	cmd.MarkFlagRequired("to-type")

	return cmd
}
