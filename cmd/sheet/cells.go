package sheet

import (
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/klytics/sheetops/internal/workbook"
)

// NewUpdateCellsCommand returns the update_cells action command.
func NewUpdateCellsCommand() *cobra.Command {
	var (
		input     string
		output    string
		sheetName string
		updates   string
	)

	cmd := &cobra.Command{
		Use:   "update_cells",
		Short: "Update one or more cells in a sheet",
		Long:  "Sets literal values into named cell addresses on a sheet.",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := workbook.ParseCellUpdates(updates)
			if err != nil {
				return err
			}
			return runStructuralAction("update_cells", input, output, func(f *excelize.File) error {
				return workbook.UpdateCells(f, sheetName, parsed)
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringVar(&sheetName, "sheet-name", "", "Name of the sheet to update (required)")
	cmd.Flags().StringVar(&updates, "updates", "", `Cell updates in the format "A1:NewValue,B2:AnotherValue" (required)`)
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("sheet-name")
	cmd.MarkFlagRequired("updates")

	return cmd
}
