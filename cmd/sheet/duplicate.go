package sheet

import (
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/klytics/sheetops/internal/workbook"
)

// NewDuplicateSheetCommand returns the duplicate_sheet action command.
func NewDuplicateSheetCommand() *cobra.Command {
	var (
		input        string
		output       string
		sourceSheet  string
		newSheetName string
	)

	cmd := &cobra.Command{
		Use:   "duplicate_sheet",
		Short: "Duplicate a sheet in an Excel file",
		Long:  "Clones an existing worksheet, cells and formatting included, under a new name within the same workbook.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStructuralAction("duplicate_sheet", input, output, func(f *excelize.File) error {
				return workbook.DuplicateSheet(f, sourceSheet, newSheetName)
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringVar(&sourceSheet, "source-sheet", "", "Name of the sheet to duplicate (required)")
	cmd.Flags().StringVar(&newSheetName, "new-sheet-name", "", "Name for the new duplicated sheet (required)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("source-sheet")
	cmd.MarkFlagRequired("new-sheet-name")

	return cmd
}
