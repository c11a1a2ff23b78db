package sheet

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/klytics/sheetops/internal/workbook"
)

// NewChartCommand returns the chart action command.
func NewChartCommand() *cobra.Command {
	var (
		input      string
		output     string
		sheetName  string
		chartType  string
		xColumn    string
		yColumns   []string
		title      string
		chartTitle string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Add a chart on a new worksheet",
		Long: fmt.Sprintf(`Creates a new worksheet (named by --chart-title) containing a chart whose
category and value ranges come from an existing sheet's header row.
Referenced headers that are not found are skipped silently.

Supported chart types: %v`, workbook.ChartTypes()),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStructuralAction("chart", input, output, func(f *excelize.File) error {
				return workbook.AddChart(f, workbook.ChartSpec{
					SourceSheet: sheetName,
					Type:        chartType,
					XColumn:     xColumn,
					YColumns:    yColumns,
					Title:       title,
					SheetName:   chartTitle,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringVar(&sheetName, "sheet-name", "", "Sheet holding the chart's source data (required)")
	cmd.Flags().StringVar(&chartType, "chart-type", "", "Chart type: bar | line | pie (required)")
	cmd.Flags().StringVar(&xColumn, "x-column", "", "Header of the category (x-axis) column (required)")
	cmd.Flags().StringSliceVar(&yColumns, "y-columns", nil, "Header(s) of the value (y-axis) columns (required)")
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	cmd.Flags().StringVar(&chartTitle, "chart-title", "Chart", "Name for the new chart worksheet")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("sheet-name")
	cmd.MarkFlagRequired("chart-type")
	cmd.MarkFlagRequired("x-column")
	cmd.MarkFlagRequired("y-columns")

	return cmd
}
