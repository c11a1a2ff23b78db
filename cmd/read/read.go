// Package read provides the workbook inspection command.
package read

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/workbook"
)

// NewCommand returns the read command.
func NewCommand() *cobra.Command {
	var (
		sheetName string
		csvOutput bool
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "read <file.xlsx>",
		Short: "Inspect a workbook without transforming it",
		Long:  "Reads an .xlsx file and prints its data. Supports pretty-printed table, CSV, and JSON output. Pass '-' to read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var wb *workbook.Workbook
			var err error

			if len(args) == 0 || args[0] == "-" {
				data, readErr := io.ReadAll(os.Stdin)
				if readErr != nil {
					return fmt.Errorf("could not read from stdin: %w", readErr)
				}
				if len(data) == 0 {
					return fmt.Errorf("no input provided — pass an .xlsx file path or pipe data to stdin")
				}
				wb, err = workbook.ReadBytes(data)
			} else {
				wb, err = workbook.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			if sheetName != "" {
				sheet, err := wb.GetSheet(sheetName)
				if err != nil {
					return err
				}
				wb = &workbook.Workbook{Sheets: []workbook.Sheet{*sheet}}
			}

			switch {
			case jsonOut:
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(wb.Sheets)
			case csvOutput:
				for _, sheet := range wb.Sheets {
					if len(wb.Sheets) > 1 {
						fmt.Fprintf(os.Stderr, "--- %s ---\n", sheet.Name)
					}
					fmt.Print(sheet.ToCSV())
				}
				return nil
			default:
				printPretty(wb)
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Read only the named sheet")
	cmd.Flags().BoolVar(&csvOutput, "csv", false, "Output as CSV")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

const maxColWidth = 40

func printPretty(wb *workbook.Workbook) {
	headerStyle := color.New(color.Bold, color.FgCyan)
	dim := color.New(color.FgHiBlack)

	for _, sheet := range wb.Sheets {
		headerStyle.Printf("Sheet: %s\n", sheet.Name)

		if len(sheet.Rows) == 0 {
			dim.Println("  (empty)")
			continue
		}

		widths := columnWidths(sheet.Rows)

		printRow(sheet.Rows[0], widths, color.New(color.Bold))
		dim.Print("  ")
		for j, w := range widths {
			if j > 0 {
				dim.Print("+-")
			}
			dim.Print(strings.Repeat("-", w+1))
		}
		dim.Println()

		for _, row := range sheet.Rows[1:] {
			printRow(row, widths, nil)
		}

		dim.Printf("  (%d rows)\n\n", len(sheet.Rows)-1)
	}
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for j, cell := range row {
			for len(widths) <= j {
				widths = append(widths, 3)
			}
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColWidth {
			widths[i] = maxColWidth
		}
	}
	return widths
}

func printRow(row []string, widths []int, style *color.Color) {
	fmt.Print("  ")
	for j := range widths {
		if j > 0 {
			fmt.Print("| ")
		}
		cell := ""
		if j < len(row) {
			cell = row[j]
		}
		if len(cell) > widths[j] {
			cell = cell[:widths[j]-1] + "~"
		}
		padded := cell + strings.Repeat(" ", widths[j]-len(cell)+1)
		if style != nil {
			style.Print(padded)
		} else {
			fmt.Print(padded)
		}
	}
	fmt.Println()
}
