package table

import (
	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/dataset"
)

// NewCalculateCommand returns the calculate action command.
func NewCalculateCommand() *cobra.Command {
	var (
		input      string
		output     string
		newCol     string
		expression string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a new column using an expression",
		Long: `Evaluates an arithmetic or comparison expression for every row and stores
the result as a new column. Existing columns are referenced by name; a
column with the same name is overwritten.

Example: sheetops calculate -i in.xlsx -o out.xlsx --new-col Bonus --expr "Salary * 0.1"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasetAction("calculate", input, output, func(d *dataset.Dataset) (*dataset.Dataset, error) {
				return d.Calculate(newCol, expression)
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringVar(&newCol, "new-col", "", "Name of the new column (required)")
	cmd.Flags().StringVar(&expression, "expr", "", `Expression over existing columns (e.g., "Salary * 1.1") (required)`)
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("new-col")
	cmd.MarkFlagRequired("expr")

	return cmd
}
