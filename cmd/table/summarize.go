package table

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/dataset"
)

// NewSummarizeCommand returns the summarize action command.
func NewSummarizeCommand() *cobra.Command {
	var (
		input   string
		output  string
		groupBy string
		aggCol  string
		aggFunc string
	)

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize data by grouping and aggregating",
		Long: fmt.Sprintf(`Groups rows by one column and aggregates another with a named function,
producing one output row per group.

Supported aggregation functions: %v`, dataset.AggFuncs()),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasetAction("summarize", input, output, func(d *dataset.Dataset) (*dataset.Dataset, error) {
				return d.Summarize(groupBy, aggCol, aggFunc)
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringVar(&groupBy, "group-by", "", "Column to group by (required)")
	cmd.Flags().StringVar(&aggCol, "agg-col", "", "Column to aggregate (required)")
	cmd.Flags().StringVar(&aggFunc, "agg-func", "", "Aggregation function (e.g., mean, sum) (required)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("group-by")
	cmd.MarkFlagRequired("agg-col")
	cmd.MarkFlagRequired("agg-func")

	return cmd
}
