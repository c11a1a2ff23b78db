package table

import (
	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/dataset"
	"github.com/klytics/sheetops/internal/output"
	"github.com/klytics/sheetops/internal/workbook"
)

// NewMergeCommand returns the merge action command.
func NewMergeCommand() *cobra.Command {
	var (
		input1 string
		input2 string
		out    string
		on     string
		how    string
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge two Excel files",
		Long:  "Joins two datasets on a shared column using standard relational join semantics (inner, outer, left, right).",
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := workbook.LoadDataset(input1)
			if err != nil {
				return err
			}
			right, err := workbook.LoadDataset(input2)
			if err != nil {
				return err
			}

			merged, err := dataset.Merge(left, right, on, how)
			if err != nil {
				return err
			}

			if err := workbook.SaveDataset(merged, out); err != nil {
				return err
			}

			output.ActionCompleted("merge", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&input1, "input1", "", "First input Excel file (left) (required)")
	cmd.Flags().StringVar(&input2, "input2", "", "Second input Excel file (right) (required)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringVar(&on, "on", "", "Column to merge on (required)")
	cmd.Flags().StringVar(&how, "how", "inner", "Type of merge: inner | outer | left | right")
	cmd.MarkFlagRequired("input1")
	cmd.MarkFlagRequired("input2")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("on")

	return cmd
}
