package table

import (
	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/dataset"
)

// NewRenameCommand returns the rename action command.
func NewRenameCommand() *cobra.Command {
	var (
		input   string
		output  string
		mapping string
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename one or more columns",
		Long:  "Renames columns per an Old:New mapping; columns not named in the mapping are unchanged.",
		RunE: func(cmd *cobra.Command, args []string) error {
			renames, err := dataset.ParseRenameMap(mapping)
			if err != nil {
				return err
			}
			return runDatasetAction("rename", input, output, func(d *dataset.Dataset) (*dataset.Dataset, error) {
				return d.Rename(renames), nil
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input Excel file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Excel file (required)")
	cmd.Flags().StringVar(&mapping, "map", "", `Mapping of old to new names (e.g., "OldName:NewName,Another:New") (required)`)
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("map")

	return cmd
}
