// Package table provides the row/column-mode action commands: each loads
// the first worksheet of an input workbook as a dataset, applies one
// transformation, and writes the result as a fresh single-sheet workbook.
package table

import (
	"github.com/klytics/sheetops/internal/dataset"
	"github.com/klytics/sheetops/internal/output"
	"github.com/klytics/sheetops/internal/workbook"
)

// runDatasetAction is the shared load → transform → save path for all
// row/column actions. The output file is only written when the
// transformation succeeds.
func runDatasetAction(action, input, outputPath string, transform func(*dataset.Dataset) (*dataset.Dataset, error)) error {
	d, err := workbook.LoadDataset(input)
	if err != nil {
		return err
	}

	result, err := transform(d)
	if err != nil {
		return err
	}

	if err := workbook.SaveDataset(result, outputPath); err != nil {
		return err
	}

	output.ActionCompleted(action, outputPath)
	return nil
}
