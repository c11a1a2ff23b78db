// Package sheet provides the structural-mode action commands: each opens
// the full input workbook (all sheets and styles), mutates it in place,
// and writes the whole workbook to the output path.
package sheet

import (
	"github.com/xuri/excelize/v2"

	"github.com/klytics/sheetops/internal/output"
	"github.com/klytics/sheetops/internal/workbook"
)

// runStructuralAction is the shared open → mutate → save path for all
// structural actions. The output is only written when the mutation
// succeeds.
func runStructuralAction(action, input, outputPath string, mutate func(f *excelize.File) error) error {
	f, err := workbook.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := mutate(f); err != nil {
		return err
	}

	if err := f.SaveAs(outputPath); err != nil {
		return err
	}

	output.ActionCompleted(action, outputPath)
	return nil
}
