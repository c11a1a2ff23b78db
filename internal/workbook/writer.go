package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/klytics/sheetops/internal/dataset"
)

// SaveDataset writes a dataset as a fresh single-sheet workbook: header
// row first, no row index.
func SaveDataset(d *dataset.Dataset, path string) error {
	wb := &Workbook{Sheets: []Sheet{{Name: "Sheet1", Rows: d.Grid()}}}
	return WriteFile(wb, path)
}

// WriteFile creates a new .xlsx file from the given sheet grids.
func WriteFile(wb *Workbook, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range wb.Sheets {
		sheetName := sheet.Name
		if sheetName == "" {
			sheetName = fmt.Sprintf("Sheet%d", i+1)
		}

		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
				return fmt.Errorf("could not rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheetName); err != nil {
				return fmt.Errorf("could not create sheet %q: %w", sheetName, err)
			}
		}

		for rowIdx, row := range sheet.Rows {
			for colIdx, cell := range row {
				cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					return fmt.Errorf("invalid cell coordinates: %w", err)
				}
				if err := setTypedCell(f, sheetName, cellName, cell); err != nil {
					return fmt.Errorf("could not set cell %s: %w", cellName, err)
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}
	return nil
}

// setTypedCell stores a cell with its inferred type so that numbers and
// booleans land as real Excel values rather than text.
func setTypedCell(f *excelize.File, sheet, cell, value string) error {
	if value == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return f.SetCellValue(sheet, cell, n)
	}
	switch strings.ToUpper(value) {
	case "TRUE":
		return f.SetCellBool(sheet, cell, true)
	case "FALSE":
		return f.SetCellBool(sheet, cell, false)
	}
	return f.SetCellValue(sheet, cell, value)
}
