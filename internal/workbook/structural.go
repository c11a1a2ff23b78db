package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellUpdate is one literal value destined for an A1-style cell address.
type CellUpdate struct {
	Cell  string
	Value string
}

// ParseCellUpdates parses a delimited "A1:Value,B2:Other" update list.
func ParseCellUpdates(s string) ([]CellUpdate, error) {
	var updates []CellUpdate
	for _, item := range strings.Split(s, ",") {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("malformed cell update %q — expected \"A1:NewValue,B2:AnotherValue\"", item)
		}
		updates = append(updates, CellUpdate{Cell: parts[0], Value: parts[1]})
	}
	return updates, nil
}

// DuplicateSheet clones an existing worksheet, cells and formatting, under
// a new name within the same workbook.
func DuplicateSheet(f *excelize.File, source, newName string) error {
	srcIdx, err := f.GetSheetIndex(source)
	if err != nil || srcIdx < 0 {
		return fmt.Errorf("sheet %q not found — available sheets: %v", source, f.GetSheetList())
	}
	if idx, _ := f.GetSheetIndex(newName); idx >= 0 {
		return fmt.Errorf("sheet %q already exists", newName)
	}

	newIdx, err := f.NewSheet(newName)
	if err != nil {
		return fmt.Errorf("could not create sheet %q: %w", newName, err)
	}
	if err := f.CopySheet(srcIdx, newIdx); err != nil {
		return fmt.Errorf("could not copy sheet %q: %w", source, err)
	}
	return nil
}

// UpdateCells sets literal values into named cell addresses on a sheet.
func UpdateCells(f *excelize.File, sheet string, updates []CellUpdate) error {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return fmt.Errorf("sheet %q not found — available sheets: %v", sheet, f.GetSheetList())
	}
	for _, u := range updates {
		if _, _, err := excelize.CellNameToCoordinates(u.Cell); err != nil {
			return fmt.Errorf("invalid cell address %q: %w", u.Cell, err)
		}
		if err := setTypedCell(f, sheet, u.Cell, u.Value); err != nil {
			return fmt.Errorf("could not set cell %s: %w", u.Cell, err)
		}
	}
	return nil
}
