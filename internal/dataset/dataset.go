// Package dataset implements the row/column transformations sheetops
// performs on tabular worksheet data. A Dataset is a header plus a grid of
// string cells; the empty string marks a missing value.
package dataset

import "fmt"

// Dataset is an in-memory table loaded from a worksheet.
type Dataset struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// FromGrid builds a Dataset from raw sheet rows. The first row is the
// header; data rows are padded or truncated to the header width.
func FromGrid(rows [][]string) (*Dataset, error) {
	if len(rows) == 0 {
		return &Dataset{}, nil
	}

	header := rows[0]
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column name %q in header row", name)
		}
		seen[name] = true
	}

	d := &Dataset{Columns: append([]string(nil), header...)}
	for _, row := range rows[1:] {
		d.Rows = append(d.Rows, padRow(row, len(header)))
	}
	return d, nil
}

// Grid returns the dataset as sheet rows, header first.
func (d *Dataset) Grid() [][]string {
	grid := make([][]string, 0, len(d.Rows)+1)
	grid = append(grid, d.Columns)
	grid = append(grid, d.Rows...)
	return grid
}

// ColumnIndex returns the position of the named column.
func (d *Dataset) ColumnIndex(name string) (int, error) {
	for i, col := range d.Columns {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown column %q — available columns: %v", name, d.Columns)
}

// clone returns a deep copy of the dataset.
func (d *Dataset) clone() *Dataset {
	out := &Dataset{Columns: append([]string(nil), d.Columns...)}
	out.Rows = make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

func padRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}
