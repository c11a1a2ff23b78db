package dataset

// FillNA replaces missing cells with the literal value in the named
// columns, or in every column when none are named.
func (d *Dataset) FillNA(value string, columns []string) (*Dataset, error) {
	indices := make([]int, 0, len(columns))
	if len(columns) == 0 {
		for i := range d.Columns {
			indices = append(indices, i)
		}
	} else {
		for _, col := range columns {
			idx, err := d.ColumnIndex(col)
			if err != nil {
				return nil, err
			}
			indices = append(indices, idx)
		}
	}

	out := d.clone()
	for _, row := range out.Rows {
		for _, idx := range indices {
			if isMissing(row[idx]) {
				row[idx] = value
			}
		}
	}
	return out, nil
}
