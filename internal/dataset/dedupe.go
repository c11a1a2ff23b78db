package dataset

import "strings"

// DropDuplicates removes rows that duplicate an earlier row's values in the
// subset columns, keeping the first occurrence. An empty subset compares
// all columns. Missing values count as a value of their own.
func (d *Dataset) DropDuplicates(subset []string) (*Dataset, error) {
	indices := make([]int, 0, len(subset))
	if len(subset) == 0 {
		for i := range d.Columns {
			indices = append(indices, i)
		}
	} else {
		for _, col := range subset {
			idx, err := d.ColumnIndex(col)
			if err != nil {
				return nil, err
			}
			indices = append(indices, idx)
		}
	}

	out := &Dataset{Columns: append([]string(nil), d.Columns...)}
	seen := make(map[string]bool)
	for _, row := range d.Rows {
		parts := make([]string, len(indices))
		for i, idx := range indices {
			parts[i] = row[idx]
		}
		key := strings.Join(parts, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		out.Rows = append(out.Rows, append([]string(nil), row...))
	}
	return out, nil
}
