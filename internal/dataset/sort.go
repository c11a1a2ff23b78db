package dataset

import "sort"

// SortBy stable-sorts rows by one or more key columns, all in the same
// direction. Missing values sort last regardless of direction.
func (d *Dataset) SortBy(by []string, descending bool) (*Dataset, error) {
	indices := make([]int, len(by))
	for i, col := range by {
		idx, err := d.ColumnIndex(col)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}

	out := d.clone()
	sort.SliceStable(out.Rows, func(i, j int) bool {
		a, b := out.Rows[i], out.Rows[j]
		for _, idx := range indices {
			av, bv := a[idx], b[idx]
			if isMissing(av) || isMissing(bv) {
				if isMissing(av) == isMissing(bv) {
					continue
				}
				return isMissing(bv)
			}
			cmp := compareValues(av, bv)
			if cmp == 0 {
				continue
			}
			if descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	return out, nil
}
