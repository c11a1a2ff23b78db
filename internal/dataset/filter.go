package dataset

// Filter keeps the rows whose cell in the named column equals value.
// Values are compared as strings.
func (d *Dataset) Filter(column, value string) (*Dataset, error) {
	idx, err := d.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	out := &Dataset{Columns: append([]string(nil), d.Columns...)}
	for _, row := range d.Rows {
		if row[idx] == value {
			out.Rows = append(out.Rows, append([]string(nil), row...))
		}
	}
	return out, nil
}
