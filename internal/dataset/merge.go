package dataset

import "fmt"

// JoinTypes lists the supported merge strategies.
var JoinTypes = []string{"inner", "outer", "left", "right"}

// Merge joins two datasets on a shared column. Overlapping non-key column
// names receive _x (left) and _y (right) suffixes. Duplicate key values
// produce one output row per left/right pair.
func Merge(left, right *Dataset, on, how string) (*Dataset, error) {
	if !validJoin(how) {
		return nil, fmt.Errorf("invalid merge type %q — supported: %v", how, JoinTypes)
	}

	leftKey, err := left.ColumnIndex(on)
	if err != nil {
		return nil, fmt.Errorf("left dataset: %w", err)
	}
	rightKey, err := right.ColumnIndex(on)
	if err != nil {
		return nil, fmt.Errorf("right dataset: %w", err)
	}

	out := &Dataset{Columns: mergedColumns(left, right, on)}

	rightIndex := make(map[string][]int)
	for i, row := range right.Rows {
		key := row[rightKey]
		rightIndex[key] = append(rightIndex[key], i)
	}

	appendPair := func(leftRow, rightRow []string) {
		row := make([]string, 0, len(out.Columns))
		if leftRow == nil {
			leftRow = make([]string, len(left.Columns))
			leftRow[leftKey] = rightRow[rightKey]
		}
		row = append(row, leftRow...)
		for j := range right.Columns {
			if j == rightKey {
				continue
			}
			if rightRow == nil {
				row = append(row, "")
			} else {
				row = append(row, rightRow[j])
			}
		}
		out.Rows = append(out.Rows, row)
	}

	switch how {
	case "right":
		leftIndex := make(map[string][]int)
		for i, row := range left.Rows {
			leftIndex[row[leftKey]] = append(leftIndex[row[leftKey]], i)
		}
		for _, rightRow := range right.Rows {
			matches := leftIndex[rightRow[rightKey]]
			if len(matches) == 0 {
				appendPair(nil, rightRow)
				continue
			}
			for _, li := range matches {
				appendPair(left.Rows[li], rightRow)
			}
		}
	default:
		matched := make(map[int]bool)
		for _, leftRow := range left.Rows {
			matches := rightIndex[leftRow[leftKey]]
			if len(matches) == 0 {
				if how == "left" || how == "outer" {
					appendPair(leftRow, nil)
				}
				continue
			}
			for _, ri := range matches {
				matched[ri] = true
				appendPair(leftRow, right.Rows[ri])
			}
		}
		if how == "outer" {
			for i, rightRow := range right.Rows {
				if !matched[i] {
					appendPair(nil, rightRow)
				}
			}
		}
	}

	return out, nil
}

func validJoin(how string) bool {
	for _, j := range JoinTypes {
		if j == how {
			return true
		}
	}
	return false
}

// mergedColumns builds the output header: the left block in order, then the
// right block minus the key column, with _x/_y suffixes on collisions.
func mergedColumns(left, right *Dataset, on string) []string {
	rightNames := make(map[string]bool, len(right.Columns))
	for _, col := range right.Columns {
		rightNames[col] = true
	}
	leftNames := make(map[string]bool, len(left.Columns))
	for _, col := range left.Columns {
		leftNames[col] = true
	}

	var columns []string
	for _, col := range left.Columns {
		if col != on && rightNames[col] {
			columns = append(columns, col+"_x")
		} else {
			columns = append(columns, col)
		}
	}
	for _, col := range right.Columns {
		if col == on {
			continue
		}
		if leftNames[col] {
			columns = append(columns, col+"_y")
		} else {
			columns = append(columns, col)
		}
	}
	return columns
}
