package dataset

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Calculate evaluates an arithmetic/comparison expression for every row and
// stores the result in the named column. Existing columns are referenced by
// name; a column with the same name is overwritten, otherwise the column is
// appended. Rows with missing referenced values yield a missing result.
func (d *Dataset) Calculate(newCol, expression string) (*Dataset, error) {
	program, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", expression, err)
	}

	out := d.clone()
	target, err := out.ColumnIndex(newCol)
	if err != nil {
		target = len(out.Columns)
		out.Columns = append(out.Columns, newCol)
		for i := range out.Rows {
			out.Rows[i] = append(out.Rows[i], "")
		}
	}

	for i, row := range out.Rows {
		env := make(map[string]interface{}, len(d.Columns))
		for j, col := range d.Columns {
			env[col] = typedValue(row[j])
		}
		result, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("could not evaluate %q on row %d: %w", expression, i+1, err)
		}
		out.Rows[i][target] = formatValue(result)
	}
	return out, nil
}
