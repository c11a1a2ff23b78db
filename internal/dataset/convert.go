package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// TargetTypes lists the supported convert_type targets.
var TargetTypes = []string{"int", "float", "str", "datetime"}

// datetimeLayouts are tried in order when coercing to datetime.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"01-02-06",
	time.RFC3339,
}

const datetimeFormat = "2006-01-02 15:04:05"

// ConvertType coerces a column's values to the target type. Values that
// cannot be parsed become missing for int, float, and datetime; str keeps
// every value as literal text. Missing values stay missing, so the int
// conversion behaves like a nullable integer column.
func (d *Dataset) ConvertType(column, toType string) (*Dataset, error) {
	idx, err := d.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	var convert func(string) string
	switch toType {
	case "int":
		convert = toInt
	case "float":
		convert = toFloat
	case "str":
		convert = func(s string) string { return s }
	case "datetime":
		convert = toDatetime
	default:
		return nil, fmt.Errorf("unsupported target type %q — supported: %v", toType, TargetTypes)
	}

	out := d.clone()
	for _, row := range out.Rows {
		if isMissing(row[idx]) {
			continue
		}
		row[idx] = convert(row[idx])
	}
	return out, nil
}

func toInt(s string) string {
	f, ok := parseNumber(s)
	if !ok {
		return ""
	}
	return strconv.FormatInt(int64(f), 10)
}

func toFloat(s string) string {
	f, ok := parseNumber(s)
	if !ok {
		return ""
	}
	return formatNumber(f)
}

func toDatetime(s string) string {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(datetimeFormat)
		}
	}
	return ""
}
