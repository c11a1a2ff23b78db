package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func isMissing(s string) bool {
	return s == ""
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// compareValues orders two cells, numerically when both parse as numbers
// and lexically otherwise.
func compareValues(a, b string) int {
	af, aok := parseNumber(a)
	bf, bok := parseNumber(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// typedValue converts a cell to the value exposed to expressions: numbers
// as float64, missing cells as NaN, everything else as the raw string.
func typedValue(cell string) interface{} {
	if isMissing(cell) {
		return math.NaN()
	}
	if f, ok := parseNumber(cell); ok {
		return f
	}
	return cell
}

// formatValue renders an evaluated expression result back into a cell.
func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		if math.IsNaN(t) {
			return ""
		}
		return formatNumber(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
