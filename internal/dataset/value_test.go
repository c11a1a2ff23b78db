package dataset

import (
	"math"
	"testing"
)

func TestCompareValues(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"3.5", "3.5", 0},
		{"apple", "banana", -1},
		{"10", "abc", 1},
		{"", "", 0},
	}
	for _, tt := range tests {
		got := compareValues(tt.a, tt.b)
		if sign(got) != tt.want {
			t.Errorf("compareValues(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestTypedValue(t *testing.T) {
	if v, ok := typedValue("").(float64); !ok || !math.IsNaN(v) {
		t.Errorf("missing cell should map to NaN, got %v", typedValue(""))
	}
	if v := typedValue("42"); v != 42.0 {
		t.Errorf("typedValue(\"42\") = %v, want 42.0", v)
	}
	if v := typedValue("hello"); v != "hello" {
		t.Errorf("typedValue(\"hello\") = %v", v)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{math.NaN(), ""},
		{300.0, "300"},
		{3.14, "3.14"},
		{int64(7), "7"},
		{true, "TRUE"},
		{false, "FALSE"},
		{"text", "text"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
