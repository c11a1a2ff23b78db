package dataset

import (
	"reflect"
	"testing"
)

func TestFillNAAllColumns(t *testing.T) {
	src := &Dataset{
		Columns: []string{"A", "B"},
		Rows: [][]string{
			{"", "1"},
			{"2", ""},
		},
	}
	d, err := src.FillNA("0", nil)
	if err != nil {
		t.Fatalf("FillNA failed: %v", err)
	}
	want := [][]string{{"0", "1"}, {"2", "0"}}
	if !reflect.DeepEqual(d.Rows, want) {
		t.Errorf("FillNA = %v, want %v", d.Rows, want)
	}
}

func TestFillNASelectedColumns(t *testing.T) {
	src := &Dataset{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"", ""}},
	}
	d, err := src.FillNA("n/a", []string{"B"})
	if err != nil {
		t.Fatalf("FillNA failed: %v", err)
	}
	if d.Rows[0][0] != "" || d.Rows[0][1] != "n/a" {
		t.Errorf("only column B should be filled, got %v", d.Rows[0])
	}
}

func TestFillNAUnknownColumn(t *testing.T) {
	if _, err := employees().FillNA("0", []string{"Nope"}); err == nil {
		t.Error("expected error for unknown column")
	}
}
