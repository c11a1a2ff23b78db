package dataset

import (
	"reflect"
	"testing"
)

func TestSummarizeMean(t *testing.T) {
	d, err := employees().Summarize("Department", "Salary", "mean")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if !reflect.DeepEqual(d.Columns, []string{"Department", "Salary"}) {
		t.Fatalf("unexpected columns: %v", d.Columns)
	}
	want := [][]string{
		{"Engineering", "4000"},
		{"HR", "2800"},
		{"Sales", "3250"},
	}
	if !reflect.DeepEqual(d.Rows, want) {
		t.Errorf("Summarize mean = %v, want %v", d.Rows, want)
	}
}

func TestSummarizeCountSkipsMissing(t *testing.T) {
	src := &Dataset{
		Columns: []string{"Group", "Score"},
		Rows: [][]string{
			{"a", "1"},
			{"a", ""},
			{"a", "3"},
			{"b", ""},
		},
	}
	d, err := src.Summarize("Group", "Score", "count")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	want := [][]string{{"a", "2"}, {"b", "0"}}
	if !reflect.DeepEqual(d.Rows, want) {
		t.Errorf("Summarize count = %v, want %v", d.Rows, want)
	}
}

func TestSummarizeMedian(t *testing.T) {
	src := &Dataset{
		Columns: []string{"Group", "Score"},
		Rows: [][]string{
			{"a", "1"},
			{"a", "10"},
			{"a", "4"},
			{"b", "2"},
			{"b", "4"},
		},
	}
	d, err := src.Summarize("Group", "Score", "median")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	want := [][]string{{"a", "4"}, {"b", "3"}}
	if !reflect.DeepEqual(d.Rows, want) {
		t.Errorf("Summarize median = %v, want %v", d.Rows, want)
	}
}

func TestSummarizeUnsupportedFunc(t *testing.T) {
	if _, err := employees().Summarize("Department", "Salary", "variance"); err == nil {
		t.Error("expected error for unsupported aggregation")
	}
}

func TestSummarizeNumericGroupOrder(t *testing.T) {
	src := &Dataset{
		Columns: []string{"Year", "Sales"},
		Rows: [][]string{
			{"2024", "10"},
			{"2023", "20"},
			{"2025", "5"},
		},
	}
	d, err := src.Summarize("Year", "Sales", "sum")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	got := make([]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		got = append(got, row[0])
	}
	want := []string{"2023", "2024", "2025"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("group order = %v, want %v", got, want)
	}
}
