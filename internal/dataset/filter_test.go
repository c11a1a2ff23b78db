package dataset

import "testing"

func employees() *Dataset {
	return &Dataset{
		Columns: []string{"Name", "Department", "Salary"},
		Rows: [][]string{
			{"Alice", "Sales", "3000"},
			{"Bob", "Engineering", "4000"},
			{"Carol", "Sales", "3500"},
			{"Dave", "HR", "2800"},
		},
	}
}

func TestFilter(t *testing.T) {
	d, err := employees().Filter("Department", "Sales")
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(d.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(d.Rows))
	}
	for _, row := range d.Rows {
		if row[1] != "Sales" {
			t.Errorf("row %v should not survive the filter", row)
		}
	}
}

func TestFilterNoMatches(t *testing.T) {
	d, err := employees().Filter("Department", "Marketing")
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(d.Rows) != 0 {
		t.Errorf("expected empty result, got %d rows", len(d.Rows))
	}
	if len(d.Columns) != 3 {
		t.Error("filter should preserve the header even with no matches")
	}
}

func TestFilterUnknownColumn(t *testing.T) {
	if _, err := employees().Filter("Nope", "x"); err == nil {
		t.Error("expected error for unknown column")
	}
}
