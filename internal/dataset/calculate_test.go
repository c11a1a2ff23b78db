package dataset

import "testing"

func TestCalculate(t *testing.T) {
	d, err := employees().Calculate("Double", "Salary * 2")
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	idx, _ := d.ColumnIndex("Double")
	if idx != 3 {
		t.Fatalf("new column should be appended, got index %d", idx)
	}
	if d.Rows[0][idx] != "6000" {
		t.Errorf("Double[0] = %q, want 6000", d.Rows[0][idx])
	}
}

func TestCalculateOverwritesExisting(t *testing.T) {
	d, err := employees().Calculate("Salary", "Salary / 100")
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if len(d.Columns) != 3 {
		t.Fatalf("overwrite should not add a column, got %v", d.Columns)
	}
	if d.Rows[1][2] != "40" {
		t.Errorf("Salary[1] = %q, want 40", d.Rows[1][2])
	}
}

func TestCalculateComparison(t *testing.T) {
	d, err := employees().Calculate("Senior", "Salary > 3200")
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	idx, _ := d.ColumnIndex("Senior")
	want := []string{"FALSE", "TRUE", "TRUE", "FALSE"}
	for i, row := range d.Rows {
		if row[idx] != want[i] {
			t.Errorf("Senior[%d] = %q, want %q", i, row[idx], want[i])
		}
	}
}

func TestCalculateMissingInput(t *testing.T) {
	src := &Dataset{
		Columns: []string{"Price"},
		Rows:    [][]string{{"10"}, {""}},
	}
	d, err := src.Calculate("WithTax", "Price * 2")
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if d.Rows[1][1] != "" {
		t.Errorf("missing input should yield a missing result, got %q", d.Rows[1][1])
	}
}

func TestCalculateInvalidExpression(t *testing.T) {
	if _, err := employees().Calculate("X", "Salary *"); err == nil {
		t.Error("expected error for invalid expression")
	}
}

func TestCalculateUnknownColumn(t *testing.T) {
	if _, err := employees().Calculate("X", "Bogus * 2"); err == nil {
		t.Error("expected error when the expression references an unknown column")
	}
}
