package dataset

import "testing"

func TestConvertTypeInt(t *testing.T) {
	src := &Dataset{
		Columns: []string{"V"},
		Rows:    [][]string{{"3.7"}, {"12"}, {""}},
	}
	d, err := src.ConvertType("V", "int")
	if err != nil {
		t.Fatalf("ConvertType failed: %v", err)
	}
	want := []string{"3", "12", ""}
	for i, w := range want {
		if d.Rows[i][0] != w {
			t.Errorf("row %d = %q, want %q", i, d.Rows[i][0], w)
		}
	}
}

func TestConvertTypeFloat(t *testing.T) {
	src := &Dataset{
		Columns: []string{"V"},
		Rows:    [][]string{{"42"}, {"3.14"}},
	}
	d, err := src.ConvertType("V", "float")
	if err != nil {
		t.Fatalf("ConvertType failed: %v", err)
	}
	if d.Rows[0][0] != "42" || d.Rows[1][0] != "3.14" {
		t.Errorf("unexpected values: %v", d.Rows)
	}
}

func TestConvertTypeDatetime(t *testing.T) {
	src := &Dataset{
		Columns: []string{"When"},
		Rows:    [][]string{{"2024-03-15"}, {"2024/03/15"}, {"03/15/2024"}},
	}
	d, err := src.ConvertType("When", "datetime")
	if err != nil {
		t.Fatalf("ConvertType failed: %v", err)
	}
	for i, row := range d.Rows {
		if row[0] != "2024-03-15 00:00:00" {
			t.Errorf("row %d = %q, want normalized datetime", i, row[0])
		}
	}
}

func TestConvertTypeIntBadValue(t *testing.T) {
	src := &Dataset{
		Columns: []string{"V"},
		Rows:    [][]string{{"abc"}},
	}
	d, err := src.ConvertType("V", "int")
	if err != nil {
		t.Fatalf("ConvertType failed: %v", err)
	}
	if d.Rows[0][0] != "" {
		t.Errorf("non-numeric value should become missing, got %q", d.Rows[0][0])
	}
}

func TestConvertTypeUnsupportedTarget(t *testing.T) {
	if _, err := employees().ConvertType("Salary", "decimal"); err == nil {
		t.Error("expected error for unsupported target type")
	}
}
