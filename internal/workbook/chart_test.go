package workbook

import (
	"path/filepath"
	"testing"
)

func chartFixture(t *testing.T) string {
	t.Helper()
	return writeFixture(t, [][]string{
		{"Month", "Sales", "Costs"},
		{"Jan", "100", "60"},
		{"Feb", "120", "70"},
		{"Mar", "90", "55"},
	})
}

func TestAddChart(t *testing.T) {
	path := chartFixture(t)

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	spec := ChartSpec{
		SourceSheet: "Sheet1",
		Type:        "bar",
		XColumn:     "Month",
		YColumns:    []string{"Sales", "Costs"},
		Title:       "Monthly Sales",
		SheetName:   "Chart",
	}
	if err := AddChart(f, spec); err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.xlsx")
	if err := f.SaveAs(out); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	reopened, err := Open(out)
	if err != nil {
		t.Fatalf("Open(out) failed: %v", err)
	}
	defer reopened.Close()
	if idx, err := reopened.GetSheetIndex("Chart"); err != nil || idx < 0 {
		t.Errorf("chart sheet missing from saved workbook: %v", reopened.GetSheetList())
	}
}

func TestAddChartSkipsUnknownColumns(t *testing.T) {
	path := chartFixture(t)

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	spec := ChartSpec{
		SourceSheet: "Sheet1",
		Type:        "line",
		XColumn:     "Month",
		YColumns:    []string{"Sales", "Bogus"},
		SheetName:   "Chart",
	}
	if err := AddChart(f, spec); err != nil {
		t.Errorf("unknown series columns should be skipped, got %v", err)
	}
}

func TestAddChartErrors(t *testing.T) {
	path := chartFixture(t)

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	spec := ChartSpec{
		SourceSheet: "Sheet1",
		Type:        "scatter",
		XColumn:     "Month",
		YColumns:    []string{"Sales"},
		SheetName:   "Chart",
	}
	if err := AddChart(f, spec); err == nil {
		t.Error("expected error for unsupported chart type")
	}

	spec.Type = "pie"
	spec.SourceSheet = "Nope"
	if err := AddChart(f, spec); err == nil {
		t.Error("expected error for missing source sheet")
	}
}
