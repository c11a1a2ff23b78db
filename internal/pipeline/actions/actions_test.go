package actions

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/klytics/sheetops/internal/dataset"
	"github.com/klytics/sheetops/internal/pipeline"
	"github.com/klytics/sheetops/internal/workbook"
)

func writeFixture(t *testing.T, dir, name string, rows [][]string) string {
	t.Helper()
	d, err := dataset.FromGrid(rows)
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := workbook.SaveDataset(d, path); err != nil {
		t.Fatalf("SaveDataset failed: %v", err)
	}
	return path
}

func TestFilterAction(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "in.xlsx", [][]string{
		{"Name", "Department"},
		{"Alice", "Sales"},
		{"Bob", "Engineering"},
	})
	output := filepath.Join(dir, "out.xlsx")

	step := pipeline.Step{
		ID:     "keep-sales",
		Action: "filter",
		Input:  input,
		Output: output,
		Options: map[string]string{
			"column": "Department",
			"value":  "Sales",
		},
	}
	got, err := FilterAction(context.Background(), step)
	if err != nil {
		t.Fatalf("FilterAction failed: %v", err)
	}
	if got != output {
		t.Errorf("returned path %q, want %q", got, output)
	}

	d, err := workbook.LoadDataset(output)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if len(d.Rows) != 1 || d.Rows[0][0] != "Alice" {
		t.Errorf("unexpected filtered rows: %v", d.Rows)
	}
}

func TestFilterActionMissingOption(t *testing.T) {
	step := pipeline.Step{ID: "s", Action: "filter", Input: "in.xlsx", Output: "out.xlsx"}
	if _, err := FilterAction(context.Background(), step); err == nil {
		t.Error("expected error when a required option is absent")
	}
}

func TestMergeAction(t *testing.T) {
	dir := t.TempDir()
	left := writeFixture(t, dir, "left.xlsx", [][]string{
		{"ID", "Name"},
		{"1", "Alice"},
		{"2", "Bob"},
	})
	right := writeFixture(t, dir, "right.xlsx", [][]string{
		{"ID", "Dept"},
		{"2", "Sales"},
	})
	output := filepath.Join(dir, "merged.xlsx")

	step := pipeline.Step{
		ID:      "join",
		Action:  "merge",
		Input:   left,
		Input2:  right,
		Output:  output,
		Options: map[string]string{"on": "ID"},
	}
	if _, err := MergeAction(context.Background(), step); err != nil {
		t.Fatalf("MergeAction failed: %v", err)
	}

	d, err := workbook.LoadDataset(output)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if len(d.Rows) != 1 || d.Rows[0][2] != "Sales" {
		t.Errorf("unexpected merge result: %v", d.Rows)
	}
}

func TestRegisterAllChain(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "in.xlsx", [][]string{
		{"Region", "Amount"},
		{"North", "10"},
		{"South", "5"},
		{"North", "20"},
	})
	summary := filepath.Join(dir, "summary.xlsx")
	final := filepath.Join(dir, "final.xlsx")

	exec := pipeline.NewExecutor(false)
	RegisterAll(exec)

	p := &pipeline.Pipeline{
		Name: "chain",
		Steps: []pipeline.Step{
			{
				ID:     "totals",
				Action: "summarize",
				Input:  input,
				Output: summary,
				Options: map[string]string{
					"group_by": "Region",
					"agg_col":  "Amount",
					"agg_func": "sum",
				},
			},
			{
				ID:     "ranked",
				Action: "sort",
				Input:  "${{ steps.totals.output }}",
				Output: final,
				Options: map[string]string{
					"by":    "Amount",
					"order": "desc",
				},
			},
		},
	}
	if _, err := exec.Run(context.Background(), p); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	d, err := workbook.LoadDataset(final)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	want := [][]string{{"North", "30"}, {"South", "5"}}
	for i, row := range want {
		if d.Rows[i][0] != row[0] || d.Rows[i][1] != row[1] {
			t.Errorf("row %d = %v, want %v", i, d.Rows[i], row)
		}
	}
}

func TestDuplicateSheetAction(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "in.xlsx", [][]string{{"A"}, {"1"}})
	output := filepath.Join(dir, "out.xlsx")

	step := pipeline.Step{
		ID:     "dup",
		Action: "duplicate_sheet",
		Input:  input,
		Output: output,
		Options: map[string]string{
			"source_sheet":   "Sheet1",
			"new_sheet_name": "Backup",
		},
	}
	if _, err := DuplicateSheetAction(context.Background(), step); err != nil {
		t.Fatalf("DuplicateSheetAction failed: %v", err)
	}

	wb, err := workbook.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if _, err := wb.GetSheet("Backup"); err != nil {
		t.Errorf("duplicated sheet missing: %v", err)
	}
}
