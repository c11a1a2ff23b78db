// Package actions provides the built-in pipeline action implementations,
// one per sheetops CLI action.
package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/klytics/sheetops/internal/dataset"
	"github.com/klytics/sheetops/internal/pipeline"
	"github.com/klytics/sheetops/internal/workbook"
)

// RegisterAll registers every built-in action with the given executor.
func RegisterAll(exec *pipeline.Executor) {
	exec.RegisterAction("filter", FilterAction)
	exec.RegisterAction("summarize", SummarizeAction)
	exec.RegisterAction("calculate", CalculateAction)
	exec.RegisterAction("merge", MergeAction)
	exec.RegisterAction("sort", SortAction)
	exec.RegisterAction("rename", RenameAction)
	exec.RegisterAction("drop_duplicates", DropDuplicatesAction)
	exec.RegisterAction("fill_na", FillNAAction)
	exec.RegisterAction("convert_type", ConvertTypeAction)
	exec.RegisterAction("duplicate_sheet", DuplicateSheetAction)
	exec.RegisterAction("update_cells", UpdateCellsAction)
	exec.RegisterAction("chart", ChartAction)
}

func requireOpt(step pipeline.Step, key string) (string, error) {
	v, ok := step.Options[key]
	if !ok || v == "" {
		return "", fmt.Errorf("%s requires options.%s", step.Action, key)
	}
	return v, nil
}

func listOpt(step pipeline.Step, key string) []string {
	v := step.Options[key]
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// runDataset wraps the shared load → transform → save flow for row/column
// actions.
func runDataset(step pipeline.Step, transform func(*dataset.Dataset) (*dataset.Dataset, error)) (string, error) {
	if step.Input == "" {
		return "", fmt.Errorf("%s requires an input workbook path", step.Action)
	}
	if step.Output == "" {
		return "", fmt.Errorf("%s requires an output workbook path", step.Action)
	}

	d, err := workbook.LoadDataset(step.Input)
	if err != nil {
		return "", err
	}
	result, err := transform(d)
	if err != nil {
		return "", err
	}
	if err := workbook.SaveDataset(result, step.Output); err != nil {
		return "", err
	}
	return step.Output, nil
}

// runStructural wraps the shared open → mutate → save flow for structural
// actions.
func runStructural(step pipeline.Step, mutate func(f *excelize.File) error) (string, error) {
	if step.Input == "" {
		return "", fmt.Errorf("%s requires an input workbook path", step.Action)
	}
	if step.Output == "" {
		return "", fmt.Errorf("%s requires an output workbook path", step.Action)
	}

	f, err := workbook.Open(step.Input)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := mutate(f); err != nil {
		return "", err
	}
	if err := f.SaveAs(step.Output); err != nil {
		return "", err
	}
	return step.Output, nil
}

// FilterAction keeps rows where a column equals a value.
func FilterAction(ctx context.Context, step pipeline.Step) (string, error) {
	column, err := requireOpt(step, "column")
	if err != nil {
		return "", err
	}
	value, ok := step.Options["value"]
	if !ok {
		return "", fmt.Errorf("filter requires options.value")
	}
	return runDataset(step, func(d *dataset.Dataset) (*dataset.Dataset, error) {
		return d.Filter(column, value)
	})
}

// SummarizeAction groups by a column and aggregates another.
func SummarizeAction(ctx context.Context, step pipeline.Step) (string, error) {
	groupBy, err := requireOpt(step, "group_by")
	if err != nil {
		return "", err
	}
	aggCol, err := requireOpt(step, "agg_col")
	if err != nil {
		return "", err
	}
	aggFunc, err := requireOpt(step, "agg_func")
	if err != nil {
		return "", err
	}
	return runDataset(step, func(d *dataset.Dataset) (*dataset.Dataset, error) {
		return d.Summarize(groupBy, aggCol, aggFunc)
	})
}

// CalculateAction derives a new column from an expression.
func CalculateAction(ctx context.Context, step pipeline.Step) (string, error) {
	newCol, err := requireOpt(step, "new_col")
	if err != nil {
		return "", err
	}
	expression, err := requireOpt(step, "expr")
	if err != nil {
		return "", err
	}
	return runDataset(step, func(d *dataset.Dataset) (*dataset.Dataset, error) {
		return d.Calculate(newCol, expression)
	})
}

// MergeAction joins the step's two input workbooks on a shared column.
func MergeAction(ctx context.Context, step pipeline.Step) (string, error) {
	if step.Input == "" || step.Input2 == "" {
		return "", fmt.Errorf("merge requires input and input2 workbook paths")
	}
	if step.Output == "" {
		return "", fmt.Errorf("merge requires an output workbook path")
	}
	on, err := requireOpt(step, "on")
	if err != nil {
		return "", err
	}
	how := step.Options["how"]
	if how == "" {
		how = "inner"
	}

	left, err := workbook.LoadDataset(step.Input)
	if err != nil {
		return "", err
	}
	right, err := workbook.LoadDataset(step.Input2)
	if err != nil {
		return "", err
	}
	merged, err := dataset.Merge(left, right, on, how)
	if err != nil {
		return "", err
	}
	if err := workbook.SaveDataset(merged, step.Output); err != nil {
		return "", err
	}
	return step.Output, nil
}

// SortAction stable-sorts rows by one or more columns.
func SortAction(ctx context.Context, step pipeline.Step) (string, error) {
	by := listOpt(step, "by")
	if len(by) == 0 {
		return "", fmt.Errorf("sort requires options.by")
	}
	order := step.Options["order"]
	if order == "" {
		order = "asc"
	}
	if order != "asc" && order != "desc" {
		return "", fmt.Errorf("invalid sort order %q — expected asc or desc", order)
	}
	return runDataset(step, func(d *dataset.Dataset) (*dataset.Dataset, error) {
		return d.SortBy(by, order == "desc")
	})
}

// RenameAction renames columns per an Old:New mapping.
func RenameAction(ctx context.Context, step pipeline.Step) (string, error) {
	raw, err := requireOpt(step, "map")
	if err != nil {
		return "", err
	}
	mapping, err := dataset.ParseRenameMap(raw)
	if err != nil {
		return "", err
	}
	return runDataset(step, func(d *dataset.Dataset) (*dataset.Dataset, error) {
		return d.Rename(mapping), nil
	})
}

// DropDuplicatesAction removes duplicate rows.
func DropDuplicatesAction(ctx context.Context, step pipeline.Step) (string, error) {
	subset := listOpt(step, "subset")
	return runDataset(step, func(d *dataset.Dataset) (*dataset.Dataset, error) {
		return d.DropDuplicates(subset)
	})
}

// FillNAAction replaces missing cells with a literal value.
func FillNAAction(ctx context.Context, step pipeline.Step) (string, error) {
	value, ok := step.Options["value"]
	if !ok {
		return "", fmt.Errorf("fill_na requires options.value")
	}
	columns := listOpt(step, "columns")
	return runDataset(step, func(d *dataset.Dataset) (*dataset.Dataset, error) {
		return d.FillNA(value, columns)
	})
}

// ConvertTypeAction coerces a column to a target type.
func ConvertTypeAction(ctx context.Context, step pipeline.Step) (string, error) {
	column, err := requireOpt(step, "column")
	if err != nil {
		return "", err
	}
	toType, err := requireOpt(step, "to_type")
	if err != nil {
		return "", err
	}
	return runDataset(step, func(d *dataset.Dataset) (*dataset.Dataset, error) {
		return d.ConvertType(column, toType)
	})
}

// DuplicateSheetAction clones a worksheet under a new name.
func DuplicateSheetAction(ctx context.Context, step pipeline.Step) (string, error) {
	source, err := requireOpt(step, "source_sheet")
	if err != nil {
		return "", err
	}
	newName, err := requireOpt(step, "new_sheet_name")
	if err != nil {
		return "", err
	}
	return runStructural(step, func(f *excelize.File) error {
		return workbook.DuplicateSheet(f, source, newName)
	})
}

// UpdateCellsAction sets literal values into cell addresses.
func UpdateCellsAction(ctx context.Context, step pipeline.Step) (string, error) {
	sheetName, err := requireOpt(step, "sheet_name")
	if err != nil {
		return "", err
	}
	raw, err := requireOpt(step, "updates")
	if err != nil {
		return "", err
	}
	updates, err := workbook.ParseCellUpdates(raw)
	if err != nil {
		return "", err
	}
	return runStructural(step, func(f *excelize.File) error {
		return workbook.UpdateCells(f, sheetName, updates)
	})
}

// ChartAction adds a chart on a new worksheet.
func ChartAction(ctx context.Context, step pipeline.Step) (string, error) {
	sheetName, err := requireOpt(step, "sheet_name")
	if err != nil {
		return "", err
	}
	chartType, err := requireOpt(step, "chart_type")
	if err != nil {
		return "", err
	}
	chartTitle := step.Options["chart_title"]
	if chartTitle == "" {
		chartTitle = "Chart"
	}
	return runStructural(step, func(f *excelize.File) error {
		return workbook.AddChart(f, workbook.ChartSpec{
			SourceSheet: sheetName,
			Type:        chartType,
			XColumn:     step.Options["x_column"],
			YColumns:    listOpt(step, "y_columns"),
			Title:       step.Options["title"],
			SheetName:   chartTitle,
		})
	})
}
