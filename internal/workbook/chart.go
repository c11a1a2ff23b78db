package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ChartSpec describes a chart to add on its own worksheet, with category
// and value ranges resolved from a source sheet's header row.
type ChartSpec struct {
	SourceSheet string
	Type        string
	XColumn     string
	YColumns    []string
	Title       string
	SheetName   string
}

// chartTypes maps CLI chart type names onto excelize chart kinds. "bar"
// renders vertical columns.
var chartTypes = map[string]excelize.ChartType{
	"bar":  excelize.Col,
	"line": excelize.Line,
	"pie":  excelize.Pie,
}

// ChartTypes lists the supported chart type names.
func ChartTypes() []string {
	return []string{"bar", "line", "pie"}
}

// AddChart creates a new worksheet holding one chart. Referenced column
// headers that are not present in the source sheet are skipped, so a fully
// unknown set of headers produces a chart with no data series.
func AddChart(f *excelize.File, spec ChartSpec) error {
	chartType, ok := chartTypes[spec.Type]
	if !ok {
		return fmt.Errorf("unsupported chart type %q — supported: %v", spec.Type, ChartTypes())
	}

	rows, err := f.GetRows(spec.SourceSheet)
	if err != nil {
		return fmt.Errorf("sheet %q not found — available sheets: %v", spec.SourceSheet, f.GetSheetList())
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	lastRow := len(rows)

	categories := ""
	if col, ok := headerRef(header, spec.XColumn); ok && lastRow > 1 {
		categories = fmt.Sprintf("'%s'!$%s$2:$%s$%d", spec.SourceSheet, col, col, lastRow)
	}

	var series []excelize.ChartSeries
	for _, y := range spec.YColumns {
		col, ok := headerRef(header, y)
		if !ok || lastRow < 2 {
			continue
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$1", spec.SourceSheet, col),
			Categories: categories,
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", spec.SourceSheet, col, col, lastRow),
		})
	}

	if _, err := f.NewSheet(spec.SheetName); err != nil {
		return fmt.Errorf("could not create chart sheet %q: %w", spec.SheetName, err)
	}

	chart := &excelize.Chart{
		Type:   chartType,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: spec.Title}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	}
	if err := f.AddChart(spec.SheetName, "A1", chart); err != nil {
		return fmt.Errorf("could not add chart: %w", err)
	}
	return nil
}

// headerRef finds a header by name and returns its column letter.
func headerRef(header []string, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for i, h := range header {
		if h == name {
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return "", false
			}
			return col, true
		}
	}
	return "", false
}
