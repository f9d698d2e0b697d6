package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/ruchitsaxena275/scb-analyzer/src/heatmap"
	"github.com/ruchitsaxena275/scb-analyzer/src/pipeline"
)

const reportSheet = "Ratios"

// writeReport saves the ratio table to a spreadsheet with one column per
// string, the expected current in the last column, and a line chart of the
// expected current over the window. Undefined cells are left blank.
func writeReport(rt *pipeline.RatioTable, path string) error {
	if rt.Empty() {
		return errors.New("no data to write")
	}
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if defaultSheet != reportSheet {
		f.NewSheet(reportSheet)
		f.DeleteSheet(defaultSheet)
	}

	_ = f.SetCellStr(reportSheet, "A1", "time")
	for j, name := range rt.Strings {
		cell, _ := excelize.CoordinatesToCellName(j+2, 1)
		_ = f.SetCellStr(reportSheet, cell, name)
	}
	expCol := len(rt.Strings) + 2
	expHeader, _ := excelize.CoordinatesToCellName(expCol, 1)
	_ = f.SetCellStr(reportSheet, expHeader, "expected_a")

	for i := range rt.Times {
		row := i + 2
		_ = f.SetCellStr(reportSheet, fmt.Sprintf("A%d", row), heatmap.TimeLabel(rt.Times[i], rt.Labels[i]))
		for j := range rt.Strings {
			v := rt.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+2, row)
			_ = f.SetCellFloat(reportSheet, cell, v, 4, 64)
		}
		if m := rt.Means[i]; !math.IsNaN(m) {
			cell, _ := excelize.CoordinatesToCellName(expCol, row)
			_ = f.SetCellFloat(reportSheet, cell, m, 3, 64)
		}
	}

	endRow := len(rt.Times) + 1
	expName, _ := excelize.ColumnNumberToName(expCol)
	chart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$%s$1", reportSheet, expName),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", reportSheet, endRow),
				Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", reportSheet, expName, expName, endRow),
			},
		},
		Title:  []excelize.RichTextRun{{Text: "Expected current (A)"}},
		Legend: excelize.ChartLegend{Position: "none"},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Sample"}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Amps"}}, MajorGridLines: true},
	}
	anchor, _ := excelize.CoordinatesToCellName(expCol+2, 2)
	if err := f.AddChart(reportSheet, anchor, chart); err != nil {
		return err
	}
	return f.SaveAs(path)
}
