// Package table loads an uploaded combiner-box log into a dataframe and
// answers basic schema questions about it (column names, numeric columns).
package table

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// Extensions accepted by the file picker. Anything that is not delimited
// text is parsed as a spreadsheet.
var (
	DelimitedExtensions   = []string{".csv"}
	SpreadsheetExtensions = []string{".xlsx", ".xlsm", ".xls"}
)

// Load parses an uploaded file into a dataframe. The extension decides the
// parser: delimited text is read directly, everything else goes through the
// spreadsheet reader (first sheet). Column names come from the header row.
// Any parse failure is fatal for the pipeline; no partial table is returned.
func Load(r io.Reader, filename string) (dataframe.DataFrame, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range DelimitedExtensions {
		if ext == e {
			return loadDelimited(r)
		}
	}
	return loadSpreadsheet(r)
}

func loadDelimited(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("unreadable file: %w", df.Err)
	}
	return df, nil
}

func loadSpreadsheet(r io.Reader) (dataframe.DataFrame, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("unreadable file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("unreadable file: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("unreadable file: %w", err)
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("unreadable file: sheet %q is empty", sheets[0])
	}

	records := normalizeRecords(rows)
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("unreadable file: %w", df.Err)
	}
	return df, nil
}

// normalizeRecords pads ragged spreadsheet rows to the widest row and fills
// blank header cells so the dataframe loader accepts the grid.
func normalizeRecords(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		rec := make([]string, width)
		copy(rec, row)
		out[i] = rec
	}
	for i, name := range out[0] {
		if strings.TrimSpace(name) == "" {
			out[0][i] = fmt.Sprintf("column_%d", i+1)
		}
	}
	return out
}
