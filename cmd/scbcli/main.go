// scbcli runs the string-current pipeline without the GUI: load a combiner
// log, resolve its timestamp column, slice a time window, compute the
// ratio-to-expected table and write the heatmap PNG (plus an optional
// spreadsheet report).
package main

import (
	"fmt"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/ruchitsaxena275/scb-analyzer/src/heatmap"
	"github.com/ruchitsaxena275/scb-analyzer/src/pipeline"
	"github.com/ruchitsaxena275/scb-analyzer/src/scblog"
	"github.com/ruchitsaxena275/scb-analyzer/src/table"
)

var (
	warnc = color.New(color.FgYellow)
	errc  = color.New(color.FgRed, color.Bold)
)

func main() {
	app := &cli.App{
		Name:  "scbcli",
		Usage: "render a string-current performance heatmap from a combiner-box log",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "input .csv or .xlsx log", Required: true},
			&cli.StringFlag{Name: "time-column", Aliases: []string{"t"}, Usage: "name of the timestamp column", Required: true},
			&cli.StringFlag{Name: "start-date", Usage: "window start date (day-first, e.g. 05-03-2024); default: first date in the data"},
			&cli.StringFlag{Name: "end-date", Usage: "window end date (day-first); default: last date in the data"},
			&cli.StringFlag{Name: "start-time", Value: pipeline.DefaultStartClock, Usage: "window start time of day (HH:MM)"},
			&cli.StringFlag{Name: "end-time", Value: pipeline.DefaultEndClock, Usage: "window end time of day (HH:MM)"},
			&cli.StringSliceFlag{Name: "column", Aliases: []string{"c"}, Usage: "string-current column (repeatable); default: first 18 numeric columns"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "heatmap.png", Usage: "heatmap PNG output path"},
			&cli.StringFlag{Name: "report", Usage: "optional .xlsx ratio report output path"},
			&cli.IntFlag{Name: "width", Value: 1100, Usage: "heatmap width in pixels"},
			&cli.IntFlag{Name: "height", Value: 600, Usage: "heatmap height in pixels"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug|info|warn|error"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		errc.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	scblog.SetLevel(c.String("log-level"))

	path := c.String("file")
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	df, err := table.Load(f, path)
	if err != nil {
		return err
	}
	scblog.Infof("loaded %s: %d rows, %d columns", path, df.Nrow(), df.Ncol())

	it, err := pipeline.ResolveTimestamps(df, c.String("time-column"))
	if err != nil {
		return err
	}
	if it.Dropped > 0 {
		fmt.Printf("%d rows dropped due to invalid timestamps\n", it.Dropped)
	}

	start, end, err := window(c, it)
	if err != nil {
		return err
	}
	ft, swapped, err := pipeline.FilterRange(it, start, end)
	if err != nil {
		return err
	}
	if swapped {
		warnc.Println("end time was earlier than start time; bounds swapped")
	}
	fmt.Printf("%d samples in the selected window\n", ft.Len())
	if ft.Len() == 0 {
		warnc.Println("no samples in the selected window")
	}

	candidates, err := pipeline.StringColumns(ft.Data, it.Column)
	if err != nil {
		return err
	}
	selected := c.StringSlice("column")
	if len(selected) == 0 && !c.IsSet("column") {
		selected = pipeline.DefaultStrings(candidates)
	}
	if err := pipeline.ValidateSelection(selected, candidates); err != nil {
		return err
	}

	rt, err := pipeline.ComputeRatios(ft, selected)
	if err != nil {
		return err
	}
	printPreview(rt)

	img := heatmap.Render(rt, c.Int("width"), c.Int("height"))
	if img == nil {
		warnc.Println("empty ratio table; heatmap not written")
		return nil
	}
	out, err := os.Create(c.String("out"))
	if err != nil {
		return err
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return err
	}
	scblog.Infof("heatmap written to %s", c.String("out"))

	if rep := c.String("report"); rep != "" {
		if err := writeReport(rt, rep); err != nil {
			return err
		}
		scblog.Infof("ratio report written to %s", rep)
	}
	return nil
}

// window resolves the filter bounds, defaulting the dates to the data's
// observed first and last day.
func window(c *cli.Context, it pipeline.IndexedTable) (time.Time, time.Time, error) {
	dates := pipeline.DistinctDates(it)
	if len(dates) == 0 {
		return time.Time{}, time.Time{}, pipeline.ErrNoRows
	}
	startDate := c.String("start-date")
	if startDate == "" {
		startDate = dates[0]
	}
	endDate := c.String("end-date")
	if endDate == "" {
		endDate = dates[len(dates)-1]
	}
	start, err := pipeline.CombineDayTime(startDate, c.String("start-time"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := pipeline.CombineDayTime(endDate, c.String("end-time"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// printPreview lists the first 10 rows of the ratio table, one line per
// sample, matching the on-screen preview of the viewer.
func printPreview(rt *pipeline.RatioTable) {
	if rt.Empty() {
		return
	}
	n := len(rt.Times)
	if n > 10 {
		n = 10
	}
	fmt.Println("time              " + strings.Join(rt.Strings, "  "))
	for i := 0; i < n; i++ {
		cells := make([]string, len(rt.Strings))
		for j := range rt.Strings {
			cells[j] = formatRatio(rt.At(i, j))
		}
		fmt.Printf("%s  %s\n", heatmap.TimeLabel(rt.Times[i], rt.Labels[i]), strings.Join(cells, "  "))
	}
}

func formatRatio(v float64) string {
	if v != v { // NaN
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}
