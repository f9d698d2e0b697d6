// scbviewer is the interactive shell around the string-current pipeline:
// it collects the operator's parameters (file, timestamp column, time
// window, string columns) step by step and renders the ratio heatmap, the
// expected-current chart and a preview of the ratio table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	png "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/go-gota/gota/dataframe"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ruchitsaxena275/scb-analyzer/cmd/scbviewer/uihelpers"
	"github.com/ruchitsaxena275/scb-analyzer/src/heatmap"
	"github.com/ruchitsaxena275/scb-analyzer/src/pipeline"
	"github.com/ruchitsaxena275/scb-analyzer/src/table"
)

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

type uiState struct {
	app      fyne.App
	window   fyne.Window
	filePath string

	// pipeline state, rebuilt top-down whenever an upstream parameter changes
	raw       dataframe.DataFrame
	rawLoaded bool
	indexed   pipeline.IndexedTable
	ratios    *pipeline.RatioTable

	// operator parameters
	tsColumn   string
	startDate  string
	endDate    string
	startClock string
	endClock   string
	candidates []string
	selected   []string

	// widgets
	tsSelect        *widget.Select
	startDateSelect *widget.Select
	endDateSelect   *widget.Select
	startTimeEntry  *widget.Entry
	endTimeEntry    *widget.Entry
	colsGroup       *widget.CheckGroup
	statusLabel     *widget.Label
	heatImgCanvas   *canvas.Image
	expImgCanvas    *canvas.Image
	previewTable    *widget.Table
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var fileFlag string
	flag.StringVar(&fileFlag, "file", "", "Path to a combiner-box log (.csv or .xlsx)")
	flag.Parse()

	a := app.NewWithID("com.scb.analyzer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("SCB String Analyzer")
	w.Resize(fyne.NewSize(1200, 820))

	state := &uiState{
		app:        a,
		window:     w,
		filePath:   fileFlag,
		startClock: pipeline.DefaultStartClock,
		endClock:   pipeline.DefaultEndClock,
	}

	fileLabel := widget.NewLabel(truncatePath(state.filePath, 60))
	state.statusLabel = widget.NewLabel("")
	state.statusLabel.Wrapping = fyne.TextWrapWord

	// parameter widgets; callbacks are wired after the canvases exist
	state.tsSelect = widget.NewSelect([]string{}, nil)
	state.tsSelect.PlaceHolder = "Timestamp column"
	state.startDateSelect = widget.NewSelect([]string{}, nil)
	state.startDateSelect.PlaceHolder = "Start date"
	state.endDateSelect = widget.NewSelect([]string{}, nil)
	state.endDateSelect.PlaceHolder = "End date"
	state.startTimeEntry = widget.NewEntry()
	state.startTimeEntry.SetText(state.startClock)
	state.endTimeEntry = widget.NewEntry()
	state.endTimeEntry.SetText(state.endClock)
	state.colsGroup = widget.NewCheckGroup([]string{}, nil)

	// chart placeholders
	state.heatImgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.heatImgCanvas.FillMode = canvas.ImageFillContain
	state.heatImgCanvas.SetMinSize(fyne.NewSize(900, 480))
	state.expImgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.expImgCanvas.FillMode = canvas.ImageFillContain
	state.expImgCanvas.SetMinSize(fyne.NewSize(900, 320))

	state.previewTable = newPreviewTable(state)

	applyBtn := widget.NewButton("Apply", func() { applyPipeline(state) })
	defaultBtn := widget.NewButton("First 18", func() {
		state.colsGroup.SetSelected(pipeline.DefaultStrings(state.candidates))
	})

	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state, fileLabel) }),
		widget.NewButton("Reload", func() { loadFile(state, fileLabel) }),
		widget.NewLabel("File:"), fileLabel,
	)

	colsScroll := container.NewVScroll(state.colsGroup)
	colsScroll.SetMinSize(fyne.NewSize(220, 420))
	form := container.NewVBox(
		widget.NewLabel("Timestamp column:"), state.tsSelect,
		widget.NewLabel("Start date:"), state.startDateSelect,
		widget.NewLabel("End date:"), state.endDateSelect,
		widget.NewLabel("Start time:"), state.startTimeEntry,
		widget.NewLabel("End time:"), state.endTimeEntry,
		widget.NewLabel("String columns:"), defaultBtn,
		colsScroll,
		applyBtn,
	)

	tabs := container.NewAppTabs(
		container.NewTabItem("Heatmap", container.NewVScroll(state.heatImgCanvas)),
		container.NewTabItem("Expected", container.NewVScroll(state.expImgCanvas)),
		container.NewTabItem("Ratios", state.previewTable),
	)
	tabs.SetTabLocation(container.TabLocationTop)
	tabs.OnSelected = func(ti *container.TabItem) {
		state.app.Preferences().SetInt("selectedTabIndex", tabs.SelectedIndex())
	}

	content := container.NewBorder(top, state.statusLabel, form, nil, tabs)
	w.SetContent(content)

	// wire parameter callbacks now that everything exists
	state.tsSelect.OnChanged = func(v string) {
		if v == "" || v == state.tsColumn {
			return
		}
		state.tsColumn = v
		savePrefs(state)
		resolveTimestamps(state)
	}
	state.startDateSelect.OnChanged = func(v string) { state.startDate = v }
	state.endDateSelect.OnChanged = func(v string) { state.endDate = v }
	state.startTimeEntry.OnChanged = func(v string) { state.startClock = v; savePrefs(state) }
	state.endTimeEntry.OnChanged = func(v string) { state.endClock = v; savePrefs(state) }
	state.colsGroup.OnChanged = func(sel []string) { state.selected = sel }

	// redraw rendered images when the window width changes
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() { redrawImages(state) })
					}
				}
			}
		}()
	}

	buildMenus(state, fileLabel)
	loadPrefs(state, fileLabel, tabs)
	if state.filePath != "" {
		loadFile(state, fileLabel)
	}

	w.ShowAndRun()
}

// menus and dialogs
func buildMenus(state *uiState, fileLabel *widget.Label) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 60), func() {
			state.filePath = f
			fileLabel.SetText(truncatePath(state.filePath, 60))
			savePrefs(state)
			loadFile(state, fileLabel)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state, fileLabel) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state, fileLabel) }),
		fyne.NewMenuItem("Reload", func() { loadFile(state, fileLabel) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Heatmap…", func() { exportImagePNG(state, state.heatImgCanvas, "heatmap.png") }),
		fyne.NewMenuItem("Export Expected Chart…", func() { exportImagePNG(state, state.expImgCanvas, "expected_chart.png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { openFileDialog(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { openFileDialog(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { loadFile(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { loadFile(state, fileLabel) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// file open dialog, restricted to the accepted extensions
func openFileDialog(state *uiState, fileLabel *widget.Label) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		fileLabel.SetText(truncatePath(state.filePath, 60))
		addRecentFile(state, state.filePath)
		savePrefs(state)
		loadFile(state, fileLabel)
	}, state.window)
	exts := append(append([]string{}, table.DelimitedExtensions...), table.SpreadsheetExtensions...)
	d.SetFilter(storage.NewExtensionFileFilter(exts))
	d.Show()
}

// loadFile parses the selected file and resets every downstream stage.
func loadFile(state *uiState, fileLabel *widget.Label) {
	if state.filePath == "" {
		return
	}
	f, err := os.Open(state.filePath)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	defer f.Close()
	df, err := table.Load(f, state.filePath)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.raw = df
	state.rawLoaded = true
	state.indexed = pipeline.IndexedTable{}
	state.ratios = nil
	fmt.Printf("[viewer] loaded %s: %d rows, %d columns\n", state.filePath, df.Nrow(), df.Ncol())

	names := df.Names()
	state.tsSelect.Options = names
	if state.tsColumn != "" && contains(names, state.tsColumn) {
		state.tsSelect.Selected = state.tsColumn
		state.tsSelect.Refresh()
		resolveTimestamps(state)
		return
	}
	state.tsColumn = ""
	state.tsSelect.Selected = ""
	state.tsSelect.Refresh()
	setStatus(state, fmt.Sprintf("Loaded %d rows. Pick the timestamp column.", df.Nrow()))
	redrawImages(state)
}

// resolveTimestamps promotes the chosen column and re-derives the window
// bounds offered to the operator.
func resolveTimestamps(state *uiState) {
	if !state.rawLoaded || state.tsColumn == "" {
		return
	}
	it, err := pipeline.ResolveTimestamps(state.raw, state.tsColumn)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.indexed = it
	if it.Dropped > 0 {
		setStatus(state, fmt.Sprintf("%d rows dropped due to invalid timestamps.", it.Dropped))
	} else {
		setStatus(state, "")
	}

	dates := pipeline.DistinctDates(it)
	state.startDateSelect.Options = dates
	state.endDateSelect.Options = dates
	if len(dates) > 0 {
		state.startDate = dates[0]
		state.endDate = dates[len(dates)-1]
		state.startDateSelect.Selected = state.startDate
		state.endDateSelect.Selected = state.endDate
	} else {
		state.startDate, state.endDate = "", ""
		state.startDateSelect.Selected = ""
		state.endDateSelect.Selected = ""
	}
	state.startDateSelect.Refresh()
	state.endDateSelect.Refresh()

	candidates, err := pipeline.StringColumns(it.Data, it.Column)
	if err != nil {
		dialog.ShowError(err, state.window)
		state.candidates = nil
		state.colsGroup.Options = nil
		state.colsGroup.Refresh()
		return
	}
	state.candidates = candidates
	state.colsGroup.Options = candidates
	state.colsGroup.SetSelected(pipeline.DefaultStrings(candidates))
	state.colsGroup.Refresh()

	applyPipeline(state)
}

// applyPipeline runs range filter, column selection and the ratio engine
// with the current parameters, then redraws everything downstream.
func applyPipeline(state *uiState) {
	if len(state.indexed.Rows) == 0 && state.indexed.Dropped == 0 {
		return
	}
	if state.startDate == "" || state.endDate == "" {
		dialog.ShowError(pipeline.ErrNoRows, state.window)
		return
	}
	start, err := pipeline.CombineDayTime(state.startDate, state.startClock)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	end, err := pipeline.CombineDayTime(state.endDate, state.endClock)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	ft, swapped, err := pipeline.FilterRange(state.indexed, start, end)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	var notes []string
	if swapped {
		notes = append(notes, "end time was earlier than start time; bounds swapped")
	}
	notes = append(notes, fmt.Sprintf("%d samples in the selected window", ft.Len()))
	if ft.Len() == 0 {
		notes = append(notes, "window is empty")
	}

	if err := pipeline.ValidateSelection(state.selected, state.candidates); err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	rt, err := pipeline.ComputeRatios(ft, state.selected)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.ratios = rt
	setStatus(state, strings.Join(notes, "; "))
	redrawImages(state)
	sizePreviewColumns(state)
	state.previewTable.Refresh()
}

func redrawImages(state *uiState) {
	cw, chh := chartSize(state)
	hImg := heatmap.Render(state.ratios, cw, chh+160)
	if hImg == nil {
		hImg = drawNotice(blank(cw, chh), "No data in the selected range.")
	}
	state.heatImgCanvas.Image = hImg
	state.heatImgCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(chh+160)))
	state.heatImgCanvas.Refresh()

	eImg := renderExpectedChart(state)
	if eImg != nil {
		state.expImgCanvas.Image = eImg
		state.expImgCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
		state.expImgCanvas.Refresh()
	}
}

// chartSize computes render dimensions from the current window width.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 1100, 340
	}
	return uihelpers.ComputeChartDimensions(int(state.window.Canvas().Size().Width*0.95) - 260)
}

// renderExpectedChart plots the per-sample expected (mean) current, the
// normalization baseline behind every ratio.
func renderExpectedChart(state *uiState) image.Image {
	rt := state.ratios
	cw, chh := chartSize(state)
	if rt.Empty() {
		return drawNotice(blank(cw, chh), "No data in the selected range.")
	}
	times := rt.Times
	ys := make([]float64, len(rt.Means))
	copy(ys, rt.Means)
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	valid := 0
	for _, v := range ys {
		if math.IsNaN(v) {
			continue
		}
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
		valid++
	}
	if valid == 0 {
		return drawNotice(blank(cw, chh), "Expected current is undefined for every sample.")
	}
	st := pointStyle(chart.ColorBlue)
	if valid == 1 {
		st.DotWidth = 6
	}
	series := []chart.Series{}
	if len(times) == 1 {
		t2 := times[0].Add(1 * time.Second)
		series = append(series, chart.TimeSeries{Name: "Expected", XValues: []time.Time{times[0], t2}, YValues: []float64{ys[0], ys[0]}, Style: st})
	} else {
		series = append(series, chart.TimeSeries{Name: "Expected", XValues: times, YValues: ys, Style: st})
	}
	if maxY <= minY {
		maxY = minY + 1
	}
	ch := chart.Chart{
		Title:      "Expected current (A)",
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 48}},
		XAxis:      chart.XAxis{Name: "Time"},
		YAxis:      chart.YAxis{Name: "A", Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.05}},
		Series:     series,
	}
	ch.Width = cw
	ch.Height = chh
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		fmt.Printf("[viewer] expected chart render error: %v; showing blank fallback\n", err)
		return blank(cw, chh)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		fmt.Printf("[viewer] expected chart decode error: %v; showing blank fallback\n", err)
		return blank(cw, chh)
	}
	return img
}

// newPreviewTable builds the first-10-rows ratio preview.
func newPreviewTable(state *uiState) *widget.Table {
	t := widget.NewTable(
		func() (int, int) {
			rt := state.ratios
			if rt.Empty() {
				return 1, 1
			}
			rows := len(rt.Times)
			if rows > 10 {
				rows = 10
			}
			return rows + 1, len(rt.Strings) + 1
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			rt := state.ratios
			if rt.Empty() {
				lbl.SetText("")
				return
			}
			if id.Row == 0 {
				if id.Col == 0 {
					lbl.SetText("Time")
				} else {
					lbl.SetText(rt.Strings[id.Col-1])
				}
				return
			}
			i := id.Row - 1
			if i >= len(rt.Times) {
				lbl.SetText("")
				return
			}
			if id.Col == 0 {
				lbl.SetText(heatmap.TimeLabel(rt.Times[i], rt.Labels[i]))
				return
			}
			lbl.SetText(uihelpers.FormatRatio(rt.At(i, id.Col-1)))
		},
	)
	t.SetColumnWidth(0, 140)
	return t
}

func sizePreviewColumns(state *uiState) {
	if state.ratios.Empty() || state.window == nil || state.window.Canvas() == nil {
		return
	}
	w := uihelpers.ComputePreviewColumnWidth(state.window.Canvas().Size().Width, len(state.ratios.Strings))
	for j := range state.ratios.Strings {
		state.previewTable.SetColumnWidth(j+1, float32(w))
	}
}

func setStatus(state *uiState, msg string) {
	if state.statusLabel == nil {
		return
	}
	state.statusLabel.SetText(msg)
	if msg != "" {
		fmt.Printf("[viewer] %s\n", msg)
	}
}

// drawNotice draws a short message onto the image near the bottom-left.
func drawNotice(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	stddraw.Draw(rgba, b, img, b.Min, stddraw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	stddraw.Draw(rgba, rect, bg, image.Point{}, stddraw.Over)
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

// export PNG
func exportImagePNG(state *uiState, img *canvas.Image, defaultName string) {
	if state == nil || state.window == nil || img == nil || img.Image == nil {
		dialog.ShowInformation("Export", "Nothing to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, img.Image)
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// recent files helpers
func recentFiles(state *uiState) []string {
	prefs := state.app.Preferences()
	raw := prefs.StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	prefs := state.app.Preferences()
	list := recentFiles(state)
	filtered := []string{path}
	for _, f := range list {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	prefs.SetString("recentFiles", strings.Join(filtered, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetString("lastTimestampColumn", state.tsColumn)
	prefs.SetString("startClock", state.startClock)
	prefs.SetString("endClock", state.endClock)
}

func loadPrefs(state *uiState, fileLabel *widget.Label, tabs *container.AppTabs) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	if f := prefs.StringWithFallback("lastFile", state.filePath); f != "" {
		state.filePath = f
		if fileLabel != nil {
			fileLabel.SetText(truncatePath(state.filePath, 60))
		}
	}
	state.tsColumn = prefs.StringWithFallback("lastTimestampColumn", state.tsColumn)
	state.startClock = prefs.StringWithFallback("startClock", state.startClock)
	state.endClock = prefs.StringWithFallback("endClock", state.endClock)
	if state.startTimeEntry != nil {
		state.startTimeEntry.SetText(state.startClock)
	}
	if state.endTimeEntry != nil {
		state.endTimeEntry.SetText(state.endClock)
	}
	if tabs != nil {
		idx := prefs.IntWithFallback("selectedTabIndex", 0)
		if idx >= 0 && idx < len(tabs.Items) {
			tabs.SelectIndex(idx)
		}
	}
}

// utils
func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
