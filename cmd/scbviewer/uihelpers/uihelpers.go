package uihelpers

import (
	"math"
	"strconv"
)

// ComputeChartDimensions applies width/height clamp rules used for the
// rendered heatmap and expected-current images.
// Input: desired raw width (e.g., canvas width). Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.33)
	if h < 280 {
		h = 280
	}
	if h > 520 {
		h = 520
	}
	return w, h
}

// FormatRatio provides the compact cell label for the ratio preview table.
// Undefined ratios render as "-"; everything else keeps three decimals with
// shorter forms for large magnitudes.
func FormatRatio(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
}

// ComputePreviewColumnWidth returns the pixel width for a ratio preview
// column given the window width and the number of string columns shown.
// The time column keeps a fixed 140px; data columns share what remains but
// never drop below 56px.
func ComputePreviewColumnWidth(winW float32, ncols int) int {
	if ncols <= 0 {
		return 56
	}
	avail := int(winW) - 140 - 260
	w := avail / ncols
	if w < 56 {
		w = 56
	}
	if w > 120 {
		w = 120
	}
	return w
}
