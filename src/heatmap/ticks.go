package heatmap

import "time"

// MaxTimeLabels is the most time-axis labels drawn before subsampling.
const MaxTimeLabels = 12

// SampleStride returns the index stride for time-axis labels: 1 while the
// sample count fits MaxTimeLabels, otherwise floor(n/MaxTimeLabels).
func SampleStride(n int) int {
	if n <= MaxTimeLabels {
		return 1
	}
	return n / MaxTimeLabels
}

// SampleIndices returns the label positions 0, stride, 2*stride, ... below n.
func SampleIndices(n int) []int {
	if n <= 0 {
		return nil
	}
	stride := SampleStride(n)
	out := make([]int, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		out = append(out, i)
	}
	return out
}

// timeLabelLayout renders day-month hour:minute.
const timeLabelLayout = "02-01 15:04"

// TimeLabel formats a tick label for one sample, falling back to the raw
// cell text when there is no usable parsed time.
func TimeLabel(t time.Time, raw string) string {
	if t.IsZero() {
		return raw
	}
	return t.Format(timeLabelLayout)
}
