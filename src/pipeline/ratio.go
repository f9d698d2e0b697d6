package pipeline

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

// RatioTable holds each selected string's current divided by the row-wise
// expected (mean) current. A reading of exactly zero means the string is
// treated as offline: it contributes to neither the mean nor the ratio, and
// shows up as NaN. Rows whose mean is undefined carry NaN throughout.
type RatioTable struct {
	Strings []string
	Times   []time.Time
	Labels  []string
	Ratios  *mat.Dense // Len(Times) x len(Strings); NaN = undefined
	Means   []float64  // expected current per row; NaN = undefined
}

// Empty reports whether there is nothing to render.
func (rt *RatioTable) Empty() bool {
	return rt == nil || len(rt.Times) == 0 || len(rt.Strings) == 0
}

// At returns the ratio for sample row i and string j.
func (rt *RatioTable) At(i, j int) float64 { return rt.Ratios.At(i, j) }

// ComputeRatios derives the ratio table for the selected columns. It is
// defined for all well-formed inputs including an empty window, which yields
// an empty table. Ratios for rows with no usable readings are NaN, never a
// division fault.
func ComputeRatios(ft FilteredTable, selected []string) (*RatioTable, error) {
	rt := &RatioTable{
		Strings: append([]string(nil), selected...),
		Times:   ft.Times,
		Labels:  ft.Labels,
	}
	n := ft.Len()
	if n == 0 || len(selected) == 0 {
		return rt, nil
	}

	cols := make([][]float64, len(selected))
	for j, name := range selected {
		s := ft.Data.Col(name)
		if s.Err != nil {
			return nil, fmt.Errorf("string column %q: %w", name, s.Err)
		}
		cols[j] = s.Float()
	}

	rt.Ratios = mat.NewDense(n, len(selected), nil)
	rt.Means = make([]float64, n)
	for i, row := range ft.Rows {
		sum := 0.0
		count := 0
		for j := range selected {
			v := cols[j][row]
			if v == 0 || math.IsNaN(v) {
				continue
			}
			sum += v
			count++
		}
		mean := math.NaN()
		if count > 0 {
			mean = sum / float64(count)
		}
		rt.Means[i] = mean
		for j := range selected {
			v := cols[j][row]
			if v == 0 || math.IsNaN(v) || math.IsNaN(mean) {
				rt.Ratios.Set(i, j, math.NaN())
				continue
			}
			rt.Ratios.Set(i, j, v/mean)
		}
	}
	return rt, nil
}
