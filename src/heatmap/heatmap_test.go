package heatmap

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/ruchitsaxena275/scb-analyzer/src/pipeline"
)

func sampleTable(t *testing.T, rows int) *pipeline.RatioTable {
	t.Helper()
	strings := []string{"s1", "s2", "s3"}
	rt := &pipeline.RatioTable{
		Strings: strings,
		Ratios:  mat.NewDense(rows, len(strings), nil),
		Means:   make([]float64, rows),
	}
	base := time.Date(2024, time.March, 5, 7, 0, 0, 0, time.Local)
	for i := 0; i < rows; i++ {
		ts := base.Add(time.Duration(i) * 5 * time.Minute)
		rt.Times = append(rt.Times, ts)
		rt.Labels = append(rt.Labels, ts.Format("02-01-2006 15:04:05"))
		rt.Means[i] = 8
		rt.Ratios.Set(i, 0, 1.05)
		rt.Ratios.Set(i, 1, 0.95)
		rt.Ratios.Set(i, 2, math.NaN())
	}
	return rt
}

func TestRenderEmpty(t *testing.T) {
	if img := Render(&pipeline.RatioTable{}, 800, 400); img != nil {
		t.Fatalf("empty table must render nil")
	}
	if img := Render(nil, 800, 400); img != nil {
		t.Fatalf("nil table must render nil")
	}
}

func TestRenderProducesImage(t *testing.T) {
	rt := sampleTable(t, 40)
	img := Render(rt, 800, 400)
	if img == nil {
		t.Fatalf("expected an image")
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		t.Fatalf("degenerate image bounds %v", b)
	}
}

func TestRenderAllUndefined(t *testing.T) {
	rt := sampleTable(t, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			rt.Ratios.Set(i, j, math.NaN())
		}
	}
	if img := Render(rt, 800, 400); img == nil {
		t.Fatalf("all-undefined table must still render a frame")
	}
}

func TestFiniteRange(t *testing.T) {
	rt := sampleTable(t, 4)
	lo, hi := finiteRange(rt)
	if lo != 0.95 || hi != 1.05 {
		t.Fatalf("range [%v,%v] want [0.95,1.05]", lo, hi)
	}

	// identical ratios widen the span instead of collapsing the colormap
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			rt.Ratios.Set(i, j, 1)
		}
	}
	lo, hi = finiteRange(rt)
	if hi-lo < 0.5 {
		t.Fatalf("degenerate span not widened: [%v,%v]", lo, hi)
	}

	// all undefined falls back to the nominal ratio band
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			rt.Ratios.Set(i, j, math.NaN())
		}
	}
	lo, hi = finiteRange(rt)
	if lo != 0 || hi != 2 {
		t.Fatalf("fallback range [%v,%v] want [0,2]", lo, hi)
	}
}

func TestTimeTicksSubsample(t *testing.T) {
	rt := sampleTable(t, 100)
	ticks := timeTicks(rt)
	if len(ticks) != 13 {
		t.Fatalf("ticks=%d want 13", len(ticks))
	}
	if ticks[0].Value != 0 || ticks[len(ticks)-1].Value != 96 {
		t.Fatalf("tick positions %v..%v want 0..96", ticks[0].Value, ticks[len(ticks)-1].Value)
	}
}
