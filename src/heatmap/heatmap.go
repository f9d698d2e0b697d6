// Package heatmap renders a ratio table as a 2-D color-mapped image with a
// colorbar, strings as rows and time samples as columns.
package heatmap

import (
	"image"
	stddraw "image/draw"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ruchitsaxena275/scb-analyzer/src/pipeline"
	"github.com/ruchitsaxena275/scb-analyzer/src/scblog"
)

// colorbarHeight is the vertical space reserved under the heatmap for the
// "String / Expected" colorbar.
const colorbarHeight = 72

// ratioGrid adapts a RatioTable to the plotter grid: X is the sample index,
// Y walks the selected strings so the first selection reads at the top.
type ratioGrid struct {
	rt *pipeline.RatioTable
}

func (g ratioGrid) Dims() (c, r int)   { return len(g.rt.Times), len(g.rt.Strings) }
func (g ratioGrid) X(c int) float64    { return float64(c) }
func (g ratioGrid) Y(r int) float64    { return float64(r) }
func (g ratioGrid) Z(c, r int) float64 { return g.rt.At(c, len(g.rt.Strings)-1-r) }

// Render draws the ratio table as a heatmap image of roughly width x height
// pixels. An empty table renders nothing: the caller gets nil after a
// warning, not an error. NaN (undefined) cells are left blank.
func Render(rt *pipeline.RatioTable, width, height int) image.Image {
	if rt.Empty() {
		scblog.Warnf("ratio table is empty; nothing to render")
		return nil
	}

	minZ, maxZ := finiteRange(rt)
	cm := moreland.SmoothBlueRed()
	cm.SetMin(minZ)
	cm.SetMax(maxZ)

	grid := ratioGrid{rt: rt}
	hm := plotter.NewHeatMap(grid, cm.Palette(255))
	hm.Min = minZ
	hm.Max = maxZ

	p := plot.New()
	p.Title.Text = "String current vs expected"
	p.X.Tick.Marker = plot.ConstantTicks(timeTicks(rt))
	p.Y.Tick.Marker = plot.ConstantTicks(stringTicks(rt))
	p.Add(hm)

	barH := colorbarHeight
	if height-barH < barH {
		barH = height / 4
	}
	main := renderCanvas(p, width, height-barH)

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm})
	bar.HideY()
	bar.X.Padding = 0
	bar.X.Label.Text = "String / Expected"
	barImg := renderCanvas(bar, width, barH)

	out := image.NewRGBA(image.Rect(0, 0, main.Bounds().Dx(), main.Bounds().Dy()+barImg.Bounds().Dy()))
	stddraw.Draw(out, main.Bounds(), main, image.Point{}, stddraw.Src)
	stddraw.Draw(out, barImg.Bounds().Add(image.Pt(0, main.Bounds().Dy())), barImg, image.Point{}, stddraw.Src)
	return out
}

func renderCanvas(p *plot.Plot, w, h int) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Points(float64(w)), vg.Points(float64(h))),
		vgimg.UseDPI(72),
	)
	p.Draw(draw.New(c))
	return c.Image()
}

// timeTicks subsamples the time axis: every sample when there are at most
// MaxTimeLabels, otherwise every floor(n/MaxTimeLabels)-th sample.
func timeTicks(rt *pipeline.RatioTable) []plot.Tick {
	idx := SampleIndices(len(rt.Times))
	ticks := make([]plot.Tick, 0, len(idx))
	for _, i := range idx {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: TimeLabel(rt.Times[i], rt.Labels[i]),
		})
	}
	return ticks
}

// stringTicks labels one row per selected column, selection order top-down.
func stringTicks(rt *pipeline.RatioTable) []plot.Tick {
	n := len(rt.Strings)
	ticks := make([]plot.Tick, 0, n)
	for r := 0; r < n; r++ {
		ticks = append(ticks, plot.Tick{Value: float64(r), Label: rt.Strings[n-1-r]})
	}
	return ticks
}

// finiteRange scans for the finite min/max ratios, widening degenerate
// spans so the colormap stays valid when every ratio is identical or NaN.
func finiteRange(rt *pipeline.RatioTable) (float64, float64) {
	minZ := math.Inf(1)
	maxZ := math.Inf(-1)
	rows, cols := len(rt.Times), len(rt.Strings)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := rt.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < minZ {
				minZ = v
			}
			if v > maxZ {
				maxZ = v
			}
		}
	}
	if minZ > maxZ { // all undefined
		return 0, 2
	}
	if maxZ-minZ < 1e-9 {
		minZ -= 0.5
		maxZ += 0.5
	}
	return minZ, maxZ
}
