package render

import (
	"context"
	"fmt"
	"image/color"
	"strconv"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// matrixGrid adapts a rows x columns matrix to plotter.GridXYZ with columns
// on X and rows on Y.
type matrixGrid struct {
	values [][]float64
	cols   int
}

func (g matrixGrid) Dims() (c, r int)   { return g.cols, len(g.values) }
func (g matrixGrid) Z(c, r int) float64 { return g.values[r][c] }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

type scalePalette []color.Color

func (p scalePalette) Colors() []color.Color { return p }

func heatPalette() scalePalette {
	scale := chart.HeatScale()
	out := make(scalePalette, 0, len(scale))
	for _, c := range scale {
		out = append(out, rgba(c))
	}
	return out
}

// Heatmap draws the matrix with the sequential scale and writes the
// formatted annotation at every cell center.
func (r *Renderer) Heatmap(ctx context.Context, c chart.Heatmap) ([]byte, error) {
	_, span := tracer.Start(ctx, "render.Renderer.Heatmap")
	defer span.End()

	if len(c.Rows) == 0 || len(c.Columns) == 0 {
		return nil, crerr.New("heatmap needs at least one row and one column")
	}
	for i, row := range c.Values {
		if len(row) != len(c.Columns) {
			return nil, crerr.Newf("heatmap row %d has %d cells, expected %d", i, len(row), len(c.Columns))
		}
	}

	p := newPlot(c.Title)
	grid := matrixGrid{values: c.Values, cols: len(c.Columns)}
	heat := plotter.NewHeatMap(grid, heatPalette())
	heat.Min, heat.Max = c.Min, c.Max
	if heat.Max <= heat.Min {
		heat.Max = heat.Min + 1
	}
	p.Add(heat)

	xys := make(plotter.XYs, 0, len(c.Rows)*len(c.Columns))
	texts := make([]string, 0, cap(xys))
	for ri, row := range c.Values {
		for ci, v := range row {
			xys = append(xys, plotter.XY{X: float64(ci), Y: float64(ri)})
			text := fmt.Sprintf("%.2f", v)
			if ri < len(c.Annotations) && ci < len(c.Annotations[ri]) {
				text = c.Annotations[ri][ci]
			}
			texts = append(texts, text)
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, crerr.Wrap(err, "heatmap annotations")
	}
	p.Add(labels)

	p.X.Tick.Marker = indexTicks(c.Columns)
	p.Y.Tick.Marker = indexTicks(c.Rows)
	p.X.Min, p.X.Max = -0.5, float64(len(c.Columns))-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(len(c.Rows))-0.5

	return r.encode(p)
}

func indexTicks(names []string) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, 0, len(names))
	for i, name := range names {
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: name})
	}
	return ticks
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
