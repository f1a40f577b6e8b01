package render

import (
	"context"
	"math"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Bar draws one bar per entry, each in its own color, in the given order.
func (r *Renderer) Bar(ctx context.Context, c chart.BarChart) ([]byte, error) {
	_, span := tracer.Start(ctx, "render.Renderer.Bar")
	defer span.End()

	p := newPlot(c.Title)
	p.Y.Label.Text = c.YLabel
	p.Y.Min = 0

	labels := make([]string, 0, len(c.Bars))
	for i, b := range c.Bars {
		bars, err := plotter.NewBarChart(plotter.Values{b.Value}, vg.Points(40))
		if err != nil {
			return nil, crerr.Wrapf(err, "bar %q", b.Label)
		}
		bars.XMin = float64(i)
		bars.Color = rgba(b.Color)
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
		labels = append(labels, b.Label)
	}
	p.NominalX(labels...)

	return r.encode(p)
}

// GroupedBars draws one group per category with one bar per series inside
// it, side by side.
func (r *Renderer) GroupedBars(ctx context.Context, c chart.GroupedBarChart) ([]byte, error) {
	_, span := tracer.Start(ctx, "render.Renderer.GroupedBars")
	defer span.End()

	p := newPlot(c.Title)
	p.Y.Label.Text = c.YLabel
	p.Y.Min = 0
	p.Legend.Top = true

	n := len(c.Series)
	width := vg.Points(math.Max(4, 60/math.Max(1, float64(n))))
	for i, s := range c.Series {
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), width)
		if err != nil {
			return nil, crerr.Wrapf(err, "series %q", s.Name)
		}
		bars.Color = rgba(s.Color)
		bars.LineStyle.Width = vg.Length(0)
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * width
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}
	p.NominalX(c.Categories...)

	return r.encode(p)
}
