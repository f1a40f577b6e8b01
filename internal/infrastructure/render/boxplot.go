package render

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func (r *Renderer) BoxPlot(ctx context.Context, c chart.BoxPlot) ([]byte, error) {
	_, span := tracer.Start(ctx, "render.Renderer.BoxPlot")
	defer span.End()

	p := newPlot(c.Title)
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel

	labels := make([]string, 0, len(c.Groups))
	for i, g := range c.Groups {
		if len(g.Values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, crerr.Wrapf(err, "position %q", g.Label)
		}
		box.FillColor = withAlpha(rgba(chart.PaletteColor(i)), 160)
		p.Add(box)
		labels = append(labels, g.Label)
	}
	p.NominalX(labels...)

	return r.encode(p)
}
