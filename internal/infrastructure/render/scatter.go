package render

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Scatter draws the points, the dashed y = x reference and, for flagged
// points, an enlarged marker with a dark edge.
func (r *Renderer) Scatter(ctx context.Context, c chart.ScatterChart) ([]byte, error) {
	_, span := tracer.Start(ctx, "render.Renderer.Scatter")
	defer span.End()

	p := newPlot(c.Title)
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.X.Min = 0
	p.Y.Min = 0
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	diagonal, err := plotter.NewLine(plotter.XYs{
		{X: c.Diagonal.X0, Y: c.Diagonal.Y0},
		{X: c.Diagonal.X1, Y: c.Diagonal.Y1},
	})
	if err != nil {
		return nil, crerr.Wrap(err, "reference line")
	}
	diagonal.LineStyle.Color = rgba(c.Diagonal.Color)
	diagonal.LineStyle.Width = vg.Points(1.5)
	diagonal.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(diagonal)

	// one legend entry per label; the table-wide scatter repeats nothing
	// but the highlighted player
	legend := len(c.Points) <= chart.PaletteSize()*2
	for _, pt := range c.Points {
		if pt.Highlight {
			edge, err := plotter.NewScatter(plotter.XYs{{X: pt.X, Y: pt.Y}})
			if err != nil {
				return nil, crerr.Wrapf(err, "point %q", pt.Label)
			}
			edge.GlyphStyle.Shape = draw.CircleGlyph{}
			edge.GlyphStyle.Color = rgba(chart.ColorEdge)
			edge.GlyphStyle.Radius = vg.Points(7)
			p.Add(edge)
		}

		dot, err := plotter.NewScatter(plotter.XYs{{X: pt.X, Y: pt.Y}})
		if err != nil {
			return nil, crerr.Wrapf(err, "point %q", pt.Label)
		}
		dot.GlyphStyle.Shape = draw.CircleGlyph{}
		dot.GlyphStyle.Color = rgba(pt.Color)
		dot.GlyphStyle.Radius = vg.Points(3)
		if pt.Highlight {
			dot.GlyphStyle.Radius = vg.Points(6)
		}
		p.Add(dot)
		if legend || pt.Highlight {
			p.Legend.Add(pt.Label, dot)
		}
	}

	return r.encode(p)
}
