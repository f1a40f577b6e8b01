package render

import (
	"context"
	"math"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var radarRings = []float64{0.25, 0.5, 0.75, 1}

// Radar draws closed traces on polar axes emulated with hidden cartesian
// axes: rings and spokes are plain lines, traces are filled polygons.
func (r *Renderer) Radar(ctx context.Context, c chart.RadarChart) ([]byte, error) {
	_, span := tracer.Start(ctx, "render.Renderer.Radar")
	defer span.End()

	p := newPlot(c.Title)
	p.HideAxes()
	p.Legend.Top = true

	// axes are closed, so the last entry repeats the first
	n := len(c.Axes) - 1
	if n < 3 {
		return nil, crerr.Newf("radar needs at least 3 axes, got %d", n)
	}
	radialMax := c.RadialMax
	if radialMax <= 0 {
		radialMax = 1
	}

	if err := addRadarGrid(p, c.Axes[:n], radialMax); err != nil {
		return nil, err
	}

	for _, tr := range c.Traces {
		xys := make(plotter.XYs, 0, len(tr.Values))
		for i, v := range tr.Values {
			x, y := polar(i%n, n, v/radialMax)
			xys = append(xys, plotter.XY{X: x, Y: y})
		}
		poly, err := plotter.NewPolygon(xys)
		if err != nil {
			return nil, crerr.Wrapf(err, "trace %q", tr.Name)
		}
		base := rgba(tr.Color)
		poly.Color = withAlpha(base, 70)
		poly.LineStyle.Color = base
		poly.LineStyle.Width = vg.Points(1.5)
		p.Add(poly)
		if c.ShowLegend {
			p.Legend.Add(tr.Name, poly)
		}
	}

	p.X.Min, p.X.Max = -1.35, 1.35
	p.Y.Min, p.Y.Max = -1.2, 1.2
	return r.encode(p)
}

func addRadarGrid(p *plot.Plot, axes []string, radialMax float64) error {
	n := len(axes)
	grey := rgba("#c8c8c8")

	for _, ring := range radarRings {
		xys := make(plotter.XYs, 0, n+1)
		for i := 0; i <= n; i++ {
			x, y := polar(i%n, n, ring)
			xys = append(xys, plotter.XY{X: x, Y: y})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return crerr.Wrap(err, "radar ring")
		}
		line.LineStyle.Color = grey
		p.Add(line)
	}

	spokeLabels := make([]string, 0, n)
	spokeEnds := make(plotter.XYs, 0, n)
	for i, axis := range axes {
		x, y := polar(i, n, 1)
		spoke, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: x, Y: y}})
		if err != nil {
			return crerr.Wrap(err, "radar spoke")
		}
		spoke.LineStyle.Color = grey
		p.Add(spoke)

		lx, ly := polar(i, n, 1.12)
		spokeEnds = append(spokeEnds, plotter.XY{X: lx, Y: ly})
		spokeLabels = append(spokeLabels, axis)
	}

	// radial scale along the first spoke
	scaleLabels := make([]string, 0, len(radarRings))
	scaleAt := make(plotter.XYs, 0, len(radarRings))
	for _, ring := range radarRings {
		x, y := polar(0, n, ring)
		scaleAt = append(scaleAt, plotter.XY{X: x + 0.02, Y: y})
		scaleLabels = append(scaleLabels, formatTick(ring*radialMax))
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    append(spokeEnds, scaleAt...),
		Labels: append(spokeLabels, scaleLabels...),
	})
	if err != nil {
		return crerr.Wrap(err, "radar labels")
	}
	p.Add(labels)
	return nil
}

// polar maps axis i of n at radius r onto the unit plane, first axis
// pointing up and the rest clockwise.
func polar(i, n int, r float64) (float64, float64) {
	theta := math.Pi/2 - 2*math.Pi*float64(i)/float64(n)
	return r * math.Cos(theta), r * math.Sin(theta)
}
