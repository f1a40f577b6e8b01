package render

import (
	"bytes"
	"context"
	"image/color"
	"testing"

	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func sampleRows() []season.PlayerRow {
	return []season.PlayerRow{
		{Player: "Mohamed Salah", Position: "FW", MP: 38, Goals: 29, Per90Gls: 0.77, Per90XG: 0.68, Per90Ast: 0.48, Per90XAG: 0.36},
		{Player: "Bryan Mbeumo", Position: "FW,MF", MP: 38, Goals: 20, Per90Gls: 0.53, Per90XG: 0.39, Per90Ast: 0.19, Per90XAG: 0.2},
		{Player: "Chris Wood", Position: "FW", MP: 36, Goals: 20, Per90Gls: 0.63, Per90XG: 0.53, Per90Ast: 0.09, Per90XAG: 0.05},
	}
}

func sampleComparison() season.Comparison {
	rows := sampleRows()
	return season.Comparison{
		Players:   []string{rows[0].Player, rows[1].Player, rows[2].Player},
		Rows:      rows,
		Primary:   season.NewComparisonTable(rows, season.Per90Metrics()),
		Secondary: season.NewComparisonTable(rows, season.VolumeMetrics()),
	}
}

func assertPNG(t *testing.T, out []byte, err error) {
	t.Helper()

	require.NoError(t, err)
	require.Greater(t, len(out), len(pngMagic))
	assert.True(t, bytes.HasPrefix(out, pngMagic), "output is not a png")
}

func TestRenderer_AllKinds(t *testing.T) {
	ctx := context.Background()
	r := NewRenderer(4, 3)
	rows := sampleRows()
	cmp := sampleComparison()

	t.Run("bar", func(t *testing.T) {
		out, err := r.Bar(ctx, chart.PlayerBars(rows[0]))
		assertPNG(t, out, err)
	})
	t.Run("grouped bars", func(t *testing.T) {
		out, err := r.GroupedBars(ctx, chart.ComparisonBars(cmp.Primary, chart.TitlePer90Comparison))
		assertPNG(t, out, err)
	})
	t.Run("radar", func(t *testing.T) {
		out, err := r.Radar(ctx, chart.ComparisonRadar(cmp))
		assertPNG(t, out, err)
	})
	t.Run("scatter", func(t *testing.T) {
		out, err := r.Scatter(ctx, chart.DatasetScatter(rows, 0))
		assertPNG(t, out, err)
	})
	t.Run("boxplot", func(t *testing.T) {
		out, err := r.BoxPlot(ctx, chart.PositionBoxPlot(rows))
		assertPNG(t, out, err)
	})
	t.Run("heatmap", func(t *testing.T) {
		out, err := r.Heatmap(ctx, chart.ComparisonHeatmap(cmp))
		assertPNG(t, out, err)
	})
}

func TestRenderer_DegenerateInputs(t *testing.T) {
	ctx := context.Background()
	r := NewRenderer(0, 0)
	zero := season.PlayerRow{Player: "Keeper", Position: "GK"}

	out, err := r.Radar(ctx, chart.PlayerRadar(zero))
	assertPNG(t, out, err)

	cmp := season.Comparison{
		Players: []string{"Keeper"},
		Rows:    []season.PlayerRow{zero},
		Primary: season.NewComparisonTable([]season.PlayerRow{zero}, season.Per90Metrics()),
	}
	out, err = r.Heatmap(ctx, chart.ComparisonHeatmap(cmp))
	assertPNG(t, out, err)
}

func TestRenderer_RejectsMalformedCharts(t *testing.T) {
	ctx := context.Background()
	r := NewRenderer(4, 3)

	_, err := r.Radar(ctx, chart.RadarChart{Axes: []string{"a", "b", "a"}})
	assert.Error(t, err)

	_, err = r.Heatmap(ctx, chart.Heatmap{})
	assert.Error(t, err)

	_, err = r.Heatmap(ctx, chart.Heatmap{Rows: []string{"A"}, Columns: []string{"x", "y"}, Values: [][]float64{{1}}})
	assert.Error(t, err)
}

func TestNewRenderer_Defaults(t *testing.T) {
	def := NewRenderer(0, -1)
	explicit := NewRenderer(DefaultWidthInch, DefaultHeightInch)

	assert.Equal(t, explicit, def)
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}, rgba("#1f77b4"))
	assert.Equal(t, color.RGBA{A: 255}, rgba("nope"))
	assert.Equal(t, color.RGBA{A: 255}, rgba("#zzzzzz"))
}

func TestPolarFirstAxisPointsUp(t *testing.T) {
	x, y := polar(0, 4, 1)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)

	x, y = polar(1, 4, 1)
	assert.InDelta(t, 1, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}
