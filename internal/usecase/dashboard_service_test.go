package usecase

import (
	"context"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/riskibarqy/season-insights/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(t *testing.T) (*DashboardService, *fakeRenderer) {
	t.Helper()

	renderer := &fakeRenderer{}
	return NewDashboardService(NewSelectionService(newTestTable(t)), renderer), renderer
}

func TestDashboardServicePlayerProfile(t *testing.T) {
	svc, _ := newTestDashboard(t)

	profile, err := svc.PlayerProfile(context.Background(), "Mohamed Salah")
	require.NoError(t, err)

	assert.Equal(t, "Liverpool", profile.Row.Squad)
	assert.Contains(t, profile.Summary.IdentityMarkdown, "- Squad: `Liverpool`\n")
	assert.Contains(t, profile.Summary.IdentityMarkdown, "- Minutes: `3371`\n")
	assert.Contains(t, profile.Summary.Per90Markdown, "- Goals/90: `0.77`\n")
	assert.Contains(t, profile.Summary.Per90Markdown, "- Assists/90: `0.48`\n")
	assert.Equal(t, season.FinishingMatches, profile.Commentary.Finishing)

	require.Len(t, profile.Bars.Bars, 4)
	assert.Equal(t, 0.77, profile.Bars.Bars[0].Value)
	assert.Equal(t, profile.Radar.Traces[0].Values[0], profile.Radar.Traces[0].Values[4])

	last := profile.Scatter.Points[len(profile.Scatter.Points)-1]
	assert.True(t, last.Highlight)
	assert.Equal(t, "Mohamed Salah", last.Label)
	assert.Equal(t, 0.73, profile.Scatter.Diagonal.X1)

	require.Len(t, profile.BoxPlot.Groups, 3)
	assert.Equal(t, "FW", profile.BoxPlot.Groups[0].Label)
}

func TestDashboardServicePlayerProfileUnknown(t *testing.T) {
	svc, _ := newTestDashboard(t)

	_, err := svc.PlayerProfile(context.Background(), "Nobody")
	assert.True(t, crerr.Is(err, season.ErrPlayerNotFound))
}

func TestDashboardServiceComparison(t *testing.T) {
	svc, _ := newTestDashboard(t)

	t.Run("selected", func(t *testing.T) {
		view, err := svc.Comparison(context.Background(), []string{"Virgil van Dijk", "Erling Haaland"})
		require.NoError(t, err)
		require.True(t, view.Selected)

		assert.Equal(t, []string{"Erling Haaland", "Virgil van Dijk"}, view.Comparison.Players)
		assert.Equal(t, chart.TitlePer90Comparison, view.Bars.Title)
		assert.Equal(t, chart.TitleVolumeComparison, view.MatchesGoals.Title)
		assert.Equal(t, []string{"MP", "Goals"}, view.MatchesGoals.Categories)
		assert.Len(t, view.Radar.Traces, 2)
		assert.Equal(t, []string{"Erling Haaland", "Virgil van Dijk"}, view.Heatmap.Rows)
		assert.Len(t, view.Scatter.Points, 2)
		assert.Equal(t, 0.73, view.Scatter.Diagonal.X1)
		assert.Equal(t, chart.CaptionRadar, view.RadarCaption)
		assert.Equal(t, chart.CaptionHeatmap, view.HeatmapCaption)
		assert.Equal(t, chart.CaptionScatter, view.ScatterCaption)
	})

	t.Run("nothing selected", func(t *testing.T) {
		view, err := svc.Comparison(context.Background(), []string{})
		require.NoError(t, err)
		assert.False(t, view.Selected)
	})
}

func TestDashboardServicePlayerChart(t *testing.T) {
	ctx := context.Background()

	t.Run("renders requested kind", func(t *testing.T) {
		svc, renderer := newTestDashboard(t)

		png, err := svc.PlayerChart(ctx, "Bukayo Saka", chart.KindRadar)
		require.NoError(t, err)
		assert.Equal(t, []byte("Radar"), png)
		assert.Equal(t, []string{"Radar"}, renderer.calls)
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc, renderer := newTestDashboard(t)

		_, err := svc.PlayerChart(ctx, "Bukayo Saka", chart.KindHeatmap)
		assert.True(t, crerr.Is(err, ErrNotFound))
		assert.Empty(t, renderer.calls)
	})

	t.Run("unknown player renders nothing", func(t *testing.T) {
		svc, renderer := newTestDashboard(t)

		_, err := svc.PlayerChart(ctx, "Nobody", chart.KindBar)
		assert.True(t, crerr.Is(err, season.ErrPlayerNotFound))
		assert.Empty(t, renderer.calls)
	})
}

func TestDashboardServicePositionBoxPlotPNG(t *testing.T) {
	svc, renderer := newTestDashboard(t)

	png, err := svc.PositionBoxPlotPNG(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("BoxPlot"), png)
	assert.Equal(t, []string{"BoxPlot"}, renderer.calls)

	box := svc.PositionBoxPlot(context.Background())
	assert.Len(t, box.Groups, 3)
}

func TestDashboardServiceComparisonChart(t *testing.T) {
	ctx := context.Background()
	names := []string{"Mohamed Salah", "Bukayo Saka"}

	t.Run("matches and goals", func(t *testing.T) {
		svc, renderer := newTestDashboard(t)

		png, ok, err := svc.ComparisonChart(ctx, names, chart.KindMatchesGoals)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("GroupedBars:"+chart.TitleVolumeComparison), png)
		assert.Len(t, renderer.calls, 1)
	})

	t.Run("heatmap", func(t *testing.T) {
		svc, renderer := newTestDashboard(t)

		_, ok, err := svc.ComparisonChart(ctx, names, chart.KindHeatmap)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"Heatmap"}, renderer.calls)
	})

	t.Run("empty selection skips rendering", func(t *testing.T) {
		svc, renderer := newTestDashboard(t)

		png, ok, err := svc.ComparisonChart(ctx, nil, chart.KindRadar)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, png)
		assert.Empty(t, renderer.calls)
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc, _ := newTestDashboard(t)

		_, _, err := svc.ComparisonChart(ctx, names, chart.KindBoxPlot)
		assert.True(t, crerr.Is(err, ErrNotFound))
	})

	t.Run("renderer failure", func(t *testing.T) {
		svc, renderer := newTestDashboard(t)
		renderer.err = crerr.New("canvas exploded")

		_, ok, err := svc.ComparisonChart(ctx, names, chart.KindScatter)
		require.Error(t, err)
		assert.False(t, ok)
		assert.Contains(t, err.Error(), "render scatter chart")
	})
}

func TestDashboardServiceChartCache(t *testing.T) {
	ctx := context.Background()
	renderer := &fakeRenderer{}
	charts := cache.NewStore[[]byte](16)
	svc := NewDashboardService(NewSelectionService(newTestTable(t)), renderer).WithChartCache(charts)

	for i := 0; i < 3; i++ {
		_, err := svc.PlayerChart(ctx, " Mohamed Salah ", chart.KindRadar)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"Radar"}, renderer.calls)

	_, ok, err := svc.ComparisonChart(ctx, []string{"Bukayo Saka", "Mohamed Salah"}, chart.KindRadar)
	require.NoError(t, err)
	require.True(t, ok)
	_, _, err = svc.ComparisonChart(ctx, []string{"Bukayo Saka", "Mohamed Salah"}, chart.KindRadar)
	require.NoError(t, err)
	assert.Equal(t, []string{"Radar", "Radar"}, renderer.calls)

	// pick order changes trace colors, so it is a different chart
	_, _, err = svc.ComparisonChart(ctx, []string{"Mohamed Salah", "Bukayo Saka"}, chart.KindRadar)
	require.NoError(t, err)
	assert.Equal(t, []string{"Radar", "Radar", "Radar"}, renderer.calls)

	_, err = svc.PositionBoxPlotPNG(ctx)
	require.NoError(t, err)
	_, err = svc.PositionBoxPlotPNG(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, charts.Len())
	assert.Len(t, renderer.calls, 4)
}

func TestDashboardServiceChartCacheSkipsFailures(t *testing.T) {
	ctx := context.Background()
	renderer := &fakeRenderer{err: crerr.New("canvas exploded")}
	charts := cache.NewStore[[]byte](16)
	svc := NewDashboardService(NewSelectionService(newTestTable(t)), renderer).WithChartCache(charts)

	_, err := svc.PlayerChart(ctx, "Bukayo Saka", chart.KindBar)
	require.Error(t, err)
	assert.Equal(t, 0, charts.Len())

	renderer.err = nil
	png, err := svc.PlayerChart(ctx, "Bukayo Saka", chart.KindBar)
	require.NoError(t, err)
	assert.Equal(t, []byte("Bar"), png)
}
