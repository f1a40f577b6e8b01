package usecase

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/domain/chart"
	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/riskibarqy/season-insights/internal/platform/cache"
)

// ChartRenderer rasterizes chart artifacts.
type ChartRenderer interface {
	Bar(ctx context.Context, c chart.BarChart) ([]byte, error)
	GroupedBars(ctx context.Context, c chart.GroupedBarChart) ([]byte, error)
	Radar(ctx context.Context, c chart.RadarChart) ([]byte, error)
	Scatter(ctx context.Context, c chart.ScatterChart) ([]byte, error)
	BoxPlot(ctx context.Context, c chart.BoxPlot) ([]byte, error)
	Heatmap(ctx context.Context, c chart.Heatmap) ([]byte, error)
}

// PlayerProfile is the single-player view.
type PlayerProfile struct {
	Row        season.PlayerRow
	Summary    Summary
	Commentary season.Commentary
	Bars       chart.BarChart
	Radar      chart.RadarChart
	Scatter    chart.ScatterChart
	BoxPlot    chart.BoxPlot
}

// ComparisonView is the multi-player view. Selected is false when no player
// was requested; every other field is then zero.
type ComparisonView struct {
	Selected       bool
	Comparison     season.Comparison
	Bars           chart.GroupedBarChart
	Radar          chart.RadarChart
	RadarCaption   string
	Heatmap        chart.Heatmap
	HeatmapCaption string
	Scatter        chart.ScatterChart
	ScatterCaption string
	MatchesGoals   chart.GroupedBarChart
}

type DashboardService struct {
	selection *SelectionService
	renderer  ChartRenderer
	charts    *cache.Store[[]byte]
}

func NewDashboardService(selection *SelectionService, renderer ChartRenderer) *DashboardService {
	return &DashboardService{
		selection: selection,
		renderer:  renderer,
	}
}

func (s *DashboardService) PlayerProfile(ctx context.Context, name string) (PlayerProfile, error) {
	ctx, span := tracer.Start(ctx, "usecase.DashboardService.PlayerProfile")
	defer span.End()

	row, err := s.selection.ResolveSingle(ctx, name)
	if err != nil {
		return PlayerProfile{}, err
	}

	table := s.selection.Table()
	return PlayerProfile{
		Row:        row,
		Summary:    buildSummary(row),
		Commentary: s.selection.Comment(row),
		Bars:       chart.PlayerBars(row),
		Radar:      chart.PlayerRadar(row),
		Scatter:    datasetScatter(table, row.Player),
		BoxPlot:    chart.PositionBoxPlot(table.Rows()),
	}, nil
}

func (s *DashboardService) PositionBoxPlot(ctx context.Context) chart.BoxPlot {
	_, span := tracer.Start(ctx, "usecase.DashboardService.PositionBoxPlot")
	defer span.End()

	return chart.PositionBoxPlot(s.selection.Table().Rows())
}

func (s *DashboardService) Comparison(ctx context.Context, names []string) (ComparisonView, error) {
	ctx, span := tracer.Start(ctx, "usecase.DashboardService.Comparison")
	defer span.End()

	cmp, ok, err := s.selection.ResolveMany(ctx, names)
	if err != nil || !ok {
		return ComparisonView{}, err
	}

	return ComparisonView{
		Selected:       true,
		Comparison:     cmp,
		Bars:           chart.ComparisonBars(cmp.Primary, chart.TitlePer90Comparison),
		Radar:          chart.ComparisonRadar(cmp),
		RadarCaption:   chart.CaptionRadar,
		Heatmap:        chart.ComparisonHeatmap(cmp),
		HeatmapCaption: chart.CaptionHeatmap,
		Scatter:        chart.ComparisonScatter(cmp, s.selection.Table().MaxPer90XG()),
		ScatterCaption: chart.CaptionScatter,
		MatchesGoals:   chart.ComparisonBars(cmp.Secondary, chart.TitleVolumeComparison),
	}, nil
}

// WithChartCache memoizes rendered PNGs. The table never changes, so a
// chart is fully determined by its kind and the resolved players. Cached
// slices are shared and must not be modified.
func (s *DashboardService) WithChartCache(charts *cache.Store[[]byte]) *DashboardService {
	s.charts = charts
	return s
}

func (s *DashboardService) cachedPNG(ctx context.Context, key string, render func(context.Context) ([]byte, error)) ([]byte, error) {
	return s.charts.GetOrLoad(ctx, key, render)
}

// PlayerChart renders one single-player chart to PNG.
func (s *DashboardService) PlayerChart(ctx context.Context, name string, kind chart.Kind) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "usecase.DashboardService.PlayerChart")
	defer span.End()

	switch kind {
	case chart.KindBar, chart.KindRadar, chart.KindScatter:
	default:
		return nil, crerr.Wrapf(ErrNotFound, "player chart kind %q", kind)
	}

	row, err := s.selection.ResolveSingle(ctx, name)
	if err != nil {
		return nil, err
	}

	return s.cachedPNG(ctx, "player:"+string(kind)+":"+row.Player, func(ctx context.Context) ([]byte, error) {
		switch kind {
		case chart.KindBar:
			return s.renderer.Bar(ctx, chart.PlayerBars(row))
		case chart.KindRadar:
			return s.renderer.Radar(ctx, chart.PlayerRadar(row))
		default:
			return s.renderer.Scatter(ctx, datasetScatter(s.selection.Table(), row.Player))
		}
	})
}

func (s *DashboardService) PositionBoxPlotPNG(ctx context.Context) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "usecase.DashboardService.PositionBoxPlotPNG")
	defer span.End()

	return s.cachedPNG(ctx, "positions:boxplot", func(ctx context.Context) ([]byte, error) {
		return s.renderer.BoxPlot(ctx, chart.PositionBoxPlot(s.selection.Table().Rows()))
	})
}

// ComparisonChart renders one comparison chart to PNG. The boolean is false
// when names is empty and nothing was rendered.
func (s *DashboardService) ComparisonChart(ctx context.Context, names []string, kind chart.Kind) ([]byte, bool, error) {
	ctx, span := tracer.Start(ctx, "usecase.DashboardService.ComparisonChart")
	defer span.End()

	switch kind {
	case chart.KindGroupedBars, chart.KindRadar, chart.KindHeatmap, chart.KindScatter, chart.KindMatchesGoals:
	default:
		return nil, false, crerr.Wrapf(ErrNotFound, "comparison chart kind %q", kind)
	}

	view, err := s.Comparison(ctx, names)
	if err != nil || !view.Selected {
		return nil, false, err
	}

	key := "comparison:" + string(kind) + ":" + strings.Join(view.Comparison.Selection, "\x1f")
	png, err := s.cachedPNG(ctx, key, func(ctx context.Context) ([]byte, error) {
		switch kind {
		case chart.KindGroupedBars:
			return s.renderer.GroupedBars(ctx, view.Bars)
		case chart.KindRadar:
			return s.renderer.Radar(ctx, view.Radar)
		case chart.KindHeatmap:
			return s.renderer.Heatmap(ctx, view.Heatmap)
		case chart.KindScatter:
			return s.renderer.Scatter(ctx, view.Scatter)
		default:
			return s.renderer.GroupedBars(ctx, view.MatchesGoals)
		}
	})
	if err != nil {
		return nil, false, crerr.Wrapf(err, "render %s chart", kind)
	}
	return png, true, nil
}

func datasetScatter(table *season.Table, player string) chart.ScatterChart {
	selected, ok := table.IndexOf(player)
	if !ok {
		selected = -1
	}
	return chart.DatasetScatter(table.Rows(), selected)
}
