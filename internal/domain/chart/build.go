package chart

import (
	"fmt"
	"math"
	"sort"

	"github.com/riskibarqy/season-insights/internal/domain/season"
	"gonum.org/v1/gonum/stat"
)

const radialHeadroom = 1.2

// Close returns a copy of values with the first element appended, closing a
// radar polygon. Empty input stays empty.
func Close[T any](values []T) []T {
	if len(values) == 0 {
		return []T{}
	}
	out := make([]T, 0, len(values)+1)
	out = append(out, values...)
	return append(out, values[0])
}

// PlayerBars is the four per-90 bars of one player in fixed metric order.
func PlayerBars(row season.PlayerRow) BarChart {
	metrics := season.Per90Metrics()
	bars := make([]Bar, 0, len(metrics))
	for i, m := range metrics {
		bars = append(bars, Bar{
			Label: m.Label(),
			Value: row.Value(m),
			Color: metricBarColors[i%len(metricBarColors)],
		})
	}

	return BarChart{
		Title:  "Selected player offensive metrics",
		YLabel: "Per 90 minutes",
		Bars:   bars,
	}
}

// PlayerRadar is the closed single-trace radar of one player.
func PlayerRadar(row season.PlayerRow) RadarChart {
	metrics := season.Per90Metrics()
	values := row.Values(metrics)

	return RadarChart{
		Title: fmt.Sprintf("%s - performance profile", row.Player),
		Axes:  Close(season.MetricNames(metrics)),
		Traces: []RadarTrace{
			{Name: row.Player, Values: Close(values), Color: PaletteColor(0)},
		},
		RadialMax:  maxOf(values) * radialHeadroom,
		ShowLegend: false,
	}
}

// ComparisonRadar overlays one closed trace per selected player on shared
// axes. Traces and their palette colors follow pick order.
func ComparisonRadar(cmp season.Comparison) RadarChart {
	metrics := cmp.Primary.Metrics()
	traces := make([]RadarTrace, 0, cmp.Primary.Len())
	for i, row := range cmp.SelectionRows() {
		values, _ := cmp.Primary.Row(row.Player)
		traces = append(traces, RadarTrace{
			Name:   row.Player,
			Values: Close(values),
			Color:  PaletteColor(i),
		})
	}

	return RadarChart{
		Title:      "Selected players - performance profile",
		Axes:       Close(season.MetricNames(metrics)),
		Traces:     traces,
		RadialMax:  cmp.Primary.Max() * radialHeadroom,
		ShowLegend: true,
	}
}

// DatasetScatter plots Per90_xG against Per90_Gls for every row, flags the
// row at selected and adds the y = x reference from the origin to the
// largest xG in the table. A negative selected flags nothing.
func DatasetScatter(rows []season.PlayerRow, selected int) ScatterChart {
	points := make([]Point, 0, len(rows)+1)
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for i, row := range rows {
		points = append(points, Point{
			Label: row.Player,
			X:     row.Per90XG,
			Y:     row.Per90Gls,
			Color: PaletteColor(i),
		})
		xs = append(xs, row.Per90XG)
		ys = append(ys, row.Per90Gls)
	}
	if selected >= 0 && selected < len(rows) {
		// drawn last so it sits on top of the dataset
		points = append(points, Point{
			Label:     rows[selected].Player,
			X:         rows[selected].Per90XG,
			Y:         rows[selected].Per90Gls,
			Color:     ColorHighlight,
			Highlight: true,
		})
	}

	return ScatterChart{
		Title:       "xG vs actual goals",
		XLabel:      string(season.MetricPer90XG),
		YLabel:      string(season.MetricPer90Goals),
		Points:      points,
		Diagonal:    diagonal(maxOf(xs)),
		Correlation: correlation(xs, ys),
	}
}

// ComparisonScatter plots one point per selected player, colored in pick
// order. maxXG is the largest Per90_xG of the whole table, so the reference
// line matches the dataset-wide scatter.
func ComparisonScatter(cmp season.Comparison, maxXG float64) ScatterChart {
	rows := cmp.SelectionRows()
	points := make([]Point, 0, len(rows))
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for i, row := range rows {
		points = append(points, Point{
			Label: row.Player,
			X:     row.Per90XG,
			Y:     row.Per90Gls,
			Color: PaletteColor(i),
		})
		xs = append(xs, row.Per90XG)
		ys = append(ys, row.Per90Gls)
	}

	return ScatterChart{
		Title:       "xG vs actual goals for selected players",
		XLabel:      "xG",
		YLabel:      "Actual goals",
		Points:      points,
		Diagonal:    diagonal(maxXG),
		Correlation: correlation(xs, ys),
	}
}

// PositionBoxPlot groups Per90_Gls by Position over the whole table. Groups
// keep the order in which positions first appear.
func PositionBoxPlot(rows []season.PlayerRow) BoxPlot {
	order := make([]string, 0)
	byPosition := make(map[string][]float64)
	for _, row := range rows {
		if _, ok := byPosition[row.Position]; !ok {
			order = append(order, row.Position)
		}
		byPosition[row.Position] = append(byPosition[row.Position], row.Per90Gls)
	}

	groups := make([]BoxGroup, 0, len(order))
	for _, position := range order {
		groups = append(groups, summarize(position, byPosition[position]))
	}

	return BoxPlot{
		Title:  "Goals per 90 minutes by position",
		XLabel: "Position",
		YLabel: string(season.MetricPer90Goals),
		Groups: groups,
	}
}

// ComparisonHeatmap renders the per-90 comparison as players x metrics.
func ComparisonHeatmap(cmp season.Comparison) Heatmap {
	values := cmp.Primary.Matrix()
	annotations := make([][]string, 0, len(values))
	minValue, maxValue := math.Inf(1), math.Inf(-1)
	for _, row := range values {
		labels := make([]string, 0, len(row))
		for _, v := range row {
			labels = append(labels, fmt.Sprintf("%.2f", v))
			minValue = math.Min(minValue, v)
			maxValue = math.Max(maxValue, v)
		}
		annotations = append(annotations, labels)
	}
	if len(values) == 0 {
		minValue, maxValue = 0, 0
	}

	return Heatmap{
		Title:       "Selected players - per-90 metric heatmap",
		Rows:        cmp.Primary.Players(),
		Columns:     season.MetricNames(cmp.Primary.Metrics()),
		Values:      values,
		Annotations: annotations,
		Min:         minValue,
		Max:         maxValue,
	}
}

// ComparisonBars transposes a comparison table: metrics become the bar
// groups and every player contributes one series.
func ComparisonBars(table season.ComparisonTable, title string) GroupedBarChart {
	series := make([]Series, 0, table.Len())
	for i, name := range table.Players() {
		values, _ := table.Row(name)
		series = append(series, Series{
			Name:   name,
			Values: values,
			Color:  PaletteColor(i),
		})
	}

	return GroupedBarChart{
		Title:      title,
		YLabel:     "Value",
		Categories: season.MetricLabels(table.Metrics()),
		Series:     series,
	}
}

func diagonal(maxXG float64) Segment {
	return Segment{X0: 0, Y0: 0, X1: maxXG, Y1: maxXG, Color: ColorDiagonal}
}

func summarize(label string, values []float64) BoxGroup {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	group := BoxGroup{Label: label, Values: append([]float64(nil), values...)}
	if len(sorted) == 0 {
		return group
	}
	group.Min = sorted[0]
	group.Max = sorted[len(sorted)-1]
	group.Q1 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	group.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	group.Q3 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	group.Mean = stat.Mean(sorted, nil)
	return group
}

func correlation(xs, ys []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

func maxOf(values []float64) float64 {
	out := 0.0
	for _, v := range values {
		if v > out {
			out = v
		}
	}
	return out
}
