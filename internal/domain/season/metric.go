package season

// Metric identifies a numeric column usable in comparisons and charts.
type Metric string

const (
	MetricPer90Goals    Metric = "Per90_Gls"
	MetricPer90XG       Metric = "Per90_xG"
	MetricPer90Assists  Metric = "Per90_Ast"
	MetricPer90XAG      Metric = "Per90_xAG"
	MetricMatchesPlayed Metric = "MP"
	MetricGoals         Metric = "Goals"
)

var metricLabels = map[Metric]string{
	MetricPer90Goals:    "Goals",
	MetricPer90XG:       "xG",
	MetricPer90Assists:  "Assists",
	MetricPer90XAG:      "xAG",
	MetricMatchesPlayed: "MP",
	MetricGoals:         "Goals",
}

// Label is the short axis label of the metric.
func (m Metric) Label() string {
	if label, ok := metricLabels[m]; ok {
		return label
	}
	return string(m)
}

// Per90Metrics returns the offensive per-90 metrics in display order:
// goals, xG, assists, xAG. Bar and radar axes depend on this order.
func Per90Metrics() []Metric {
	return []Metric{MetricPer90Goals, MetricPer90XG, MetricPer90Assists, MetricPer90XAG}
}

// VolumeMetrics returns the metrics of the matches/goals comparison.
func VolumeMetrics() []Metric {
	return []Metric{MetricMatchesPlayed, MetricGoals}
}

// MetricNames converts metrics to their string form.
func MetricNames(metrics []Metric) []string {
	out := make([]string, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, string(m))
	}
	return out
}

// MetricLabels converts metrics to their short labels.
func MetricLabels(metrics []Metric) []string {
	out := make([]string, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, m.Label())
	}
	return out
}
