package season

// PlayerRow is one player's season line.
type PlayerRow struct {
	Player   string `validate:"required"`
	Nation   string
	Squad    string
	Position string
	MP       int     `validate:"gte=0"`
	Minutes  int     `validate:"gte=0"`
	Goals    int     `validate:"gte=0"`
	Per90Gls float64 `validate:"gte=0"`
	Per90XG  float64 `validate:"gte=0"`
	Per90Ast float64 `validate:"gte=0"`
	Per90XAG float64 `validate:"gte=0"`
}

// Value returns the row value for a metric. Unknown metrics yield 0.
func (r PlayerRow) Value(m Metric) float64 {
	switch m {
	case MetricPer90Goals:
		return r.Per90Gls
	case MetricPer90XG:
		return r.Per90XG
	case MetricPer90Assists:
		return r.Per90Ast
	case MetricPer90XAG:
		return r.Per90XAG
	case MetricMatchesPlayed:
		return float64(r.MP)
	case MetricGoals:
		return float64(r.Goals)
	default:
		return 0
	}
}

// Values projects the row onto metrics, keeping their order.
func (r PlayerRow) Values(metrics []Metric) []float64 {
	out := make([]float64, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, r.Value(m))
	}
	return out
}
