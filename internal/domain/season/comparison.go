package season

// ComparisonTable is a player-keyed projection of selected metrics. It is
// rebuilt for every selection and never mutated.
type ComparisonTable struct {
	players []string
	metrics []Metric
	values  [][]float64
	index   map[string]int
}

// NewComparisonTable projects rows onto metrics. Rows are expected to be
// unique per player; later duplicates are ignored.
func NewComparisonTable(rows []PlayerRow, metrics []Metric) ComparisonTable {
	t := ComparisonTable{
		players: make([]string, 0, len(rows)),
		metrics: append([]Metric(nil), metrics...),
		values:  make([][]float64, 0, len(rows)),
		index:   make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		if _, seen := t.index[row.Player]; seen {
			continue
		}
		t.index[row.Player] = len(t.players)
		t.players = append(t.players, row.Player)
		t.values = append(t.values, row.Values(metrics))
	}
	return t
}

// Players returns the row keys in order.
func (t ComparisonTable) Players() []string {
	return append([]string(nil), t.players...)
}

// Metrics returns the column keys in order.
func (t ComparisonTable) Metrics() []Metric {
	return append([]Metric(nil), t.metrics...)
}

// Len returns the number of players.
func (t ComparisonTable) Len() int {
	return len(t.players)
}

// Row returns the metric values of one player.
func (t ComparisonTable) Row(player string) ([]float64, bool) {
	i, ok := t.index[player]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), t.values[i]...), true
}

// Value returns a single cell.
func (t ComparisonTable) Value(player string, metric Metric) (float64, bool) {
	i, ok := t.index[player]
	if !ok {
		return 0, false
	}
	for j, m := range t.metrics {
		if m == metric {
			return t.values[i][j], true
		}
	}
	return 0, false
}

// Column returns one metric across all players, in player order.
func (t ComparisonTable) Column(metric Metric) []float64 {
	j := -1
	for k, m := range t.metrics {
		if m == metric {
			j = k
			break
		}
	}
	if j < 0 {
		return nil
	}

	out := make([]float64, 0, len(t.values))
	for _, row := range t.values {
		out = append(out, row[j])
	}
	return out
}

// Matrix returns a copy of the players x metrics values.
func (t ComparisonTable) Matrix() [][]float64 {
	out := make([][]float64, 0, len(t.values))
	for _, row := range t.values {
		out = append(out, append([]float64(nil), row...))
	}
	return out
}

// Max returns the largest cell, or 0 for an empty table.
func (t ComparisonTable) Max() float64 {
	maxValue := 0.0
	for _, row := range t.values {
		for _, v := range row {
			if v > maxValue {
				maxValue = v
			}
		}
	}
	return maxValue
}

// Comparison is a resolved multi-player selection.
type Comparison struct {
	// Players are the selected names in table order.
	Players []string
	// Selection holds the same names in the order they were picked.
	Selection []string
	// Rows holds the first matching row per selected player, in table order.
	Rows []PlayerRow
	// Indexes are the table positions of Rows.
	Indexes []int
	// Primary compares the four per-90 metrics.
	Primary ComparisonTable
	// Secondary compares matches played and goals.
	Secondary ComparisonTable
}

// SelectionRows returns Rows in pick order. Without a Selection it falls
// back to table order.
func (c Comparison) SelectionRows() []PlayerRow {
	if len(c.Selection) == 0 {
		return append([]PlayerRow(nil), c.Rows...)
	}

	byName := make(map[string]PlayerRow, len(c.Rows))
	for _, row := range c.Rows {
		byName[row.Player] = row
	}
	out := make([]PlayerRow, 0, len(c.Selection))
	for _, name := range c.Selection {
		if row, ok := byName[name]; ok {
			out = append(out, row)
		}
	}
	return out
}
