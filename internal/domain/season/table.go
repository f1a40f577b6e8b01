package season

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var rowValidator = validator.New()

// Table is the season table. It is built once and never mutated; every
// accessor hands out copies.
type Table struct {
	header      []string
	records     [][]string
	rows        []PlayerRow
	firstByName map[string]int
	names       []string
}

// NewTable parses raw header and records into a Table. Records keep their
// original cells so exports can reproduce every source column.
func NewTable(header []string, records [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, DataLoadErrorf(nil, "header row is empty")
	}
	if len(records) == 0 {
		return nil, DataLoadErrorf(nil, "no player rows")
	}

	idx, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	t := &Table{
		header:      append([]string(nil), header...),
		records:     make([][]string, 0, len(records)),
		rows:        make([]PlayerRow, 0, len(records)),
		firstByName: make(map[string]int, len(records)),
		names:       make([]string, 0, len(records)),
	}
	for i, record := range records {
		// line numbers are 1-based and count the header
		line := i + 2
		if len(record) != len(header) {
			return nil, DataLoadErrorf(nil, "line %d has %d fields, header has %d", line, len(record), len(header))
		}

		row, err := parseRow(record, idx)
		if err != nil {
			return nil, DataLoadErrorf(err, "line %d: %v", line, err)
		}
		if err := rowValidator.Struct(row); err != nil {
			return nil, DataLoadErrorf(err, "line %d (%s): %v", line, row.Player, err)
		}

		if _, seen := t.firstByName[row.Player]; !seen {
			t.firstByName[row.Player] = len(t.rows)
			t.names = append(t.names, row.Player)
		}
		t.rows = append(t.rows, row)
		t.records = append(t.records, append([]string(nil), record...))
	}

	return t, nil
}

func parseRow(record []string, idx columnIndex) (PlayerRow, error) {
	row := PlayerRow{
		Player:   strings.TrimSpace(record[idx[colPlayer]]),
		Nation:   record[idx[colNation]],
		Squad:    record[idx[colSquad]],
		Position: record[idx[colPosition]],
	}

	counts := []struct {
		col column
		dst *int
	}{
		{colMP, &row.MP},
		{colMinutes, &row.Minutes},
		{colGoals, &row.Goals},
	}
	for _, c := range counts {
		v, err := parseCount(record[idx[c.col]])
		if err != nil {
			return PlayerRow{}, crerr.Wrapf(err, "column %s: invalid integer %q", columnAliases[c.col][0], record[idx[c.col]])
		}
		*c.dst = v
	}

	rates := []struct {
		col column
		dst *float64
	}{
		{colPer90Gls, &row.Per90Gls},
		{colPer90XG, &row.Per90XG},
		{colPer90Ast, &row.Per90Ast},
		{colPer90XAG, &row.Per90XAG},
	}
	for _, r := range rates {
		v, err := parseRate(record[idx[r.col]])
		if err != nil {
			return PlayerRow{}, crerr.Wrapf(err, "column %s: invalid number %q", columnAliases[r.col][0], record[idx[r.col]])
		}
		*r.dst = v
	}

	return row, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Header returns the original column names.
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// Rows returns all rows in table order.
func (t *Table) Rows() []PlayerRow {
	return append([]PlayerRow(nil), t.rows...)
}

// Row returns the row at index i.
func (t *Table) Row(i int) PlayerRow {
	return t.rows[i]
}

// Record returns the original cells of row i.
func (t *Table) Record(i int) []string {
	return append([]string(nil), t.records[i]...)
}

// IndexOf returns the index of the first row whose Player equals name.
func (t *Table) IndexOf(name string) (int, bool) {
	i, ok := t.firstByName[name]
	return i, ok
}

// PlayerNames returns the distinct player names in table order.
func (t *Table) PlayerNames() []string {
	return append([]string(nil), t.names...)
}

// MaxPer90XG is the largest Per90_xG in the table; it bounds the reference
// diagonal of every xG scatter.
func (t *Table) MaxPer90XG() float64 {
	maxXG := 0.0
	for _, row := range t.rows {
		if row.Per90XG > maxXG {
			maxXG = row.Per90XG
		}
	}
	return maxXG
}
