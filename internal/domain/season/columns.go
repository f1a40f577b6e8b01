package season

import (
	"math"
	"strconv"
	"strings"
)

type column int

const (
	colPlayer column = iota
	colNation
	colSquad
	colPosition
	colMP
	colMinutes
	colGoals
	colPer90Gls
	colPer90XG
	colPer90Ast
	colPer90XAG
	columnCount
)

// columnAliases lists accepted header spellings per logical column. The first
// entry is the logical name reported in errors.
var columnAliases = [columnCount][]string{
	colPlayer:   {"Player"},
	colNation:   {"Nation"},
	colSquad:    {"Squad"},
	colPosition: {"Position", "Pos"},
	colMP:       {"MP"},
	colMinutes:  {"Minutes", "Min"},
	colGoals:    {"Goals", "Gls"},
	colPer90Gls: {"Per90_Gls", "Per 90 Minutes_Gls"},
	colPer90XG:  {"Per90_xG", "Per 90 Minutes_xG"},
	colPer90Ast: {"Per90_Ast", "Per 90 Minutes_Ast"},
	colPer90XAG: {"Per90_xAG", "Per 90 Minutes_xAG"},
}

type columnIndex [columnCount]int

func resolveColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, seen := positions[key]; seen {
			continue
		}
		positions[key] = i
	}

	var idx columnIndex
	missing := make([]string, 0)
	for c := column(0); c < columnCount; c++ {
		idx[c] = -1
		for _, alias := range columnAliases[c] {
			if pos, ok := positions[normalizeHeader(alias)]; ok {
				idx[c] = pos
				break
			}
		}
		if idx[c] < 0 {
			missing = append(missing, columnAliases[c][0])
		}
	}
	if len(missing) > 0 {
		return idx, DataLoadErrorf(nil, "missing required columns [%s]", strings.Join(missing, ", "))
	}

	return idx, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

func parseCount(raw string) (int, error) {
	value := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if value == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}

func parseRate(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, strconv.ErrRange
	}
	return f, nil
}
