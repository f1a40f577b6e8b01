package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/domain/season"
)

// PlayerOptions feeds the player pickers.
type PlayerOptions struct {
	Players          []string
	DefaultSelection []string
}

// SelectionService resolves player names against the resident season table.
// It only reads the table, so a single instance serves all requests.
type SelectionService struct {
	table *season.Table
}

func NewSelectionService(table *season.Table) *SelectionService {
	return &SelectionService{table: table}
}

// Table exposes the underlying table for table-wide views.
func (s *SelectionService) Table() *season.Table {
	return s.table
}

func (s *SelectionService) PlayerOptions(ctx context.Context) PlayerOptions {
	_, span := tracer.Start(ctx, "usecase.SelectionService.PlayerOptions")
	defer span.End()

	names := s.table.PlayerNames()
	defaults := make([]string, 0, 1)
	if len(names) > 0 {
		defaults = append(defaults, names[0])
	}
	return PlayerOptions{Players: names, DefaultSelection: defaults}
}

// ResolveSingle returns the first row whose Player equals name.
func (s *SelectionService) ResolveSingle(ctx context.Context, name string) (season.PlayerRow, error) {
	_, span := tracer.Start(ctx, "usecase.SelectionService.ResolveSingle")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return season.PlayerRow{}, crerr.Wrap(ErrInvalidInput, "player name is required")
	}

	i, ok := s.table.IndexOf(name)
	if !ok {
		return season.PlayerRow{}, crerr.Wrapf(season.ErrPlayerNotFound, "player=%q", name)
	}
	return s.table.Row(i), nil
}

// ResolveMany resolves a multi-selection. The boolean is false when names is
// empty, which means nothing is selected and nothing should be drawn. An
// unknown name fails the whole selection.
func (s *SelectionService) ResolveMany(ctx context.Context, names []string) (season.Comparison, bool, error) {
	_, span := tracer.Start(ctx, "usecase.SelectionService.ResolveMany")
	defer span.End()

	wanted, err := distinctNames(names)
	if err != nil {
		return season.Comparison{}, false, err
	}
	if len(wanted) == 0 {
		return season.Comparison{}, false, nil
	}

	indexes := make([]int, 0, len(wanted))
	missing := make([]string, 0)
	for _, name := range wanted {
		i, ok := s.table.IndexOf(name)
		if !ok {
			missing = append(missing, strconv.Quote(name))
			continue
		}
		indexes = append(indexes, i)
	}
	if len(missing) > 0 {
		return season.Comparison{}, false, crerr.Wrapf(season.ErrPlayerNotFound, "players=[%s]", strings.Join(missing, ", "))
	}

	sort.Ints(indexes)
	cmp := season.Comparison{
		Players:   make([]string, 0, len(indexes)),
		Selection: wanted,
		Rows:      make([]season.PlayerRow, 0, len(indexes)),
		Indexes:   indexes,
	}
	for _, i := range indexes {
		row := s.table.Row(i)
		cmp.Players = append(cmp.Players, row.Player)
		cmp.Rows = append(cmp.Rows, row)
	}
	cmp.Primary = season.NewComparisonTable(cmp.Rows, season.Per90Metrics())
	cmp.Secondary = season.NewComparisonTable(cmp.Rows, season.VolumeMetrics())

	return cmp, true, nil
}

// Comment runs the commentary rules on row.
func (s *SelectionService) Comment(row season.PlayerRow) season.Commentary {
	return season.CommentOn(row)
}

// SelectedRecords returns the original cells of every row whose Player is in
// the comparison, in table order. Duplicate player lines are all included.
func (s *SelectionService) SelectedRecords(cmp season.Comparison) [][]string {
	selected := make(map[string]struct{}, len(cmp.Players))
	for _, name := range cmp.Players {
		selected[name] = struct{}{}
	}

	out := make([][]string, 0, len(cmp.Players))
	for i := 0; i < s.table.Len(); i++ {
		if _, ok := selected[s.table.Row(i).Player]; ok {
			out = append(out, s.table.Record(i))
		}
	}
	return out
}

func distinctNames(names []string) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, crerr.Wrap(ErrInvalidInput, "player name cannot be blank")
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}
