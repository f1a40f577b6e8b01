package usecase

import (
	"context"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionServicePlayerOptions(t *testing.T) {
	svc := NewSelectionService(newTestTable(t))

	options := svc.PlayerOptions(context.Background())

	assert.Equal(t, []string{"Mohamed Salah", "Erling Haaland", "Bukayo Saka", "Virgil van Dijk"}, options.Players)
	assert.Equal(t, []string{"Mohamed Salah"}, options.DefaultSelection)
}

func TestSelectionServiceResolveSingle(t *testing.T) {
	ctx := context.Background()
	svc := NewSelectionService(newTestTable(t))

	t.Run("first row wins on duplicates", func(t *testing.T) {
		row, err := svc.ResolveSingle(ctx, "  Mohamed Salah ")
		require.NoError(t, err)
		assert.Equal(t, "Liverpool", row.Squad)
		assert.Equal(t, 3371, row.Minutes)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := svc.ResolveSingle(ctx, "Bukayo Saka")
		require.NoError(t, err)
		second, err := svc.ResolveSingle(ctx, "Bukayo Saka")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.ResolveSingle(ctx, "   ")
		assert.True(t, crerr.Is(err, ErrInvalidInput))
	})

	t.Run("unknown player", func(t *testing.T) {
		_, err := svc.ResolveSingle(ctx, "Nobody")
		assert.True(t, crerr.Is(err, season.ErrPlayerNotFound))
		assert.Contains(t, err.Error(), "Nobody")
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		_, err := svc.ResolveSingle(ctx, "mohamed salah")
		assert.True(t, crerr.Is(err, season.ErrPlayerNotFound))
	})
}

func TestSelectionServiceResolveMany(t *testing.T) {
	ctx := context.Background()
	svc := NewSelectionService(newTestTable(t))

	t.Run("table order and dedupe", func(t *testing.T) {
		cmp, ok, err := svc.ResolveMany(ctx, []string{"Bukayo Saka", "Mohamed Salah", "Bukayo Saka"})
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, []string{"Mohamed Salah", "Bukayo Saka"}, cmp.Players)
		assert.Equal(t, []string{"Bukayo Saka", "Mohamed Salah"}, cmp.Selection)
		assert.Equal(t, []int{0, 2}, cmp.Indexes)
		require.Len(t, cmp.SelectionRows(), 2)
		assert.Equal(t, "Arsenal", cmp.SelectionRows()[0].Squad)
		require.Len(t, cmp.Rows, 2)
		assert.Equal(t, "Liverpool", cmp.Rows[0].Squad)
		assert.Equal(t, cmp.Players, cmp.Primary.Players())
		assert.Equal(t, cmp.Players, cmp.Secondary.Players())

		v, found := cmp.Primary.Value("Bukayo Saka", season.MetricPer90Assists)
		require.True(t, found)
		assert.Equal(t, 0.52, v)

		goals, found := cmp.Secondary.Value("Mohamed Salah", season.MetricGoals)
		require.True(t, found)
		assert.Equal(t, 29.0, goals)
	})

	t.Run("empty selection", func(t *testing.T) {
		cmp, ok, err := svc.ResolveMany(ctx, nil)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, cmp.Players)
	})

	t.Run("unknown players fail the whole selection", func(t *testing.T) {
		cmp, ok, err := svc.ResolveMany(ctx, []string{"Mohamed Salah", "Ghost", "Nobody"})
		require.Error(t, err)
		assert.False(t, ok)
		assert.Empty(t, cmp.Players)
		assert.True(t, crerr.Is(err, season.ErrPlayerNotFound))
		assert.Contains(t, err.Error(), `"Ghost"`)
		assert.Contains(t, err.Error(), `"Nobody"`)
	})

	t.Run("blank name", func(t *testing.T) {
		_, _, err := svc.ResolveMany(ctx, []string{"Mohamed Salah", " "})
		assert.True(t, crerr.Is(err, ErrInvalidInput))
	})
}

func TestSelectionServiceResolvesPaddedSourceNames(t *testing.T) {
	records := make([][]string, 0, len(testRecords))
	for _, record := range testRecords {
		records = append(records, append([]string(nil), record...))
	}
	records[0][0] = "Mohamed Salah "
	table, err := season.NewTable(testHeader, records)
	require.NoError(t, err)

	ctx := context.Background()
	svc := NewSelectionService(table)
	options := svc.PlayerOptions(ctx)
	require.NotEmpty(t, options.DefaultSelection)

	row, err := svc.ResolveSingle(ctx, options.Players[0])
	require.NoError(t, err)
	assert.Equal(t, "Liverpool", row.Squad)

	cmp, ok, err := svc.ResolveMany(ctx, options.DefaultSelection)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Mohamed Salah"}, cmp.Players)
	assert.Len(t, svc.SelectedRecords(cmp), 2)
}

func TestSelectionServiceSelectedRecords(t *testing.T) {
	svc := NewSelectionService(newTestTable(t))

	cmp, ok, err := svc.ResolveMany(context.Background(), []string{"Bukayo Saka", "Mohamed Salah"})
	require.NoError(t, err)
	require.True(t, ok)

	records := svc.SelectedRecords(cmp)

	require.Len(t, records, 3)
	assert.Equal(t, testRecords[0], records[0])
	assert.Equal(t, testRecords[2], records[1])
	assert.Equal(t, testRecords[4], records[2])
}

func TestSelectionServiceComment(t *testing.T) {
	svc := NewSelectionService(newTestTable(t))

	row, err := svc.ResolveSingle(context.Background(), "Mohamed Salah")
	require.NoError(t, err)

	commentary := svc.Comment(row)
	assert.Equal(t, season.FinishingMatches, commentary.Finishing)
	assert.Equal(t, season.PlaymakingHigh, commentary.Playmaking)
	assert.Equal(t, "goal output matches expectation. high assist contribution, strong creative role.", commentary.Text)
}
