package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/config"
	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/riskibarqy/season-insights/internal/infrastructure/repository/csvfile"
	seasonmock "github.com/riskibarqy/season-insights/internal/mocks/domain/season"
	"github.com/riskibarqy/season-insights/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

const testCSV = "Player,Nation,Squad,Pos,MP,Min,Gls,Per90_Gls,Per90_xG,Per90_Ast,Per90_xAG\n" +
	"Mohamed Salah,eg EGY,Liverpool,FW,38,\"3,371\",29,0.77,0.66,0.48,0.37\n" +
	"Bukayo Saka,eng ENG,Arsenal,\"FW,MF\",25,\"1,730\",6,0.31,0.35,0.52,0.45\n"

func testTable(t *testing.T) *season.Table {
	t.Helper()

	table, err := season.NewTable(
		[]string{"Player", "Nation", "Squad", "Pos", "MP", "Min", "Gls", "Per90_Gls", "Per90_xG", "Per90_Ast", "Per90_xAG"},
		[][]string{{"Mohamed Salah", "eg EGY", "Liverpool", "FW", "38", "3,371", "29", "0.77", "0.66", "0.48", "0.37"}},
	)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return table
}

func TestLoadSeason_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-123")
	source := seasonmock.NewSource(t)
	expected := testTable(t)

	source.
		On("Load", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(expected, nil).
		Once()

	got, err := LoadSeason(ctx, source, logging.NewNop())
	if err != nil {
		t.Fatalf("load season: %v", err)
	}
	if got != expected {
		t.Fatalf("expected the source table to be returned")
	}
}

func TestLoadSeason_WrapsSourceErrorUsingMockery(t *testing.T) {
	t.Parallel()

	source := seasonmock.NewSource(t)
	source.On("Load", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := LoadSeason(context.Background(), source, logging.NewNop())
	if !crerr.Is(err, season.ErrDataLoad) {
		t.Fatalf("expected data load error, got %v", err)
	}
}

func TestLoadSeason_KeepsDataLoadErrorUsingMockery(t *testing.T) {
	t.Parallel()

	loadErr := season.DataLoadErrorf(nil, "line 3 has 2 fields, header has 11")
	source := seasonmock.NewSource(t)
	source.On("Load", mock.Anything).Return(nil, loadErr).Once()

	_, err := LoadSeason(context.Background(), source, nil)
	if err != loadErr {
		t.Fatalf("expected original data load error, got %v", err)
	}
}

func TestLoadSeason_NilTableUsingMockery(t *testing.T) {
	t.Parallel()

	source := seasonmock.NewSource(t)
	source.On("Load", mock.Anything).Return(nil, nil).Once()

	_, err := LoadSeason(context.Background(), source, logging.NewNop())
	if !crerr.Is(err, season.ErrDataLoad) {
		t.Fatalf("expected data load error, got %v", err)
	}
}

func TestLoadSeason_NilSource(t *testing.T) {
	t.Parallel()

	if _, err := LoadSeason(context.Background(), nil, logging.NewNop()); !crerr.Is(err, season.ErrDataLoad) {
		t.Fatalf("expected data load error, got %v", err)
	}
}

func TestOpenSource_CSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "season.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	source, closeFn, err := OpenSource(config.Config{
		SeasonSource:       config.SourceCSV,
		SeasonCSVPath:      path,
		SeasonCSVDelimiter: ',',
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("open source: %v", err)
	}
	defer closeFn()

	if _, ok := source.(*csvfile.Source); !ok {
		t.Fatalf("expected csv source, got %T", source)
	}

	table, err := LoadSeason(context.Background(), source, logging.NewNop())
	if err != nil {
		t.Fatalf("load season: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("unexpected row count: %d", table.Len())
	}
}

func TestOpenSource_Unsupported(t *testing.T) {
	t.Parallel()

	if _, _, err := OpenSource(config.Config{SeasonSource: "sqlite"}, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unsupported source")
	}
}

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		HTTPAddr:             ":0",
		ReadTimeout:          time.Second,
		WriteTimeout:         time.Second,
		CORSAllowedOrigins:   []string{"*"},
		MaxComparisonPlayers: 5,
		ChartWidthInch:       4,
		ChartHeightInch:      3,
		ChartCacheEntries:    8,
	}

	srv, err := NewHTTPServer(cfg, testTable(t), logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestNewHTTPServer_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewHTTPServer(config.Config{HTTPAddr: ":8080"}, nil, nil); err == nil {
		t.Fatalf("expected error without table")
	}
	if _, err := NewHTTPServer(config.Config{}, testTable(t), nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestSeasonOptions(t *testing.T) {
	t.Parallel()

	opts := SeasonOptions(config.Config{
		SeasonDBTable:        "pl_players",
		SeasonDBOrderColumn:  "row_order",
		SeasonDBSeasonColumn: "season",
		SeasonDBSeason:       "2024-2025",
	})
	if opts.Table != "pl_players" || opts.OrderColumn != "row_order" || opts.SeasonColumn != "season" || opts.Season != "2024-2025" {
		t.Fatalf("unexpected season options: %+v", opts)
	}
}
