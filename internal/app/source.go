package app

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/season-insights/internal/config"
	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/riskibarqy/season-insights/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/season-insights/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/season-insights/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// CloseFunc releases whatever the season source holds open.
type CloseFunc func() error

func noopClose() error { return nil }

// OpenSource builds the configured season source.
func OpenSource(cfg config.Config, logger *logging.Logger) (season.Source, CloseFunc, error) {
	if logger == nil {
		logger = logging.Default()
	}

	switch cfg.SeasonSource {
	case config.SourceCSV, "":
		return csvfile.NewSource(cfg.SeasonCSVPath, cfg.SeasonCSVDelimiter, logger), noopClose, nil
	case config.SourcePostgres:
		db, err := OpenPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewSeasonRepository(db, SeasonOptions(cfg)), db.Close, nil
	default:
		return nil, nil, crerr.Newf("unsupported season source %q", cfg.SeasonSource)
	}
}

// OpenPostgres opens the traced connection pool used by the postgres
// source and the import command.
func OpenPostgres(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", postgresDSN(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(databaseName(cfg.DBURL)),
		otelsql.WithQueryFormatter(postgres.FormatQueryForTrace),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "open postgres")
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxIdleTime(time.Minute)
	return db, nil
}

// MigrationDSN is the URL handed to golang-migrate.
func MigrationDSN(cfg config.Config) string {
	return postgresDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)
}

// SeasonOptions maps the config onto the snapshot table location.
func SeasonOptions(cfg config.Config) postgres.SeasonOptions {
	return postgres.SeasonOptions{
		Table:        cfg.SeasonDBTable,
		OrderColumn:  cfg.SeasonDBOrderColumn,
		SeasonColumn: cfg.SeasonDBSeasonColumn,
		Season:       cfg.SeasonDBSeason,
	}
}

// LoadSeason reads the table once. Any failure is a data-load error the
// caller treats as fatal.
func LoadSeason(ctx context.Context, source season.Source, logger *logging.Logger) (*season.Table, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if source == nil {
		return nil, season.DataLoadErrorf(nil, "no season source configured")
	}

	started := time.Now()
	table, err := source.Load(ctx)
	if err != nil {
		if !crerr.Is(err, season.ErrDataLoad) {
			err = season.DataLoadErrorf(err, "load season table")
		}
		logger.ErrorContext(ctx, "season table load failed", "error", err)
		return nil, err
	}
	if table == nil || table.Len() == 0 {
		err := season.DataLoadErrorf(nil, "season table is empty")
		logger.ErrorContext(ctx, "season table load failed", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "season table loaded",
		"rows", table.Len(),
		"players", len(table.PlayerNames()),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return table, nil
}
