package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/season-insights/internal/app"
	"github.com/riskibarqy/season-insights/internal/config"
	"github.com/riskibarqy/season-insights/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/season-insights/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/season-insights/internal/platform/logging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(logging.NewJSON(logging.LevelError), "load config", err)
	}
	logger := logging.NewJSON(cfg.LogLevel, logging.WithService(cfg.ServiceName+"-migration", cfg.ServiceVersion, cfg.AppEnv))
	if strings.TrimSpace(cfg.DBURL) == "" {
		fatal(logger, "DB_URL is required", nil)
	}

	cmd := strings.ToLower(strings.TrimSpace(os.Args[1]))
	if cmd == "import" {
		if err := importCSV(cfg, logger, os.Args[2:]); err != nil {
			fatal(logger, "import season", err)
		}
		return
	}

	m, err := newMigrator(cfg)
	if err != nil {
		fatal(logger, "create migrator", err)
	}
	defer closeMigrator(m, logger)

	switch cmd {
	case "up":
		handleMigrationErr(logger, m.Up())
		logger.Info("migrations applied")
	case "down":
		steps, err := parseSteps(os.Args[2:])
		if err != nil {
			fatal(logger, "parse down steps", err)
		}
		handleMigrationErr(logger, m.Steps(-steps))
		logger.Info("migrations rolled back", "steps", steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			fmt.Println("dirty: false")
			return
		}
		if err != nil {
			fatal(logger, "read version", err)
		}
		fmt.Printf("version: %d\n", version)
		fmt.Printf("dirty: %t\n", dirty)
	case "force":
		if len(os.Args) < 3 {
			fatal(logger, "force requires a version argument", nil)
		}
		version, err := parseVersion(os.Args[2])
		if err != nil {
			fatal(logger, "parse version", err)
		}
		if err := m.Force(version); err != nil {
			fatal(logger, "force version", err)
		}
		logger.Info("forced migration version", "version", version)
	case "goto":
		if len(os.Args) < 3 {
			fatal(logger, "goto requires a target version argument", nil)
		}
		target, err := parseTarget(os.Args[2])
		if err != nil {
			fatal(logger, "parse target", err)
		}
		handleMigrationErr(logger, m.Migrate(target))
		logger.Info("migrated", "version", target)
	default:
		printUsage()
		os.Exit(2)
	}
}

func newMigrator(cfg config.Config) (*migrate.Migrate, error) {
	src, err := iofs.New(postgres.Migrations, postgres.MigrationsDir)
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", src, app.MigrationDSN(cfg))
}

// importCSV loads a season file with the dashboard's own parser and writes it
// under a season label: import <csv-path> [season].
func importCSV(cfg config.Config, logger *logging.Logger, args []string) error {
	path := cfg.SeasonCSVPath
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		path = strings.TrimSpace(args[0])
	}
	opts := app.SeasonOptions(cfg)
	if len(args) > 1 {
		opts.Season = strings.TrimSpace(args[1])
	}

	ctx := context.Background()
	table, err := app.LoadSeason(ctx, csvfile.NewSource(path, cfg.SeasonCSVDelimiter, logger), logger)
	if err != nil {
		return err
	}

	db, err := app.OpenPostgres(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := postgres.ImportSeason(ctx, db, opts, table)
	if err != nil {
		return err
	}
	logger.Info("season imported", "path", path, "season", opts.Season, "table", opts.Table, "rows", n)
	return nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}
	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	return value, nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func handleMigrationErr(logger *logging.Logger, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return
	}
	fatal(logger, "migration failed", err)
}

func closeMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func fatal(logger *logging.Logger, msg string, err error) {
	if err != nil {
		logger.Error(msg, "error", err)
	} else {
		logger.Error(msg)
	}
	_ = logger.Sync()
	os.Exit(1)
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <up|down|version|force|goto|import> [args]\n", name)
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s up\n", name)
	fmt.Fprintf(os.Stderr, "  %s down 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s version\n", name)
	fmt.Fprintf(os.Stderr, "  %s force 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s import premier_league_2024_25.csv 2024-2025\n", name)
}
