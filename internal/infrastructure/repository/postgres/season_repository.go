package postgres

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/season-insights/internal/domain/season"
	qb "github.com/riskibarqy/season-insights/internal/platform/querybuilder"
	"go.opentelemetry.io/otel/attribute"
)

// SeasonOptions locates the snapshot table holding one row per player line.
type SeasonOptions struct {
	Table        string
	OrderColumn  string
	SeasonColumn string
	Season       string
}

// SeasonRepository reads the season table from a read-only postgres
// snapshot. Every column except the order column is exposed as-is.
type SeasonRepository struct {
	db   *sqlx.DB
	opts SeasonOptions
}

func NewSeasonRepository(db *sqlx.DB, opts SeasonOptions) *SeasonRepository {
	return &SeasonRepository{db: db, opts: opts}
}

func (r *SeasonRepository) Load(ctx context.Context) (*season.Table, error) {
	ctx, span := tracer.Start(ctx, "postgres.SeasonRepository.Load")
	defer span.End()

	query, args, err := r.selectQuery()
	if err != nil {
		return nil, season.DataLoadErrorf(err, "build season snapshot query")
	}
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.statement", FormatQueryForTrace(query)),
	)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, season.DataLoadErrorf(err, "query season snapshot %s", r.opts.Table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, season.DataLoadErrorf(err, "read season snapshot columns")
	}
	skip := -1
	header := make([]string, 0, len(columns))
	for i, col := range columns {
		if strings.EqualFold(col, strings.TrimSpace(r.opts.OrderColumn)) {
			skip = i
			continue
		}
		header = append(header, col)
	}

	records := make([][]string, 0)
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, season.DataLoadErrorf(err, "scan season snapshot row %d", len(records)+1)
		}
		record := make([]string, 0, len(header))
		for i, v := range values {
			if i == skip {
				continue
			}
			record = append(record, cellString(v))
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, season.DataLoadErrorf(err, "iterate season snapshot")
	}
	span.SetAttributes(attribute.Int("season.rows", len(records)))

	return season.NewTable(header, records)
}

func (r *SeasonRepository) selectQuery() (string, []any, error) {
	table, err := qb.Ident(r.opts.Table)
	if err != nil {
		return "", nil, crerr.Wrap(err, "season table")
	}
	orderColumn, err := qb.Ident(r.opts.OrderColumn)
	if err != nil {
		return "", nil, crerr.Wrap(err, "season order column")
	}

	builder := qb.Select("*").From(table).OrderBy(orderColumn)
	if strings.TrimSpace(r.opts.Season) != "" {
		seasonColumn, err := qb.Ident(r.opts.SeasonColumn)
		if err != nil {
			return "", nil, crerr.Wrap(err, "season filter column")
		}
		builder = builder.Where(qb.Eq(seasonColumn, strings.TrimSpace(r.opts.Season)))
	}

	return builder.ToSQL()
}
