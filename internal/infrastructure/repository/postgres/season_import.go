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

// ImportSeason replaces the rows of opts.Season with the rows of table, in
// table order. It runs in one transaction so readers never see a partial
// season.
func ImportSeason(ctx context.Context, db *sqlx.DB, opts SeasonOptions, table *season.Table) (int, error) {
	ctx, span := tracer.Start(ctx, "postgres.ImportSeason")
	defer span.End()

	seasonLabel := strings.TrimSpace(opts.Season)
	if seasonLabel == "" {
		return 0, crerr.New("season label is required for import")
	}
	if table == nil || table.Len() == 0 {
		return 0, crerr.New("nothing to import")
	}

	deleteQuery, insertQuery, err := importQueries(opts)
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.String("season.label", seasonLabel), attribute.Int("season.rows", table.Len()))

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, crerr.Wrap(err, "begin import tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteQuery, seasonLabel); err != nil {
		return 0, crerr.Wrapf(err, "clear season %s", seasonLabel)
	}
	for i, row := range table.Rows() {
		if _, err := tx.NamedExecContext(ctx, insertQuery, importArgs(seasonLabel, row)); err != nil {
			return 0, crerr.Wrapf(err, "insert row %d (%s)", i+1, row.Player)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, crerr.Wrap(err, "commit import tx")
	}
	return table.Len(), nil
}

var importColumns = []struct {
	column string
	param  string
}{
	{`"Player"`, "player"},
	{`"Nation"`, "nation"},
	{`"Squad"`, "squad"},
	{`"Pos"`, "pos"},
	{`"MP"`, "mp"},
	{`"Min"`, "minutes"},
	{`"Gls"`, "goals"},
	{`"Per90_Gls"`, "per90_gls"},
	{`"Per90_xG"`, "per90_xg"},
	{`"Per90_Ast"`, "per90_ast"},
	{`"Per90_xAG"`, "per90_xag"},
}

func importQueries(opts SeasonOptions) (string, string, error) {
	table, err := qb.Ident(opts.Table)
	if err != nil {
		return "", "", crerr.Wrap(err, "season table")
	}
	seasonColumn, err := qb.Ident(opts.SeasonColumn)
	if err != nil {
		return "", "", crerr.Wrap(err, "season filter column")
	}

	deleteQuery, _, err := qb.DeleteFrom(table).Where(qb.Eq(seasonColumn, nil)).ToSQL()
	if err != nil {
		return "", "", err
	}

	columns := []string{seasonColumn}
	params := []string{"season"}
	for _, c := range importColumns {
		columns = append(columns, c.column)
		params = append(params, c.param)
	}
	insertQuery, err := qb.InsertNamed(table, columns, params)
	if err != nil {
		return "", "", err
	}
	return deleteQuery, insertQuery, nil
}

func importArgs(seasonLabel string, row season.PlayerRow) map[string]any {
	return map[string]any{
		"season":    seasonLabel,
		"player":    row.Player,
		"nation":    row.Nation,
		"squad":     row.Squad,
		"pos":       row.Position,
		"mp":        row.MP,
		"minutes":   row.Minutes,
		"goals":     row.Goals,
		"per90_gls": row.Per90Gls,
		"per90_xg":  row.Per90XG,
		"per90_ast": row.Per90Ast,
		"per90_xag": row.Per90XAG,
	}
}
