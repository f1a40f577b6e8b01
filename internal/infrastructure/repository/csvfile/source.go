package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/riskibarqy/season-insights/internal/platform/logging"
)

const DefaultPath = "premier_league_2024_25.csv"

// Source loads the season table from a delimited text file.
type Source struct {
	path      string
	delimiter rune
	logger    *logging.Logger
}

func NewSource(path string, delimiter rune, logger *logging.Logger) *Source {
	if path == "" {
		path = DefaultPath
	}
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Source{path: path, delimiter: delimiter, logger: logger}
}

func (s *Source) Load(ctx context.Context) (*season.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, season.DataLoadErrorf(err, "load %s", s.path)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, season.DataLoadErrorf(err, "open %s", s.path)
	}
	defer f.Close()

	table, err := s.read(f)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "season table loaded",
		"path", s.path,
		"rows", table.Len(),
		"players", len(table.PlayerNames()),
	)
	return table, nil
}

func (s *Source) read(r io.Reader) (*season.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = s.delimiter
	// ragged rows are reported by the table with their line number
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = false

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, season.DataLoadErrorf(nil, "%s is empty", s.path)
	}
	if err != nil {
		return nil, season.DataLoadErrorf(err, "read header of %s", s.path)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, season.DataLoadErrorf(err, "read %s", s.path)
	}

	return season.NewTable(header, records)
}
