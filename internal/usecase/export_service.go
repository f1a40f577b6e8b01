package usecase

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

const DefaultExportFormat = "csv"

// Exporter encodes the selected rows into one downloadable file format.
type Exporter interface {
	FileName() string
	ContentType() string
	Encode(ctx context.Context, header []string, records [][]string) ([]byte, error)
}

// ExportFile is a ready-to-send download.
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
	Rows        int
}

type ExportService struct {
	selection *SelectionService
	exporters map[string]Exporter
}

// NewExportService registers exporters by lower-case format name.
func NewExportService(selection *SelectionService, exporters map[string]Exporter) *ExportService {
	registry := make(map[string]Exporter, len(exporters))
	for format, exporter := range exporters {
		registry[strings.ToLower(format)] = exporter
	}
	return &ExportService{
		selection: selection,
		exporters: registry,
	}
}

// ExportSelected encodes every table row of the selected players with all of
// its original columns. An empty format means csv.
func (s *ExportService) ExportSelected(ctx context.Context, names []string, format string) (ExportFile, error) {
	ctx, span := tracer.Start(ctx, "usecase.ExportService.ExportSelected")
	defer span.End()

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = DefaultExportFormat
	}
	exporter, ok := s.exporters[format]
	if !ok {
		return ExportFile{}, crerr.Wrapf(ErrInvalidInput, "unsupported export format %q", format)
	}

	cmp, selected, err := s.selection.ResolveMany(ctx, names)
	if err != nil {
		return ExportFile{}, err
	}
	if !selected {
		return ExportFile{}, crerr.Wrap(ErrInvalidInput, "select at least one player to export")
	}

	records := s.selection.SelectedRecords(cmp)
	body, err := exporter.Encode(ctx, s.selection.Table().Header(), records)
	if err != nil {
		return ExportFile{}, crerr.Wrapf(err, "encode %s export", format)
	}

	return ExportFile{
		Name:        exporter.FileName(),
		ContentType: exporter.ContentType(),
		Body:        body,
		Rows:        len(records),
	}, nil
}
