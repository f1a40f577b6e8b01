package export

import (
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	baseFileName = "players_selected_data"
	sheetName    = "Players"
)

// CSVEncoder writes comma delimited text with "\n" line endings.
type CSVEncoder struct{}

func NewCSVEncoder() CSVEncoder { return CSVEncoder{} }

func (CSVEncoder) FileName() string    { return baseFileName + ".csv" }
func (CSVEncoder) ContentType() string { return "text/csv" }

func (CSVEncoder) Encode(ctx context.Context, header []string, records [][]string) ([]byte, error) {
	_, span := tracer.Start(ctx, "export.CSVEncoder.Encode")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return nil, crerr.Wrap(err, "write csv header")
	}
	if err := w.WriteAll(records); err != nil {
		return nil, crerr.Wrap(err, "write csv records")
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// XLSXEncoder writes a single-sheet workbook. Cells holding plain numbers
// are stored as numbers, everything else as text.
type XLSXEncoder struct{}

func NewXLSXEncoder() XLSXEncoder { return XLSXEncoder{} }

func (XLSXEncoder) FileName() string { return baseFileName + ".xlsx" }
func (XLSXEncoder) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXEncoder) Encode(ctx context.Context, header []string, records [][]string) ([]byte, error) {
	_, span := tracer.Start(ctx, "export.XLSXEncoder.Encode")
	defer span.End()

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, crerr.Wrap(err, "name xlsx sheet")
	}

	headerRow := make([]any, 0, len(header))
	for _, h := range header {
		headerRow = append(headerRow, h)
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, crerr.Wrap(err, "write xlsx header")
	}
	if len(header) > 0 {
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return nil, crerr.Wrap(err, "header range")
		}
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, crerr.Wrap(err, "header style")
		}
		if err := f.SetCellStyle(sheetName, "A1", last, style); err != nil {
			return nil, crerr.Wrap(err, "apply header style")
		}
		lastCol, err := excelize.ColumnNumberToName(len(header))
		if err != nil {
			return nil, crerr.Wrap(err, "header columns")
		}
		if err := f.SetColWidth(sheetName, "A", lastCol, 18); err != nil {
			return nil, crerr.Wrap(err, "column width")
		}
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, crerr.Wrapf(err, "row %d", i+1)
		}
		row := make([]any, 0, len(record))
		for _, v := range record {
			row = append(row, cellValue(v))
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, crerr.Wrapf(err, "write xlsx row %d", i+1)
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, crerr.Wrap(err, "encode xlsx")
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func cellValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed != raw {
		return raw
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return raw
}
