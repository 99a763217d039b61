package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Parse picks a parser from the file name: .xlsx goes through excelize,
// everything else is treated as character-separated text with delimiter
// sniffing. An empty name defaults to CSV.
func Parse(name string, r io.Reader) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return ParseXLSX(r)
	case "", ".csv", ".tsv", ".txt":
		return ParseCSV(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// ParseCSV reads character-separated text. The delimiter is sniffed from the
// header line (comma, semicolon or tab); short rows are padded to the header
// width so every record exposes the full column set.
func ParseCSV(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("file contains no rows")
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	ds := &Dataset{Columns: header, Rows: make([][]string, 0, len(records)-1)}
	for _, rec := range records[1:] {
		ds.Rows = append(ds.Rows, padRow(rec, len(header)))
	}
	return ds, nil
}

// ParseXLSX reads the first sheet of an Excel workbook, first row as header.
func ParseXLSX(r io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("sheet contains no rows")
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	ds := &Dataset{Columns: header, Rows: make([][]string, 0, len(rows)-1)}
	for _, rec := range rows[1:] {
		ds.Rows = append(ds.Rows, padRow(rec, len(header)))
	}
	return ds, nil
}

func padRow(rec []string, width int) []string {
	row := make([]string, width)
	for i := 0; i < width && i < len(rec); i++ {
		row[i] = strings.TrimSpace(rec[i])
	}
	return row
}

// sniffDelimiter counts candidate separators on the first line.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	best, bestCount := ',', bytes.Count(line, []byte{','})
	if n := bytes.Count(line, []byte{';'}); n > bestCount {
		best, bestCount = ';', n
	}
	if n := bytes.Count(line, []byte{'\t'}); n > bestCount {
		best = '\t'
	}
	return best
}
