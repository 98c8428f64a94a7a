// Package export writes a wide fio table to CSV, Excel or SQLite files.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aceteam-ai/fiolog/internal/fio"
)

// Format names an output file type.
type Format string

const (
	FormatExcel  Format = "excel"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatExcel, FormatCSV, FormatSQLite}

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want excel, csv or sqlite)", s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatSQLite:
		return "db"
	default:
		return "xlsx"
	}
}

// Filename returns the default output name, e.g. fio-results-2024-05-01-13-37.xlsx.
func Filename(f Format, now time.Time) string {
	return fmt.Sprintf("fio-results-%s.%s", now.Format("2006-01-02-15-04"), f.Ext())
}

// Writer writes a table to a destination path.
type Writer interface {
	WriteTable(path string, t *fio.Table) error
}

// New returns the Writer for f.
func New(f Format) (Writer, error) {
	switch f {
	case FormatExcel:
		return &ExcelWriter{Sheet: DefaultSheet}, nil
	case FormatCSV:
		return &CSVWriter{}, nil
	case FormatSQLite:
		return &SQLiteWriter{Table: DefaultSQLTable}, nil
	}
	return nil, fmt.Errorf("unknown export format %q", f)
}

// formatValue renders a cell the same way for every text-based sink.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
