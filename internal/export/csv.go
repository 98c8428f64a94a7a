package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/aceteam-ai/fiolog/internal/fio"
)

// CSVWriter writes one header row followed by one line per table row.
type CSVWriter struct{}

// WriteTable creates path and writes t as CSV.
func (w *CSVWriter) WriteTable(path string, t *fio.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv export: %w", err)
	}
	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("csv export: close %s: %w", path, err)
	}
	return nil
}

// WriteCSV writes t to out.
func WriteCSV(out io.Writer, t *fio.Table) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(t.Header()); err != nil {
		return fmt.Errorf("csv export: header: %w", err)
	}
	record := make([]string, len(t.Columns)+1)
	for i, n := range t.RowNums {
		for j, v := range t.Row(i) {
			record[j] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv export: row %d: %w", n, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv export: flush: %w", err)
	}
	return nil
}
