package export

import (
	"fmt"

	"github.com/aceteam-ai/fiolog/internal/fio"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet that receives the table.
const DefaultSheet = "Sheet"

// ExcelWriter writes the table to an xlsx workbook with numeric cells.
type ExcelWriter struct {
	Sheet string
}

// WriteTable creates the workbook at path.
func (w *ExcelWriter) WriteTable(path string, t *fio.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := w.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("excel export: rename sheet: %w", err)
	}

	header := make([]any, 0, len(t.Columns)+1)
	for _, h := range t.Header() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("excel export: header: %w", err)
	}

	row := make([]any, len(t.Columns)+1)
	for i, n := range t.RowNums {
		row[0] = n
		for j, v := range t.Values[i] {
			row[j+1] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("excel export: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("excel export: row %d: %w", n, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("excel export: save %s: %w", path, err)
	}
	return nil
}
