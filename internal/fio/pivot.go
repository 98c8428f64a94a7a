package fio

import (
	"cmp"
	"slices"
	"strings"
)

// RowNumColumn is the header of the leading index column.
const RowNumColumn = "row_num"

// Column is one (source, metric, direction) triple of the wide table.
type Column struct {
	Source    string
	Metric    MetricKind
	Direction Direction
}

// Name joins the non-empty components with underscores, e.g. "jobA_bw_Read".
func (c Column) Name() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Source, string(c.Metric), c.Direction.String()} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "_")
}

func compareColumns(x, y Column) int {
	return cmp.Or(
		cmp.Compare(x.Source, y.Source),
		cmp.Compare(x.Metric, y.Metric),
		cmp.Compare(x.Direction.String(), y.Direction.String()),
	)
}

// Table is the dense wide table: Values[i][j] is the value of Columns[j]
// at RowNums[i]. Cells with no record hold 0.
type Table struct {
	Columns []Column
	RowNums []int
	Values  [][]float64

	// ZeroFilled counts, per column, the cells that had no record.
	ZeroFilled []int
}

// Pivot builds the wide table from merged records in two passes: first the
// row and column universes, then a zeroed grid filled with observed values.
func Pivot(records []MergedRecord) *Table {
	colIndex := make(map[Column]int)
	rowIndex := make(map[int]int)
	var columns []Column
	var rows []int
	for _, r := range records {
		c := Column{Source: r.Source, Metric: r.Metric, Direction: r.Direction}
		if _, ok := colIndex[c]; !ok {
			colIndex[c] = 0
			columns = append(columns, c)
		}
		if _, ok := rowIndex[r.RowNum]; !ok {
			rowIndex[r.RowNum] = 0
			rows = append(rows, r.RowNum)
		}
	}
	slices.SortFunc(columns, compareColumns)
	slices.Sort(rows)
	for j, c := range columns {
		colIndex[c] = j
	}
	for i, n := range rows {
		rowIndex[n] = i
	}

	t := &Table{
		Columns:    columns,
		RowNums:    rows,
		Values:     make([][]float64, len(rows)),
		ZeroFilled: make([]int, len(columns)),
	}
	filled := make([][]bool, len(rows))
	for i := range rows {
		t.Values[i] = make([]float64, len(columns))
		filled[i] = make([]bool, len(columns))
	}
	for _, r := range records {
		i := rowIndex[r.RowNum]
		j := colIndex[Column{Source: r.Source, Metric: r.Metric, Direction: r.Direction}]
		t.Values[i][j] = r.Value
		filled[i][j] = true
	}
	for i := range rows {
		for j := range columns {
			if !filled[i][j] {
				t.ZeroFilled[j]++
			}
		}
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.RowNums) }

// Header returns "row_num" followed by every column name.
func (t *Table) Header() []string {
	h := make([]string, 0, len(t.Columns)+1)
	h = append(h, RowNumColumn)
	for _, c := range t.Columns {
		h = append(h, c.Name())
	}
	return h
}

// Row returns row i as row_num followed by the column values.
func (t *Table) Row(i int) []float64 {
	out := make([]float64, 0, len(t.Columns)+1)
	out = append(out, float64(t.RowNums[i]))
	return append(out, t.Values[i]...)
}
