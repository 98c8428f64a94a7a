package fio

// ColumnStats summarizes one column of a Table.
type ColumnStats struct {
	Name       string
	Min        float64
	Max        float64
	Mean       float64
	ZeroFilled int
}

// Stats returns per-column min, max and mean over every row, zero-filled
// cells included, in column order.
func (t *Table) Stats() []ColumnStats {
	out := make([]ColumnStats, len(t.Columns))
	for j, c := range t.Columns {
		s := ColumnStats{Name: c.Name()}
		if j < len(t.ZeroFilled) {
			s.ZeroFilled = t.ZeroFilled[j]
		}
		var sum float64
		for i := range t.RowNums {
			v := t.Values[i][j]
			if i == 0 || v < s.Min {
				s.Min = v
			}
			if i == 0 || v > s.Max {
				s.Max = v
			}
			sum += v
		}
		if n := len(t.RowNums); n > 0 {
			s.Mean = round2(sum / float64(n))
		}
		out[j] = s
	}
	return out
}
