package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aceteam-ai/fiolog/internal/fio"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var summaryHeader = []string{"COLUMN", "MIN", "MEAN", "MAX", "ZERO-FILLED"}

// RenderSummary renders a per-column summary of t inside a bordered panel.
func RenderSummary(title string, t *fio.Table) string {
	stats := t.Stats()
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Name,
			formatNumber(s.Min),
			formatNumber(s.Mean),
			formatNumber(s.Max),
			strconv.Itoa(s.ZeroFilled),
		})
	}

	widths := make([]int, len(summaryHeader))
	for i, h := range summaryHeader {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d rows × %d columns\n\n", t.Len(), len(t.Columns))
	b.WriteString(renderLine(summaryHeader, widths, func(int, string) lipgloss.Style { return HeaderStyle }))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(renderLine(r, widths, func(col int, cell string) lipgloss.Style {
			if col == len(summaryHeader)-1 && cell != "0" {
				return WarningStyle
			}
			return ValueStyle
		}))
	}
	return PanelStyle.Render(b.String())
}

// renderLine pads cells to their column width before styling so escape
// sequences do not disturb alignment. The first column is left-aligned,
// numbers are right-aligned.
func renderLine(cells []string, widths []int, style func(col int, cell string) lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		var padded string
		if i == 0 {
			padded = runewidth.FillRight(cell, widths[i])
		} else {
			padded = runewidth.FillLeft(cell, widths[i])
		}
		parts[i] = style(i, cell).Render(padded)
	}
	return strings.Join(parts, "  ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
