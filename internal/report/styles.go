package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rootfind/internal/rootfind"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	CellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ccccdd"))

	LastRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	RootStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	WarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))
)

// Render draws the title, the outcome line and the trace.
func Render(res *rootfind.Result) string {
	t := FromResult(res)

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(t.Title))
	sb.WriteString("\n")
	if res.Expression != "" {
		sb.WriteString(Subtle.Render("f(x) = " + res.Expression))
		sb.WriteString("\n")
	}
	if res.Derivative != "" {
		sb.WriteString(Subtle.Render("f'(x) = " + res.Derivative))
		sb.WriteString("\n")
	}

	switch res.Status {
	case rootfind.StatusConverged:
		sb.WriteString(RootStyle.Render(Summary(res)))
	case rootfind.StatusExhausted:
		sb.WriteString(WarnStyle.Render(Summary(res)))
	default:
		sb.WriteString(ErrorStyle.Render(t.Error))
		sb.WriteString("\n")
		return sb.String()
	}
	sb.WriteString("\n\n")
	sb.WriteString(RenderTable(t))
	return sb.String()
}

// RenderTable right-aligns every column to its widest cell.
func RenderTable(t Table) string {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = style.Width(w).Align(lipgloss.Right).Render(cell)
		}
		return strings.Join(parts, "  ")
	}

	var sb strings.Builder
	sb.WriteString(line(t.Columns, HeaderStyle))
	sb.WriteString("\n")
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += 2 * (len(widths) - 1)
	}
	sb.WriteString(Subtle.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")
	for i, row := range t.Rows {
		style := CellStyle
		if i == len(t.Rows)-1 {
			style = LastRowStyle
		}
		sb.WriteString(line(row, style))
		sb.WriteString("\n")
	}
	return sb.String()
}
