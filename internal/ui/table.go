// Package ui renders tables for the terminal.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/latecalc/internal/table"
)

// Styles holds the lipgloss styles used by View.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Sep    lipgloss.Style
	// Highlight, when set, renders rows for which it returns true with Marked.
	Highlight func(table.Row) bool
	Marked    lipgloss.Style
}

// DefaultStyles returns the styles used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Underline(true),
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Sep:    lipgloss.NewStyle().Faint(true),
		Marked: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#e53935")),
	}
}

// View renders t with a title line and a separator under the header.
// An empty table renders as an empty string.
func View(title string, t table.Table, styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	records := t.Records()
	widths := make([]int, len(t.Columns))
	for _, rec := range records {
		for i, cell := range rec {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	// Padding(0, 1) adds one cell on each side.
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(styles.Title.Render(title))
		sb.WriteString("\n")
	}

	writeRow(&sb, records[0], widths, styles.Header, styles.Sep)

	var rule []string
	for _, w := range widths {
		rule = append(rule, strings.Repeat("─", w))
	}
	sb.WriteString(styles.Sep.Render(strings.Join(rule, "┼")))
	sb.WriteString("\n")

	for i, rec := range records[1:] {
		style := styles.Cell
		if styles.Highlight != nil && styles.Highlight(t.Rows[i]) {
			style = styles.Marked
		}
		writeRow(&sb, rec, widths, style, styles.Sep)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string, widths []int, style, sep lipgloss.Style) {
	for i, cell := range cells {
		sb.WriteString(style.Width(widths[i]).Render(cell))
		if i < len(cells)-1 {
			sb.WriteString(sep.Render("│"))
		}
	}
	sb.WriteString("\n")
}
