package ui_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/latecalc/internal/table"
	"github.com/Tiliavir/latecalc/internal/ui"
)

func TestViewEmpty(t *testing.T) {
	assert.Equal(t, "", ui.View("Submissions", table.New("a", "b"), ui.DefaultStyles()))
}

func TestView(t *testing.T) {
	tbl := table.New("Student Name", "Late Flag").
		Append("Ada Lovelace", "Available").
		Append("Alan Turing", "Over-Full")

	out := ui.View("CS101 HW1", tbl, ui.DefaultStyles())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "CS101 HW1")
	assert.Contains(t, lines[1], "Student Name")
	assert.Contains(t, lines[3], "Ada Lovelace")
	assert.Contains(t, lines[4], "Over-Full")
	// Every body line has the same visible width.
	assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(lines[3]))
	assert.Equal(t, lipgloss.Width(lines[3]), lipgloss.Width(lines[4]))
}
