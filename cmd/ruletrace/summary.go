package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"ruletrace/internal/trace"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	summaryCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderSummary prints the invocation histogram as a bordered table, most
// frequently entered rules first.
func renderSummary(w io.Writer, rows []trace.NameCount, useColor bool) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RULE", "COUNT").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if useColor && row == 0 {
				return summaryHeaderStyle.Padding(0, 1)
			}
			return summaryCellStyle
		})

	for _, r := range trace.Sorted(rows) {
		t.Row(r.Name, strconv.FormatUint(r.Count, 10))
	}

	fmt.Fprintln(w, t.Render())
}
