// Package ui renders the post-run terminal views.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seqbench/internal/graphs"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("228")) // Yellow
	summaryNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")) // Purple
	summaryDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey
)

// RenderSummary builds a per-graph overview of a finished run: sample count
// and the value range in the graph's unit.
func RenderSummary(gs []*graphs.Graph) string {
	var b strings.Builder

	b.WriteString(summaryHeaderStyle.Render("Benchmark run summary"))
	b.WriteString("\n")

	if len(gs) == 0 {
		b.WriteString(summaryDimStyle.Render("no graphs recorded"))
		return b.String()
	}

	width := 0
	for _, g := range gs {
		if len(g.Name) > width {
			width = len(g.Name)
		}
	}

	for _, g := range gs {
		lo, hi := valueRange(g)
		name := summaryNameStyle.Render(fmt.Sprintf("%-*s", width, g.Name))
		detail := fmt.Sprintf("%d samples, %d..%d %s", len(g.Samples), lo, hi, g.Unit)
		b.WriteString(fmt.Sprintf("  %s  %s\n", name, summaryDimStyle.Render(detail)))
	}

	return b.String()
}

func valueRange(g *graphs.Graph) (lo, hi uint64) {
	for i, s := range g.Samples {
		if i == 0 || s.Value < lo {
			lo = s.Value
		}
		if s.Value > hi {
			hi = s.Value
		}
	}
	return lo, hi
}
