package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/oxygene76/exoscope/internal/types"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

// renderRows lays out ranked rows; offset numbers them from their position
// in the full ranking.
func renderRows(rows []types.DerivedRow, offset int) string {
	if len(rows) == 0 {
		return mutedStyle.Render("(no planets)")
	}
	t := newTable("#", "PLANET", "HOST", "DIST (pc)", "SNR", "B", "STAR", "HZ (AU)", "IN HZ")
	for i, r := range rows {
		t.Row(
			fmt.Sprintf("%d", offset+i+1),
			r.Name,
			r.Host,
			fmt.Sprintf("%.2f", r.Distance),
			fmt.Sprintf("%.2f", r.SNR),
			fmt.Sprintf("%.1f", r.MagneticProxy),
			string(r.StarType),
			formatZone(r.HZInner, r.HZOuter),
			yesNo(r.InHabitableZone),
		)
	}
	return t.String()
}

func renderSummary(s *types.Summary) string {
	if s == nil {
		return mutedStyle.Render("SNR statistics: undefined (empty result set)")
	}
	std := "undefined"
	if s.StdDev != nil {
		std = fmt.Sprintf("%.3f", *s.StdDev)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("SNR statistics"))
	b.WriteByte('\n')
	t := newTable("COUNT", "MEAN", "MEDIAN", "STD", "MIN", "MAX").Row(
		fmt.Sprintf("%d", s.Count),
		fmt.Sprintf("%.3f", s.Mean),
		fmt.Sprintf("%.3f", s.Median),
		std,
		fmt.Sprintf("%.3f", s.Min),
		fmt.Sprintf("%.3f", s.Max),
	)
	b.WriteString(t.String())
	return b.String()
}

func formatZone(inner, outer *float64) string {
	if inner == nil || outer == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f-%.2f", *inner, *outer)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
