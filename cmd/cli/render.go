package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mauv0809/league-standings/internal/refresh"
	"github.com/mauv0809/league-standings/internal/standings"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
	promotionStyle  = cellStyle.Foreground(lipgloss.Color("42"))
	playoffStyle    = cellStyle.Foreground(lipgloss.Color("39"))
	relegationStyle = cellStyle.Foreground(lipgloss.Color("196"))
)

// renderTable draws the standings with zone colouring.
func renderTable(snap refresh.Snapshot, stale bool) string {
	rows := make([][]string, 0, len(snap.Table.Entries))
	for _, e := range snap.Table.Entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Position),
			movement(e),
			e.TeamName,
			strconv.Itoa(e.Played),
			strconv.Itoa(e.Won),
			strconv.Itoa(e.Drawn),
			strconv.Itoa(e.Lost),
			fmt.Sprintf("%d:%d", e.GoalsFor, e.GoalsAgainst),
			fmt.Sprintf("%+d", e.GoalDifference),
			strconv.Itoa(e.Points),
			e.FormString(),
		})
	}
	entries := snap.Table.Entries

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "", "Team", "P", "W", "D", "L", "Goals", "GD", "Pts", "Form").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(entries) {
				return cellStyle
			}
			switch entries[row].Zone {
			case standings.ZonePromotion:
				return promotionStyle
			case standings.ZonePlayoff:
				return playoffStyle
			case standings.ZoneRelegation:
				return relegationStyle
			default:
				return cellStyle
			}
		})

	title := fmt.Sprintf("%s (computed %s)", snap.LeagueName, snap.ComputedAt.Local().Format("Mon 02 Jan 15:04"))
	if stale {
		title += " [stale]"
	}
	sum := snap.Table.Summary
	footer := fmt.Sprintf("%d teams, %d matches, %d goals", sum.TeamCount, sum.CompletedMatches, sum.TotalGoals)
	if sum.SkippedMatches > 0 {
		footer += fmt.Sprintf(", %d results not counted", sum.SkippedMatches)
	}
	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(title), t.String(), cellStyle.Render(footer))
}

func movement(e standings.Entry) string {
	switch m := e.Movement(); {
	case e.PreviousPosition == 0:
		return ""
	case m > 0:
		return fmt.Sprintf("▲%d", m)
	case m < 0:
		return fmt.Sprintf("▼%d", -m)
	default:
		return "="
	}
}
