package slack

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mauv0809/league-standings/internal/standings"
	"github.com/slack-go/slack"
)

const (
	// Section text is capped at 3000 characters, so long tables are split.
	rowsPerBlock  = 20
	teamNameWidth = 18
)

const rowFormat = "%3v %-4s %-*s %2v %2v %2v %2v %6s %4s %4v  %-5s  %s"

// tableHeader shares rowFormat so the column titles line up with the rows.
var tableHeader = fmt.Sprintf(rowFormat, "Pos", "", teamNameWidth, "Team", "P", "W", "D", "L", "GF:GA", "GD", "Pts", "Form", "Zone")

// tableBlocks renders the entries as monospaced rows.
func tableBlocks(entries []standings.Entry) []slack.Block {
	var blocks []slack.Block
	for start := 0; start < len(entries); start += rowsPerBlock {
		end := min(start+rowsPerBlock, len(entries))
		rows := []string{tableHeader}
		for _, e := range entries[start:end] {
			rows = append(rows, formatRow(e))
		}
		text := "```\n" + strings.Join(rows, "\n") + "\n```"
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
	}
	return blocks
}

func formatRow(e standings.Entry) string {
	return fmt.Sprintf(rowFormat,
		e.Position,
		movement(e),
		teamNameWidth, truncate(e.TeamName, teamNameWidth),
		e.Played, e.Won, e.Drawn, e.Lost,
		fmt.Sprintf("%d:%d", e.GoalsFor, e.GoalsAgainst),
		signed(e.GoalDifference),
		e.Points,
		e.FormString(),
		zoneLabel(e.Zone),
	)
}

func summaryBlock(table standings.Table) slack.Block {
	sum := table.Summary
	text := fmt.Sprintf("%d teams • %d matches played • %d goals", sum.TeamCount, sum.CompletedMatches, sum.TotalGoals)
	if sum.SkippedMatches > 0 {
		text += fmt.Sprintf(" • %d results not counted", sum.SkippedMatches)
	}
	return slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", text, true, false))
}

// movement renders the position change as ▲n, ▼n or "=". Teams without a
// previous position get no marker.
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

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func zoneLabel(z standings.Zone) string {
	switch z {
	case standings.ZonePromotion:
		return "PROM"
	case standings.ZonePlayoff:
		return "PO"
	case standings.ZoneRelegation:
		return "REL"
	default:
		return ""
	}
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "…"
}
