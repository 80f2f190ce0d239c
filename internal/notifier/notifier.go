package notifier

import (
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/standings"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// Posts the full table to the channel
	SendStandings(leagueName string, table standings.Table, dryRun bool) error
	// Posts the movers and the table after positions changed
	SendStandingsUpdate(leagueName string, table standings.Table, dryRun bool) error

	// For formatting responses for slash commands
	FormatStandingsResponse(leagueName string, table standings.Table) (any, error)
	FormatLeagueListResponse(leagues []league.League) (any, error)
	FormatLeagueNotFoundResponse(query string) (any, error)
}
