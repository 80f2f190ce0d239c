package refresh

import (
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/standings"
)

// Store defines the league reads required by the coordinator.
type Store interface {
	GetLeague(leagueID string) (league.League, error)
	ListLeagues() ([]league.League, error)
	GetTeams(leagueID string) ([]standings.Team, error)
	GetMatches(leagueID string) ([]standings.Match, error)
}
