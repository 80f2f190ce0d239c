package league

import "github.com/mauv0809/league-standings/internal/standings"

// LeagueStore defines the interface for reading and writing league data.
type LeagueStore interface {
	CreateLeague(league League) error
	GetLeague(leagueID string) (League, error)
	ListLeagues() ([]League, error)
	UpsertTeams(leagueID string, teams []standings.Team) error
	GetTeams(leagueID string) ([]standings.Team, error)
	UpsertMatch(leagueID string, match standings.Match) error
	UpsertMatches(leagueID string, matches []standings.Match) error
	// GetMatches returns the league's matches ordered oldest to newest.
	GetMatches(leagueID string) ([]standings.Match, error)
	Clear()
	ClearLeague(leagueID string)
}
