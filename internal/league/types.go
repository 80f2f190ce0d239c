package league

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/mauv0809/league-standings/internal/standings"
)

// ErrLeagueNotFound is returned when a league ID does not exist.
var ErrLeagueNotFound = errors.New("league not found")

// store handles all database operations for leagues.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// League is a competition with its own scoring and zone rules.
type League struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	// Points is nil when the league uses the configured default point system.
	Points    *standings.PointSystem `json:"points,omitempty"`
	Zones     standings.ZoneConfig   `json:"zones"`
	CreatedAt int64                  `json:"created_at"`
}

// MatchResult is the payload of a match-result event.
type MatchResult struct {
	LeagueID string          `json:"league_id" msgpack:"league_id" validate:"required"`
	Match    standings.Match `json:"match" msgpack:"match"`
}
