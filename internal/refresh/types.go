package refresh

import (
	"sync"
	"time"

	"github.com/mauv0809/league-standings/internal/metrics"
	"github.com/mauv0809/league-standings/internal/pubsub"
	"github.com/mauv0809/league-standings/internal/standings"
	"golang.org/x/sync/singleflight"
)

// Snapshot is a computed table together with the league it belongs to.
type Snapshot struct {
	LeagueID   string          `json:"league_id" msgpack:"league_id"`
	LeagueName string          `json:"league_name" msgpack:"league_name"`
	Table      standings.Table `json:"table" msgpack:"table"`
	// ComputedAt is when the league data was read.
	ComputedAt time.Time       `json:"computed_at" msgpack:"computed_at"`
}

// IsZero reports whether no table has been computed yet.
func (s Snapshot) IsZero() bool {
	return s.ComputedAt.IsZero()
}

// Coordinator runs at most one fetch plus recompute per league at a time and
// keeps the last good snapshot of each league.
type Coordinator struct {
	store     Store
	publisher pubsub.PubSubClient
	metrics   metrics.Metrics
	defaults  standings.Options

	group singleflight.Group

	mu     sync.RWMutex
	latest map[string]Snapshot
	// Forget bumps a league's counter and ForgetAll bumps epoch. A recompute
	// only keeps its snapshot if the generation it started under still holds.
	epoch       uint64
	generations map[string]uint64
}

type generation struct {
	epoch  uint64
	league uint64
}
