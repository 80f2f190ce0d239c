package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/metrics"
	"github.com/mauv0809/league-standings/internal/pubsub"
	"github.com/mauv0809/league-standings/internal/standings"
	"golang.org/x/sync/errgroup"
)

// maxParallelRefreshes bounds RefreshAll.
const maxParallelRefreshes = 4

// New creates a Coordinator. defaults supplies the point system and zones for
// leagues that do not configure their own; defaults.Previous is ignored.
func New(store Store, publisher pubsub.PubSubClient, metrics metrics.Metrics, defaults standings.Options) *Coordinator {
	defaults.Previous = nil
	return &Coordinator{
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		defaults:  defaults,
		latest:      make(map[string]Snapshot),
		generations: make(map[string]uint64),
	}
}

// Refresh fetches the league and recomputes its table. A call made while a
// refresh of the same league is in flight joins it instead of starting another.
//
// On failure the previous snapshot (possibly zero) is returned with the error,
// and stays in place. A cancelled ctx only stops this caller from waiting.
func (c *Coordinator) Refresh(ctx context.Context, leagueID string) (Snapshot, error) {
	c.mu.RLock()
	gen := c.generationLocked(leagueID)
	c.mu.RUnlock()

	// A refresh started before Forget is not joined by later callers.
	key := fmt.Sprintf("%s@%d.%d", leagueID, gen.epoch, gen.league)
	var led bool
	ch := c.group.DoChan(key, func() (any, error) {
		led = true
		return c.recompute(leagueID, gen)
	})

	select {
	case res := <-ch:
		if res.Shared && !led {
			c.metrics.IncCoalescedRefreshes()
		}
		snap, _ := res.Val.(Snapshot)
		return snap, res.Err
	case <-ctx.Done():
		snap, _ := c.Latest(leagueID)
		return snap, ctx.Err()
	}
}

// RefreshSince refreshes until the snapshot's data was read at or after since.
// Writers use it so that joining a refresh which began before their write
// cannot hand back a table that misses it.
func (c *Coordinator) RefreshSince(ctx context.Context, leagueID string, since time.Time) (Snapshot, error) {
	for {
		snap, err := c.Refresh(ctx, leagueID)
		if err != nil || !snap.ComputedAt.Before(since) {
			return snap, err
		}
		log.Debug("Joined a refresh that predates the write, refreshing again", "leagueID", leagueID)
	}
}

// Current returns the retained snapshot, refreshing first if there is none.
func (c *Coordinator) Current(ctx context.Context, leagueID string) (Snapshot, error) {
	if snap, ok := c.Latest(leagueID); ok {
		return snap, nil
	}
	return c.Refresh(ctx, leagueID)
}

// Latest returns the last good snapshot without fetching.
func (c *Coordinator) Latest(leagueID string) (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.latest[leagueID]
	return snap, ok
}

// Forget drops the retained snapshot of a league.
func (c *Coordinator) Forget(leagueID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.latest, leagueID)
	c.generations[leagueID]++
}

// ForgetAll drops every retained snapshot.
func (c *Coordinator) ForgetAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest = make(map[string]Snapshot)
	c.generations = make(map[string]uint64)
	c.epoch++
}

func (c *Coordinator) generationLocked(leagueID string) generation {
	return generation{epoch: c.epoch, league: c.generations[leagueID]}
}

// RefreshAll refreshes every league, a few at a time. It returns the joined
// errors of the leagues that failed.
func (c *Coordinator) RefreshAll(ctx context.Context) error {
	leagues, err := c.store.ListLeagues()
	if err != nil {
		return fmt.Errorf("listing leagues: %w", err)
	}
	log.Info("Refreshing all leagues", "count", len(leagues))

	errs := make([]error, len(leagues))
	var g errgroup.Group
	g.SetLimit(maxParallelRefreshes)
	for i, l := range leagues {
		g.Go(func() error {
			_, errs[i] = c.Refresh(ctx, l.ID)
			return nil
		})
	}
	g.Wait()
	return errors.Join(errs...)
}

func (c *Coordinator) recompute(leagueID string, gen generation) (Snapshot, error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveRecomputeDuration(time.Since(start).Seconds())
	}()

	previous, hasPrevious := c.Latest(leagueID)

	l, err := c.store.GetLeague(leagueID)
	if err != nil {
		return c.fail(previous, fmt.Errorf("loading league %s: %w", leagueID, err))
	}
	teams, err := c.store.GetTeams(leagueID)
	if err != nil {
		return c.fail(previous, fmt.Errorf("loading teams for %s: %w", leagueID, err))
	}
	matches, err := c.store.GetMatches(leagueID)
	if err != nil {
		return c.fail(previous, fmt.Errorf("loading matches for %s: %w", leagueID, err))
	}

	opts := c.options(l)
	if hasPrevious {
		opts.Previous = previous.Table.Entries
	}
	table := standings.Compute(matches, teams, opts)
	moved := hasPrevious && table.Changed()
	if hasPrevious && !moved {
		carryMovement(table.Entries, previous.Table.Entries)
	}

	snap := Snapshot{
		LeagueID:   l.ID,
		LeagueName: l.Name,
		Table:      table,
		ComputedAt: start.UTC(),
	}
	c.mu.Lock()
	current := c.generationLocked(leagueID) == gen
	if current {
		c.latest[leagueID] = snap
	}
	c.mu.Unlock()
	c.metrics.IncRecomputes()
	if !current {
		log.Info("League was cleared during recompute, discarding standings", "leagueID", leagueID)
		return snap, nil
	}

	log.Info("Recomputed standings",
		"leagueID", leagueID,
		"teams", table.Summary.TeamCount,
		"completed_matches", table.Summary.CompletedMatches,
		"total_goals", table.Summary.TotalGoals,
		"moved", moved,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if table.Summary.SkippedMatches > 0 {
		log.Warn("Completed matches left out of the table", "leagueID", leagueID, "skipped", table.Summary.SkippedMatches)
	}
	if err := opts.Zones.Validate(table.Summary.TeamCount); err != nil {
		log.Warn("Zone configuration overlaps; earlier zones take precedence", "leagueID", leagueID, "error", err)
	}

	if moved {
		if err := c.publisher.SendMessage(pubsub.EventStandingsUpdated, snap); err != nil {
			log.Error("Failed to publish standings update", "error", err, "leagueID", leagueID)
		}
	}
	return snap, nil
}

func (c *Coordinator) fail(previous Snapshot, err error) (Snapshot, error) {
	c.metrics.IncRecomputeFailures()
	if errors.Is(err, league.ErrLeagueNotFound) {
		log.Warn("Refresh for unknown league", "error", err)
	} else {
		log.Error("Refresh failed, keeping previous standings", "error", err, "has_previous", !previous.IsZero())
	}
	return previous, err
}

// options picks the league's own rules, falling back to the defaults.
func (c *Coordinator) options(l league.League) standings.Options {
	opts := c.defaults
	if l.Points != nil {
		opts.Points = *l.Points
	}
	if l.Zones != (standings.ZoneConfig{}) {
		opts.Zones = l.Zones
	}
	return opts
}

// carryMovement keeps the last known movement when a recompute moved nobody,
// so position arrows survive refreshes that change nothing.
func carryMovement(entries []standings.Entry, previous []standings.Entry) {
	prev := make(map[string]int, len(previous))
	for _, e := range previous {
		prev[e.TeamID] = e.PreviousPosition
	}
	for i := range entries {
		if p, ok := prev[entries[i].TeamID]; ok {
			entries[i].PreviousPosition = p
		}
	}
}
