// Package standings turns match results into a ranked league table.
//
// Everything in this package is a pure function of its arguments. There is no
// I/O and no shared state, so calls may run concurrently on the same inputs.
package standings

// Options configures a Compute run.
type Options struct {
	// Points awards points per result. The zero value means DefaultPointSystem.
	Points PointSystem
	Zones  ZoneConfig
	// Previous is the last computed table, used to fill PreviousPosition.
	Previous []Entry
}

// Summary holds the counters shown alongside a table.
type Summary struct {
	TeamCount        int `json:"team_count" msgpack:"team_count"`
	CompletedMatches int `json:"completed_matches" msgpack:"completed_matches"`
	TotalGoals       int `json:"total_goals" msgpack:"total_goals"`
	SkippedMatches   int `json:"skipped_matches" msgpack:"skipped_matches"`
}

// Table is a computed standings table ordered by position.
type Table struct {
	Entries []Entry `json:"entries" msgpack:"entries"`
	Summary Summary `json:"summary" msgpack:"summary"`
}

// Leader returns the entry in first place.
func (t Table) Leader() (Entry, bool) {
	if len(t.Entries) == 0 {
		return Entry{}, false
	}
	return t.Entries[0], true
}

// Changed reports whether any team moved relative to its previous position,
// or whether the table has no previous snapshot to compare with.
func (t Table) Changed() bool {
	for _, e := range t.Entries {
		if e.PreviousPosition != e.Position {
			return true
		}
	}
	return false
}

// Compute runs aggregation, form tracking, ranking and zone classification.
// matches must be ordered oldest to newest for RecentForm to be meaningful.
func Compute(matches []Match, teams []Team, opts Options) Table {
	points := opts.Points
	if points.IsZero() {
		points = DefaultPointSystem()
	}

	tally := Aggregate(matches, teams)
	TrackForm(tally.Counted, tally.Entries)

	ranked := Rank(tally.List(), points)
	ApplyPrevious(ranked, opts.Previous)
	entries := Classify(ranked, opts.Zones)

	summary := Summary{
		TeamCount:        len(entries),
		CompletedMatches: len(tally.Counted),
		SkippedMatches:   tally.Skipped,
	}
	for _, e := range entries {
		summary.TotalGoals += e.GoalsFor
	}
	return Table{Entries: entries, Summary: summary}
}
