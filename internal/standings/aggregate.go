package standings

import "slices"

// Tally is the unranked result of folding matches into per-team counters.
type Tally struct {
	// Entries holds one entry per known team, keyed by team ID.
	Entries map[string]*Entry
	// Order is the team IDs in the order they were supplied.
	Order []string
	// Counted is the subset of matches that contributed, in input order.
	Counted []Match
	// Skipped counts matches flagged completed that could not be counted,
	// either because a score is missing or a team is unknown.
	Skipped int
}

// Aggregate folds completed matches into played/won/drawn/lost and goal counters.
// Every team gets an entry, even without matches. Points are left at zero; Rank
// derives them so the same tally can be scored under different point systems.
func Aggregate(matches []Match, teams []Team) *Tally {
	t := &Tally{
		Entries: make(map[string]*Entry, len(teams)),
		Order:   make([]string, 0, len(teams)),
	}
	for _, team := range teams {
		if _, ok := t.Entries[team.ID]; ok {
			continue
		}
		t.Entries[team.ID] = &Entry{
			TeamID:       team.ID,
			TeamName:     team.Name,
			DisplayColor: team.DisplayColor,
			RecentForm:   []Outcome{},
			Zone:         ZoneNone,
		}
		t.Order = append(t.Order, team.ID)
	}

	for _, m := range matches {
		if m.Status != StatusCompleted {
			continue
		}
		home, okHome := t.Entries[m.HomeTeamID]
		away, okAway := t.Entries[m.AwayTeamID]
		if !m.IsCompleted() || !okHome || !okAway {
			t.Skipped++
			continue
		}
		hg, ag := *m.HomeScore, *m.AwayScore

		home.Played++
		away.Played++
		home.GoalsFor += hg
		home.GoalsAgainst += ag
		away.GoalsFor += ag
		away.GoalsAgainst += hg

		switch {
		case hg > ag:
			home.Won++
			away.Lost++
		case hg < ag:
			away.Won++
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
		}
		t.Counted = append(t.Counted, m)
	}
	return t
}

// List returns copies of the entries in team input order.
func (t *Tally) List() []Entry {
	out := make([]Entry, 0, len(t.Order))
	for _, id := range t.Order {
		e := *t.Entries[id]
		e.RecentForm = slices.Clone(e.RecentForm)
		out = append(out, e)
	}
	return out
}

// outcomes returns the result of m for the home and away side.
func outcomes(m Match) (home, away Outcome) {
	hg, ag := *m.HomeScore, *m.AwayScore
	switch {
	case hg > ag:
		return Win, Loss
	case hg < ag:
		return Loss, Win
	default:
		return Draw, Draw
	}
}
