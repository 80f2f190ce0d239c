package standings

// TrackForm records the latest outcomes for each team in entries.
//
// matches must be ordered oldest to newest; the slice order is the only notion
// of time used here. Each outcome is pushed to the front of the team's
// RecentForm and the window is cut to FormLength. Matches that do not count
// (not completed, missing score, unknown team) are ignored.
func TrackForm(matches []Match, entries map[string]*Entry) {
	for _, m := range matches {
		if !m.IsCompleted() {
			continue
		}
		home, okHome := entries[m.HomeTeamID]
		away, okAway := entries[m.AwayTeamID]
		if !okHome || !okAway {
			continue
		}
		h, a := outcomes(m)
		home.RecentForm = pushForm(home.RecentForm, h)
		away.RecentForm = pushForm(away.RecentForm, a)
	}
}

func pushForm(form []Outcome, o Outcome) []Outcome {
	n := len(form) + 1
	if n > FormLength {
		n = FormLength
	}
	next := make([]Outcome, n)
	next[0] = o
	copy(next[1:], form)
	return next
}
