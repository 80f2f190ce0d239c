package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mauv0809/league-standings/internal/standings"
)

type fixture struct {
	home, away string
	round      int
}

// roundRobin pairs every team with every other once per half using the
// circle method. The second half repeats the first with home and away swapped.
func roundRobin(teamIDs []string) [][]fixture {
	if len(teamIDs) < 2 {
		return nil
	}
	ids := append([]string(nil), teamIDs...)
	if len(ids)%2 != 0 {
		ids = append(ids, "") // bye
	}
	n := len(ids)

	firstHalf := make([][]fixture, n-1)
	for r := 0; r < n-1; r++ {
		var round []fixture
		for j := 0; j < n/2; j++ {
			home, away := ids[j], ids[n-1-j]
			if home == "" || away == "" {
				continue
			}
			// Alternate the fixed team's venue so it is not always at home.
			if j == 0 && r%2 == 1 {
				home, away = away, home
			}
			round = append(round, fixture{home: home, away: away, round: r + 1})
		}
		firstHalf[r] = round

		last := ids[n-1]
		copy(ids[2:], ids[1:n-1])
		ids[1] = last
	}

	season := firstHalf
	for r, round := range firstHalf {
		swapped := make([]fixture, len(round))
		for i, f := range round {
			swapped[i] = fixture{home: f.away, away: f.home, round: r + n}
		}
		season = append(season, swapped)
	}
	return season
}

// samplePoisson draws a goal count with the given mean.
func samplePoisson(rng *rand.Rand, lambda float64) int {
	l := math.Exp(-lambda)
	p := 1.0
	k := 0
	for p > l {
		k++
		p *= rng.Float64()
	}
	return k - 1
}

// buildMatches turns the season into matches, one round per week from start.
// Rounds up to playedRounds get scores; later ones stay scheduled.
func buildMatches(rng *rand.Rand, season [][]fixture, start time.Time, playedRounds int) []standings.Match {
	var matches []standings.Match
	for _, round := range season {
		date := start.AddDate(0, 0, 7*(round[0].round-1))
		for _, f := range round {
			m := standings.Match{
				ID:         uuid.NewString(),
				HomeTeamID: f.home,
				AwayTeamID: f.away,
				Status:     standings.StatusScheduled,
				Date:       date,
			}
			if f.round <= playedRounds {
				home, away := samplePoisson(rng, 1.5), samplePoisson(rng, 1.1)
				m.HomeScore, m.AwayScore = &home, &away
				m.Status = standings.StatusCompleted
			}
			matches = append(matches, m)
		}
	}
	return matches
}
