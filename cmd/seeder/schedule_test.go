package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/mauv0809/league-standings/internal/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobin(t *testing.T) {
	tests := []struct {
		name   string
		teams  []string
		rounds int
		games  int
	}{
		{"even", []string{"a", "b", "c", "d"}, 6, 12},
		{"odd gets byes", []string{"a", "b", "c", "d", "e"}, 10, 20},
		{"two teams", []string{"a", "b"}, 2, 2},
		{"one team", []string{"a"}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			season := roundRobin(tt.teams)
			require.Len(t, season, tt.rounds)

			pairings := map[[2]string]int{}
			games := 0
			for r, round := range season {
				seen := map[string]bool{}
				for _, f := range round {
					assert.Equal(t, r+1, f.round)
					assert.NotEqual(t, f.home, f.away)
					assert.False(t, seen[f.home] || seen[f.away], "a team plays at most once per round")
					seen[f.home], seen[f.away] = true, true
					pairings[[2]string{f.home, f.away}]++
					games++
				}
			}
			assert.Equal(t, tt.games, games)
			for pair, n := range pairings {
				assert.Equal(t, 1, n, "%v meet once at each venue", pair)
			}
		})
	}
}

func TestRoundRobin_DoesNotModifyInput(t *testing.T) {
	teams := []string{"a", "b", "c", "d"}
	roundRobin(teams)
	assert.Equal(t, []string{"a", "b", "c", "d"}, teams)
}

func TestBuildMatches(t *testing.T) {
	season := roundRobin([]string{"a", "b", "c", "d"})
	start := time.Date(2025, 8, 2, 15, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	matches := buildMatches(rng, season, start, 4)
	require.Len(t, matches, 12)

	completed := 0
	for _, m := range matches {
		assert.NotEmpty(t, m.ID)
		if m.IsCompleted() {
			completed++
			assert.GreaterOrEqual(t, *m.HomeScore, 0)
			assert.GreaterOrEqual(t, *m.AwayScore, 0)
		} else {
			assert.Equal(t, standings.StatusScheduled, m.Status)
			assert.Nil(t, m.HomeScore)
		}
	}
	assert.Equal(t, 8, completed)
	assert.True(t, matches[0].Date.Equal(start))
	assert.True(t, matches[len(matches)-1].Date.Equal(start.AddDate(0, 0, 7*5)))

	table := standings.Compute(matches, []standings.Team{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}, {ID: "d", Name: "D"}}, standings.Options{})
	assert.Equal(t, 8, table.Summary.CompletedMatches)
	for _, e := range table.Entries {
		assert.Equal(t, 4, e.Played)
	}
}
