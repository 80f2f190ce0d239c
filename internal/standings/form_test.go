package standings

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackForm(t *testing.T) {
	t.Run("most recent first", func(t *testing.T) {
		tally := Aggregate(abcMatches(), abcTeams())
		TrackForm(tally.Counted, tally.Entries)

		assert.Equal(t, []Outcome{Win, Win}, tally.Entries["a"].RecentForm)
		assert.Equal(t, []Outcome{Draw, Loss}, tally.Entries["b"].RecentForm)
		assert.Equal(t, []Outcome{Loss, Draw}, tally.Entries["c"].RecentForm)
	})

	t.Run("window is bounded", func(t *testing.T) {
		var matches []Match
		// Seven results for A: L L W W D W L (oldest first).
		results := [][2]int{{0, 1}, {0, 2}, {1, 0}, {2, 0}, {1, 1}, {3, 0}, {0, 1}}
		for i, r := range results {
			matches = append(matches, completed(fmt.Sprintf("m%d", i), "a", "b", r[0], r[1]))
		}
		tally := Aggregate(matches, abcTeams())
		TrackForm(tally.Counted, tally.Entries)

		assert.Equal(t, []Outcome{Loss, Win, Draw, Win, Win}, tally.Entries["a"].RecentForm)
		assert.Equal(t, []Outcome{Win, Loss, Draw, Loss, Loss}, tally.Entries["b"].RecentForm)
		assert.Empty(t, tally.Entries["c"].RecentForm)
	})

	t.Run("ignores matches that do not count", func(t *testing.T) {
		tally := Aggregate(nil, abcTeams())
		TrackForm([]Match{
			{ID: "m1", HomeTeamID: "a", AwayTeamID: "b", Status: StatusLive, HomeScore: score(1), AwayScore: score(0)},
			completed("m2", "a", "ghost", 1, 0),
		}, tally.Entries)

		assert.Empty(t, tally.Entries["a"].RecentForm)
		assert.Empty(t, tally.Entries["b"].RecentForm)
	})
}
