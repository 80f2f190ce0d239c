package standings

import (
	"slices"
	"sort"
)

// Rank scores the entries under points and orders them into a table.
//
// Order is points, goal difference, goals for (all descending), then team name
// and team ID ascending so the table does not depend on input order. Positions
// are 1-based and never shared. The input slice is not modified.
func Rank(entries []Entry, points PointSystem) []Entry {
	ranked := make([]Entry, len(entries))
	for i, e := range entries {
		e.Points = e.Won*points.Win + e.Drawn*points.Draw + e.Lost*points.Loss
		e.GoalDifference = e.GoalsFor - e.GoalsAgainst
		e.RecentForm = slices.Clone(e.RecentForm)
		ranked[i] = e
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

func less(a, b Entry) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	if a.TeamName != b.TeamName {
		return a.TeamName < b.TeamName
	}
	return a.TeamID < b.TeamID
}

// ApplyPrevious copies each team's position in previous into PreviousPosition.
// Teams missing from previous keep a PreviousPosition of zero.
func ApplyPrevious(ranked []Entry, previous []Entry) {
	if len(previous) == 0 {
		return
	}
	prev := make(map[string]int, len(previous))
	for _, e := range previous {
		prev[e.TeamID] = e.Position
	}
	for i := range ranked {
		ranked[i].PreviousPosition = prev[ranked[i].TeamID]
	}
}
