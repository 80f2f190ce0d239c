package league_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/league-standings/internal/database"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (league.LeagueStore, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return league.New(db), db, teardown
}

func intPtr(n int) *int { return &n }

func seedLeague(t *testing.T, store league.LeagueStore) {
	t.Helper()
	require.NoError(t, store.CreateLeague(league.League{
		ID:    "l1",
		Name:  "Sunday League",
		Zones: standings.ZoneConfig{PromotionSpots: 1, RelegationSpots: 1},
	}))
	require.NoError(t, store.UpsertTeams("l1", []standings.Team{
		{ID: "a", Name: "Athletic", DisplayColor: "#ff0000"},
		{ID: "b", Name: "Borough"},
		{ID: "c", Name: "City"},
	}))
}

func TestCreateAndGetLeague(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	t.Run("default points are stored as null", func(t *testing.T) {
		require.NoError(t, store.CreateLeague(league.League{ID: "l1", Name: "First"}))

		got, err := store.GetLeague("l1")
		require.NoError(t, err)
		assert.Equal(t, "First", got.Name)
		assert.Nil(t, got.Points)
		assert.NotZero(t, got.CreatedAt)
	})

	t.Run("upsert updates rules", func(t *testing.T) {
		points := standings.PointSystem{Win: 2, Draw: 1, Loss: 0}
		zones := standings.ZoneConfig{PromotionSpots: 2, PlayoffSpots: 4, RelegationSpots: 3}
		require.NoError(t, store.CreateLeague(league.League{ID: "l1", Name: "Renamed", Points: &points, Zones: zones}))

		got, err := store.GetLeague("l1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		require.NotNil(t, got.Points)
		assert.Equal(t, points, *got.Points)
		assert.Equal(t, zones, got.Zones)
	})

	t.Run("missing league", func(t *testing.T) {
		_, err := store.GetLeague("nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, league.ErrLeagueNotFound))
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, store.CreateLeague(league.League{ID: "l0", Name: "Another"}))
		leagues, err := store.ListLeagues()
		require.NoError(t, err)
		require.Len(t, leagues, 2)
		assert.Equal(t, "Another", leagues[0].Name)
		assert.Equal(t, "Renamed", leagues[1].Name)
	})
}

func TestUpsertAndGetTeams(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedLeague(t, store)

	require.NoError(t, store.UpsertTeams("l1", []standings.Team{{ID: "b", Name: "Borough United", DisplayColor: "#0000ff"}}))

	teams, err := store.GetTeams("l1")
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, standings.Team{ID: "a", Name: "Athletic", DisplayColor: "#ff0000"}, teams[0])
	assert.Equal(t, standings.Team{ID: "b", Name: "Borough United", DisplayColor: "#0000ff"}, teams[1])
	assert.Equal(t, "", teams[2].DisplayColor)

	empty, err := store.GetTeams("other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpsertTeams_UnknownLeagueFails(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.UpsertTeams("ghost", []standings.Team{{ID: "a", Name: "A"}})
	assert.Error(t, err, "foreign key should reject teams without a league")
}

func TestUpsertAndGetMatches(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedLeague(t, store)

	day := time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpsertMatches("l1", []standings.Match{
		{ID: "m2", HomeTeamID: "b", AwayTeamID: "c", Status: standings.StatusScheduled, Date: day.AddDate(0, 0, 7)},
		{ID: "m1", HomeTeamID: "a", AwayTeamID: "b", HomeScore: intPtr(2), AwayScore: intPtr(1), Status: standings.StatusCompleted, Date: day},
	}))

	matches, err := store.GetMatches("l1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "m1", matches[0].ID, "matches are returned oldest first")
	assert.Equal(t, 2, *matches[0].HomeScore)
	assert.Equal(t, 1, *matches[0].AwayScore)
	assert.True(t, matches[0].Date.Equal(day))
	assert.Nil(t, matches[1].HomeScore)
	assert.Equal(t, standings.StatusScheduled, matches[1].Status)

	// Completing the scheduled fixture overwrites it in place.
	require.NoError(t, store.UpsertMatch("l1", standings.Match{
		ID: "m2", HomeTeamID: "b", AwayTeamID: "c", HomeScore: intPtr(0), AwayScore: intPtr(0),
		Status: standings.StatusCompleted, Date: day.AddDate(0, 0, 7),
	}))
	matches, err = store.GetMatches("l1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.True(t, matches[1].IsCompleted())
}

func TestGetMatches_Ordering(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedLeague(t, store)

	kickoff := time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpsertMatches("l1", []standings.Match{
		{ID: "late", HomeTeamID: "a", AwayTeamID: "b", Status: standings.StatusScheduled, Date: kickoff.Add(300 * time.Millisecond)},
		{ID: "early", HomeTeamID: "b", AwayTeamID: "c", Status: standings.StatusScheduled, Date: kickoff},
		{ID: "m2", HomeTeamID: "a", AwayTeamID: "c", Status: standings.StatusScheduled},
		{ID: "m10", HomeTeamID: "c", AwayTeamID: "a", Status: standings.StatusScheduled},
	}))
	// Updating a match does not move it within its date.
	require.NoError(t, store.UpsertMatch("l1", standings.Match{
		ID: "m2", HomeTeamID: "a", AwayTeamID: "c", HomeScore: intPtr(1), AwayScore: intPtr(0), Status: standings.StatusCompleted,
	}))

	matches, err := store.GetMatches("l1")
	require.NoError(t, err)
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{"m2", "m10", "early", "late"}, ids)
	assert.True(t, matches[0].Date.IsZero())
	assert.True(t, matches[3].Date.Equal(kickoff.Add(300*time.Millisecond)))
}

func TestStoreFeedsStandings(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	seedLeague(t, store)

	day := time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpsertMatches("l1", []standings.Match{
		{ID: "m1", HomeTeamID: "a", AwayTeamID: "b", HomeScore: intPtr(2), AwayScore: intPtr(1), Status: standings.StatusCompleted, Date: day},
		{ID: "m2", HomeTeamID: "b", AwayTeamID: "c", HomeScore: intPtr(1), AwayScore: intPtr(1), Status: standings.StatusCompleted, Date: day.Add(time.Hour)},
		{ID: "m3", HomeTeamID: "c", AwayTeamID: "a", HomeScore: intPtr(0), AwayScore: intPtr(3), Status: standings.StatusCompleted, Date: day.Add(2 * time.Hour)},
	}))

	l, err := store.GetLeague("l1")
	require.NoError(t, err)
	teams, err := store.GetTeams("l1")
	require.NoError(t, err)
	matches, err := store.GetMatches("l1")
	require.NoError(t, err)

	table := standings.Compute(matches, teams, standings.Options{Zones: l.Zones})
	require.Len(t, table.Entries, 3)
	assert.Equal(t, "a", table.Entries[0].TeamID)
	assert.Equal(t, standings.ZonePromotion, table.Entries[0].Zone)
	assert.Equal(t, "b", table.Entries[1].TeamID)
	assert.Equal(t, []standings.Outcome{standings.Draw, standings.Loss}, table.Entries[1].RecentForm)
	assert.Equal(t, standings.ZoneRelegation, table.Entries[2].Zone)
}

func TestClear(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	seedLeague(t, store)
	require.NoError(t, store.CreateLeague(league.League{ID: "l2", Name: "Keep"}))

	store.ClearLeague("l1")
	_, err := store.GetLeague("l1")
	assert.True(t, errors.Is(err, league.ErrLeagueNotFound))

	var teamCount int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM teams").Scan(&teamCount))
	assert.Zero(t, teamCount)

	_, err = store.GetLeague("l2")
	require.NoError(t, err)

	store.Clear()
	leagues, err := store.ListLeagues()
	require.NoError(t, err)
	assert.Empty(t, leagues)
}
