package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/league-standings/internal/database"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/standings"
)

var demoTeams = []standings.Team{
	{ID: "ath", Name: "Athletic", DisplayColor: "#c8102e"},
	{ID: "bor", Name: "Borough", DisplayColor: "#1b458f"},
	{ID: "cit", Name: "City", DisplayColor: "#6cabdd"},
	{ID: "dyn", Name: "Dynamo", DisplayColor: "#003090"},
	{ID: "rov", Name: "Rovers", DisplayColor: "#009782"},
	{ID: "utd", Name: "United", DisplayColor: "#da291c"},
	{ID: "wan", Name: "Wanderers", DisplayColor: "#fdb913"},
	{ID: "vil", Name: "Villa", DisplayColor: "#670e36"},
}

// Simplified config loading for the script
func loadConfig() (dbName, primaryURL, authToken string, seed int64) {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	dbName = os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "standings.db"
	}
	seed = time.Now().UnixNano()
	if v := os.Getenv("SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = n
		}
	}
	return dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"), seed
}

func main() {
	log.Info("Starting database seeder...")
	dbName, primaryURL, authToken, seed := loadConfig()

	db, teardown, err := database.InitDB(dbName, primaryURL, authToken)
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	store := league.New(db)
	demo := league.League{
		ID:    "demo",
		Name:  "Demo League",
		Zones: standings.ZoneConfig{PromotionSpots: 2, PlayoffSpots: 2, RelegationSpots: 2},
	}
	if err := store.CreateLeague(demo); err != nil {
		log.Fatalf("Failed to create league: %s", err)
	}
	if err := store.UpsertTeams(demo.ID, demoTeams); err != nil {
		log.Fatalf("Failed to create teams: %s", err)
	}

	ids := make([]string, len(demoTeams))
	for i, t := range demoTeams {
		ids[i] = t.ID
	}
	season := roundRobin(ids)
	playedRounds := len(season) * 2 / 3
	start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -7*playedRounds)

	rng := rand.New(rand.NewSource(seed))
	matches := buildMatches(rng, season, start, playedRounds)

	startTime := time.Now()
	if err := store.UpsertMatches(demo.ID, matches); err != nil {
		log.Fatalf("Failed to insert matches: %s", err)
	}
	log.Info("Inserted season", "league", demo.ID, "rounds", len(season), "played_rounds", playedRounds, "matches", len(matches), "seed", seed, "duration", time.Since(startTime))

	table := standings.Compute(matches, demoTeams, standings.Options{Zones: demo.Zones})
	for _, e := range table.Entries {
		fmt.Printf("%2d. %-10s %2d pts  GD %+3d  %s\n", e.Position, e.TeamName, e.Points, e.GoalDifference, e.FormString())
	}
}
