package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/league-standings/internal/standings"
)

const (
	DefaultRefreshSchedule  = "@every 5m"
	DefaultRefreshRateLimit = 1.0
	DefaultRefreshBurst     = 3
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	var missing []string
	// Required variables are collected so every missing one is reported at once.
	require := func(key string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		missing = append(missing, key)
		return ""
	}

	cfg := Config{
		DBName: require("DB_NAME"),
		Port:   require("PORT"),
		Slack: SlackConfig{
			Token:         os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID:     os.Getenv("SLACK_CHANNEL_ID"),
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
		ProjectID: os.Getenv("GCP_PROJECT"),
		Standings: StandingsConfig{
			Points: pointsFromEnv(),
			Zones: standings.ZoneConfig{
				PromotionSpots:  getSpots("PROMOTION_SPOTS"),
				PlayoffSpots:    getSpots("PLAYOFF_SPOTS"),
				RelegationSpots: getSpots("RELEGATION_SPOTS"),
			},
		},
		Refresh: RefreshConfig{
			Schedule:  getEnv("REFRESH_SCHEDULE", DefaultRefreshSchedule),
			RateLimit: getFloat("REFRESH_RATE_LIMIT", DefaultRefreshRateLimit),
			Burst:     getInt("REFRESH_RATE_BURST", DefaultRefreshBurst),
		},
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %v", missing)
	}
	return cfg, nil
}

// pointsFromEnv falls back to the default point system unless all three
// values parse.
func pointsFromEnv() standings.PointSystem {
	def := standings.DefaultPointSystem()
	win, okWin := lookupInt("POINTS_WIN")
	draw, okDraw := lookupInt("POINTS_DRAW")
	loss, okLoss := lookupInt("POINTS_LOSS")
	if !okWin && !okDraw && !okLoss {
		return def
	}
	if !okWin || !okDraw || !okLoss {
		log.Warn("POINTS_WIN, POINTS_DRAW and POINTS_LOSS must be set together, using defaults",
			"win", def.Win, "draw", def.Draw, "loss", def.Loss)
		return def
	}
	return standings.PointSystem{Win: win, Draw: draw, Loss: loss}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func lookupInt(key string) (int, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn("Ignoring non-numeric environment variable", "key", key, "value", value)
		return 0, false
	}
	return n, true
}

func getInt(key string, fallback int) int {
	if n, ok := lookupInt(key); ok {
		return n
	}
	return fallback
}

// getSpots reads a zone size; a negative value counts as zero.
func getSpots(key string) int {
	n := getInt(key, 0)
	if n < 0 {
		log.Warn("Ignoring negative zone size", "key", key, "value", n)
		return 0
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		log.Warn("Ignoring invalid environment variable", "key", key, "value", value)
		return fallback
	}
	return f
}
