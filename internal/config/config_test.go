package config

import (
	"testing"

	"github.com/mauv0809/league-standings/internal/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_NAME", "standings.db")
	t.Setenv("PORT", "8080")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"POINTS_WIN", "POINTS_DRAW", "POINTS_LOSS", "PROMOTION_SPOTS", "PLAYOFF_SPOTS", "RELEGATION_SPOTS", "REFRESH_SCHEDULE", "REFRESH_RATE_LIMIT", "REFRESH_RATE_BURST", "SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "standings.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, standings.DefaultPointSystem(), cfg.Standings.Points)
	assert.Equal(t, standings.ZoneConfig{}, cfg.Standings.Zones)
	assert.Equal(t, DefaultRefreshSchedule, cfg.Refresh.Schedule)
	assert.Equal(t, DefaultRefreshRateLimit, cfg.Refresh.RateLimit)
	assert.Equal(t, DefaultRefreshBurst, cfg.Refresh.Burst)
	assert.False(t, cfg.Slack.Enabled())
}

func TestFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.Contains(t, err.Error(), "PORT")
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POINTS_WIN", "2")
	t.Setenv("POINTS_DRAW", "1")
	t.Setenv("POINTS_LOSS", "0")
	t.Setenv("PROMOTION_SPOTS", "2")
	t.Setenv("PLAYOFF_SPOTS", "4")
	t.Setenv("RELEGATION_SPOTS", "3")
	t.Setenv("REFRESH_SCHEDULE", "*/10 * * * *")
	t.Setenv("REFRESH_RATE_LIMIT", "0.5")
	t.Setenv("REFRESH_RATE_BURST", "1")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, standings.PointSystem{Win: 2, Draw: 1, Loss: 0}, cfg.Standings.Points)
	assert.Equal(t, standings.ZoneConfig{PromotionSpots: 2, PlayoffSpots: 4, RelegationSpots: 3}, cfg.Standings.Zones)
	assert.Equal(t, "*/10 * * * *", cfg.Refresh.Schedule)
	assert.Equal(t, 0.5, cfg.Refresh.RateLimit)
	assert.Equal(t, 1, cfg.Refresh.Burst)
	assert.True(t, cfg.Slack.Enabled())
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	setRequired(t)

	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg Config)
	}{
		{
			name: "partial point system",
			env:  map[string]string{"POINTS_WIN": "2", "POINTS_DRAW": "", "POINTS_LOSS": ""},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, standings.DefaultPointSystem(), cfg.Standings.Points)
			},
		},
		{
			name: "non-numeric points",
			env:  map[string]string{"POINTS_WIN": "three", "POINTS_DRAW": "1", "POINTS_LOSS": "0"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, standings.DefaultPointSystem(), cfg.Standings.Points)
			},
		},
		{
			name: "negative zone",
			env:  map[string]string{"PROMOTION_SPOTS": "-2", "PLAYOFF_SPOTS": "4", "RELEGATION_SPOTS": "3"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, standings.ZoneConfig{PlayoffSpots: 4, RelegationSpots: 3}, cfg.Standings.Zones)
			},
		},
		{
			name: "zero rate limit",
			env:  map[string]string{"REFRESH_RATE_LIMIT": "0"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, DefaultRefreshRateLimit, cfg.Refresh.RateLimit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := FromEnv()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
