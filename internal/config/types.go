package config

import (
	"github.com/mauv0809/league-standings/internal/standings"
)

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	Slack     SlackConfig
	Turso     TursoConfig
	ProjectID string
	Standings StandingsConfig
	Refresh   RefreshConfig
}
type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

// Enabled reports whether a bot token and channel are configured.
func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// StandingsConfig holds the rules used by leagues that don't set their own.
type StandingsConfig struct {
	Points standings.PointSystem
	Zones  standings.ZoneConfig
}

type RefreshConfig struct {
	Schedule  string
	RateLimit float64
	Burst     int
}
