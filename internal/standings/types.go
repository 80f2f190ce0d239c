package standings

import (
	"fmt"
	"strings"
	"time"
)

// MatchStatus is the lifecycle state of a fixture.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
	StatusCancelled MatchStatus = "cancelled"
)

// Match is a single fixture between two teams. Scores are only set once the match has concluded.
type Match struct {
	ID         string      `json:"id" msgpack:"id" validate:"required"`
	HomeTeamID string      `json:"home_team_id" msgpack:"home_team_id" validate:"required"`
	AwayTeamID string      `json:"away_team_id" msgpack:"away_team_id" validate:"required,nefield=HomeTeamID"`
	HomeScore  *int        `json:"home_score,omitempty" msgpack:"home_score" validate:"omitempty,min=0"`
	AwayScore  *int        `json:"away_score,omitempty" msgpack:"away_score" validate:"omitempty,min=0"`
	Status     MatchStatus `json:"status" msgpack:"status" validate:"required,oneof=scheduled live completed cancelled"`
	Date       time.Time   `json:"date" msgpack:"date"`
}

// IsCompleted reports whether the match counts towards the table.
func (m Match) IsCompleted() bool {
	return m.Status == StatusCompleted && m.HomeScore != nil && m.AwayScore != nil
}

// Team is a participant in a league.
type Team struct {
	ID           string `json:"id" msgpack:"id" validate:"required"`
	Name         string `json:"name" msgpack:"name" validate:"required"`
	DisplayColor string `json:"display_color,omitempty" msgpack:"display_color"`
}

// Outcome is a single result from one team's point of view.
type Outcome string

const (
	Win  Outcome = "W"
	Draw Outcome = "D"
	Loss Outcome = "L"
)

// Zone is a named band of table positions.
type Zone string

const (
	ZoneNone       Zone = "none"
	ZonePromotion  Zone = "promotion"
	ZonePlayoff    Zone = "playoff"
	ZoneRelegation Zone = "relegation"
)

// FormLength is the number of outcomes kept in RecentForm.
const FormLength = 5

// Entry is one row of the standings table.
type Entry struct {
	TeamID           string    `json:"team_id" msgpack:"team_id"`
	TeamName         string    `json:"team_name" msgpack:"team_name"`
	DisplayColor     string    `json:"display_color,omitempty" msgpack:"display_color"`
	Position         int       `json:"position" msgpack:"position"`
	PreviousPosition int       `json:"previous_position" msgpack:"previous_position"`
	Played           int       `json:"played" msgpack:"played"`
	Won              int       `json:"won" msgpack:"won"`
	Drawn            int       `json:"drawn" msgpack:"drawn"`
	Lost             int       `json:"lost" msgpack:"lost"`
	GoalsFor         int       `json:"goals_for" msgpack:"goals_for"`
	GoalsAgainst     int       `json:"goals_against" msgpack:"goals_against"`
	GoalDifference   int       `json:"goal_difference" msgpack:"goal_difference"`
	Points           int       `json:"points" msgpack:"points"`
	RecentForm       []Outcome `json:"recent_form" msgpack:"recent_form"`
	Zone             Zone      `json:"zone" msgpack:"zone"`
}

// Movement is the number of places gained since the previous table.
// Positive means the team moved up. Zero when there is no previous position.
func (e Entry) Movement() int {
	if e.PreviousPosition == 0 {
		return 0
	}
	return e.PreviousPosition - e.Position
}

// FormString renders RecentForm as e.g. "WDLWW".
func (e Entry) FormString() string {
	var b strings.Builder
	for _, o := range e.RecentForm {
		b.WriteString(string(o))
	}
	return b.String()
}

// PointSystem awards points per result.
type PointSystem struct {
	Win  int `json:"win" msgpack:"win"`
	Draw int `json:"draw" msgpack:"draw"`
	Loss int `json:"loss" msgpack:"loss"`
}

// DefaultPointSystem is three points for a win, one for a draw.
func DefaultPointSystem() PointSystem {
	return PointSystem{Win: 3, Draw: 1, Loss: 0}
}

// IsZero reports whether no point values have been configured.
func (p PointSystem) IsZero() bool {
	return p == PointSystem{}
}

// ZoneConfig sets how many positions at each end of the table carry a zone.
type ZoneConfig struct {
	PromotionSpots  int `json:"promotion_spots" msgpack:"promotion_spots" validate:"min=0"`
	PlayoffSpots    int `json:"playoff_spots" msgpack:"playoff_spots" validate:"min=0"`
	RelegationSpots int `json:"relegation_spots" msgpack:"relegation_spots" validate:"min=0"`
}

// ConfigError describes a zone configuration that cannot be applied cleanly.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid zone config: %s=%d: %s", e.Field, e.Value, e.Reason)
}

// Validate checks the configuration against a table of teamCount teams.
// Classify never calls this; overlapping zones are resolved by precedence there.
// A teamCount of zero or less skips the size check.
func (z ZoneConfig) Validate(teamCount int) error {
	fields := []struct {
		name  string
		value int
	}{
		{"promotion_spots", z.PromotionSpots},
		{"playoff_spots", z.PlayoffSpots},
		{"relegation_spots", z.RelegationSpots},
	}
	for _, f := range fields {
		if f.value < 0 {
			return &ConfigError{Field: f.name, Value: f.value, Reason: "must not be negative"}
		}
	}
	total := z.PromotionSpots + z.PlayoffSpots + z.RelegationSpots
	if teamCount > 0 && total > teamCount {
		return &ConfigError{
			Field:  "total_spots",
			Value:  total,
			Reason: fmt.Sprintf("exceeds team count %d", teamCount),
		}
	}
	return nil
}
