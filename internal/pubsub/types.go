package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client *pubsub.Client
}

// EventType represents the type of event/message sent via pubsub.
// Each event type is also the name of its topic.
type EventType string

const (
	// EventMatchResult carries a single match result to be stored.
	EventMatchResult EventType = "match-result"
	// EventStandingsUpdated is published after a recompute moved the table.
	EventStandingsUpdated EventType = "standings-updated"
)
