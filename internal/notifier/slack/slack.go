package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/metrics"
	"github.com/mauv0809/league-standings/internal/notifier"
	"github.com/mauv0809/league-standings/internal/standings"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier. Without a token every message is only
// logged, as in dry-run mode.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	n := &Notifier{
		channelID: channelID,
		metrics:   metrics,
	}
	if token != "" {
		n.api = slack.New(token)
	}
	return n
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun || s.api == nil {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "configured", s.api != nil, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendStandings(leagueName string, table standings.Table, dryRun bool) error {
	msg := s.formatStandings(leagueName, table)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendStandingsUpdate(leagueName string, table standings.Table, dryRun bool) error {
	msg := s.formatStandingsUpdate(leagueName, table)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatStandingsResponse formats a standings table for a slash command response.
func (s *Notifier) FormatStandingsResponse(leagueName string, table standings.Table) (any, error) {
	return s.formatStandings(leagueName, table), nil
}

// FormatLeagueListResponse formats the list of known leagues for a slash command response.
func (s *Notifier) FormatLeagueListResponse(leagues []league.League) (any, error) {
	return s.formatLeagueList(leagues), nil
}

// FormatLeagueNotFoundResponse formats a league not found message for a slash command response.
func (s *Notifier) FormatLeagueNotFoundResponse(query string) (any, error) {
	return s.formatLeagueNotFound(query), nil
}

// formatStandings creates a Slack message with the full table using Block Kit.
func (s *Notifier) formatStandings(leagueName string, table standings.Table) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf(":trophy: %s standings", leagueName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(table.Entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No teams in this league yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	blocks = append(blocks, tableBlocks(table.Entries)...)
	blocks = append(blocks, summaryBlock(table))
	return slack.NewBlockMessage(blocks...)
}

// formatStandingsUpdate lists the teams that moved, then the table.
func (s *Notifier) formatStandingsUpdate(leagueName string, table standings.Table) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf(":bar_chart: %s standings updated", leagueName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	if leader, ok := table.Leader(); ok {
		if leader.PreviousPosition != 1 && leader.PreviousPosition != 0 {
			lines = append(lines, fmt.Sprintf(":crown: *%s* take the lead with %d points", leader.TeamName, leader.Points))
		} else {
			lines = append(lines, fmt.Sprintf(":crown: *%s* lead with %d points", leader.TeamName, leader.Points))
		}
	}
	for _, e := range table.Entries {
		switch m := e.Movement(); {
		case m > 0:
			lines = append(lines, fmt.Sprintf(":arrow_up_small: *%s* up %d to %d", e.TeamName, m, e.Position))
		case m < 0:
			lines = append(lines, fmt.Sprintf(":arrow_down_small: *%s* down %d to %d", e.TeamName, -m, e.Position))
		}
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))
	blocks = append(blocks, slack.NewDividerBlock())

	blocks = append(blocks, tableBlocks(table.Entries)...)
	blocks = append(blocks, summaryBlock(table))
	return slack.NewBlockMessage(blocks...)
}

// formatLeagueList creates a Slack message listing the leagues a user can ask for.
func (s *Notifier) formatLeagueList(leagues []league.League) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", ":soccer: Leagues", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(leagues) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No leagues have been set up yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := make([]string, 0, len(leagues))
	for _, l := range leagues {
		lines = append(lines, fmt.Sprintf("• *%s* (`%s`)", l.Name, l.ID))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", "Use `/standings <league id>` to see a table.", false, false)))
	return slack.NewBlockMessage(blocks...)
}

// formatLeagueNotFound creates a Slack message for when a league does not exist.
func (s *Notifier) formatLeagueNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a league matching *%s*. Try `/standings` to list them.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}
