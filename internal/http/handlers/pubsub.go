package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/metrics"
	"github.com/mauv0809/league-standings/internal/notifier"
	"github.com/mauv0809/league-standings/internal/pubsub"
	"github.com/mauv0809/league-standings/internal/refresh"
)

// MatchResultHandler consumes match-result push messages. Results for unknown
// leagues are acknowledged and dropped since redelivery cannot fix them.
func MatchResultHandler(store league.LeagueStore, coordinator *refresh.Coordinator, pubsubClient pubsub.PubSubClient, metrics metrics.Metrics, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := decodePushMessage(r)
		if err != nil {
			log.Error("Failed to decode push message", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var result league.MatchResult
		if err := pubsubClient.ProcessMessage(rawData, &result); err != nil {
			log.Error("Failed to decode match result", "error", err)
			http.Error(w, "Invalid match result payload", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(result); err != nil {
			log.Warn("Dropping invalid match result", "error", err, "matchID", result.Match.ID)
			http.Error(w, validationMessage(err), http.StatusBadRequest)
			return
		}

		if _, err := store.GetLeague(result.LeagueID); err != nil {
			if errors.Is(err, league.ErrLeagueNotFound) {
				log.Warn("Dropping match result for unknown league", "leagueID", result.LeagueID, "matchID", result.Match.ID)
				w.Write([]byte("OK"))
				return
			}
			log.Error("Failed to load league", "error", err, "leagueID", result.LeagueID)
			http.Error(w, "Failed to load league", http.StatusInternalServerError)
			return
		}
		if err := store.UpsertMatch(result.LeagueID, result.Match); err != nil {
			log.Error("Failed to save match result", "error", err, "leagueID", result.LeagueID, "matchID", result.Match.ID)
			http.Error(w, "Failed to save match result", http.StatusInternalServerError)
			return
		}
		metrics.IncMatchesIngested(1)
		log.Info("Stored match result", "leagueID", result.LeagueID, "matchID", result.Match.ID, "status", result.Match.Status)

		// The result is stored; a failed recompute is retried by the scheduler.
		if _, err := coordinator.RefreshSince(r.Context(), result.LeagueID, time.Now()); err != nil {
			log.Warn("Refresh after match result failed", "error", err, "leagueID", result.LeagueID)
		}
		w.Write([]byte("OK"))
	}
}

// StandingsUpdatedHandler consumes standings-updated push messages and
// announces the movement in Slack.
func StandingsUpdatedHandler(notifier notifier.Notifier, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := decodePushMessage(r)
		if err != nil {
			log.Error("Failed to decode push message", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var snap refresh.Snapshot
		if err := pubsubClient.ProcessMessage(rawData, &snap); err != nil {
			log.Error("Failed to decode standings update", "error", err)
			http.Error(w, "Invalid standings payload", http.StatusBadRequest)
			return
		}

		isDryRun := IsDryRunFromContext(r)
		if err := notifier.SendStandingsUpdate(snap.LeagueName, snap.Table, isDryRun); err != nil {
			log.Error("Failed to announce standings update", "error", err, "leagueID", snap.LeagueID)
			http.Error(w, "Failed to announce standings update", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
