package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/notifier"
	"github.com/mauv0809/league-standings/internal/refresh"
	"github.com/slack-go/slack"
)

// parseStandingsText splits the slash command text into a league ID and
// whether the table should also be posted to the channel.
// Expected formats: "", "premier", "premier announce"
func parseStandingsText(text string) (leagueID string, announce bool) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return "", false
	}
	if len(parts) > 1 && strings.EqualFold(parts[len(parts)-1], "announce") {
		announce = true
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, " "), announce
}

// StandingsCommandHandler answers /standings. Without arguments it lists the leagues.
func StandingsCommandHandler(store league.LeagueStore, coordinator *refresh.Coordinator, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		leagueID, announce := parseStandingsText(r.FormValue("text"))
		log.Info("Received standings command", "league", leagueID, "announce", announce, "user", r.FormValue("user_name"))

		var msg any
		var err error
		if leagueID == "" {
			leagues, listErr := store.ListLeagues()
			if listErr != nil {
				http.Error(w, "Failed to get leagues", http.StatusInternalServerError)
				log.Error("Failed to get leagues from store", "error", listErr)
				return
			}
			msg, err = notifier.FormatLeagueListResponse(leagues)
		} else {
			snap, refreshErr := coordinator.Current(r.Context(), leagueID)
			switch {
			case errors.Is(refreshErr, league.ErrLeagueNotFound):
				log.Warn("Could not find league", "league", leagueID)
				msg, err = notifier.FormatLeagueNotFoundResponse(leagueID)
			case refreshErr != nil && snap.IsZero():
				http.Error(w, "Failed to compute standings", http.StatusInternalServerError)
				log.Error("Failed to compute standings", "error", refreshErr, "league", leagueID)
				return
			default:
				if refreshErr != nil {
					log.Warn("Answering with stale standings", "error", refreshErr, "league", leagueID)
				}
				msg, err = notifier.FormatStandingsResponse(snap.LeagueName, snap.Table)
				if announce {
					if sendErr := notifier.SendStandings(snap.LeagueName, snap.Table, IsDryRunFromContext(r)); sendErr != nil {
						log.Error("Failed to announce standings", "error", sendErr, "league", leagueID)
					}
				}
			}
		}

		if err != nil {
			http.Error(w, "Failed to format standings", http.StatusInternalServerError)
			log.Error("Failed to format standings", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}
