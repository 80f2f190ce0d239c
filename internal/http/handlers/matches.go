package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/metrics"
	"github.com/mauv0809/league-standings/internal/refresh"
	"github.com/mauv0809/league-standings/internal/standings"
)

// IngestMatchesHandler stores results posted as JSON and answers with the
// table that includes them.
func IngestMatchesHandler(store league.LeagueStore, coordinator *refresh.Coordinator, metrics metrics.Metrics, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.PathValue("id")

		var req struct {
			Matches []standings.Match `json:"matches" validate:"required,min=1,dive"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, validationMessage(err), http.StatusBadRequest)
			return
		}

		if _, err := store.GetLeague(leagueID); err != nil {
			if errors.Is(err, league.ErrLeagueNotFound) {
				http.Error(w, "League "+leagueID+" not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to load league", http.StatusInternalServerError)
			log.Error("Failed to load league", "error", err, "leagueID", leagueID)
			return
		}
		if err := store.UpsertMatches(leagueID, req.Matches); err != nil {
			http.Error(w, "Failed to save matches", http.StatusInternalServerError)
			log.Error("Failed to save matches", "error", err, "leagueID", leagueID)
			return
		}
		metrics.IncMatchesIngested(len(req.Matches))
		log.Info("Ingested matches", "leagueID", leagueID, "count", len(req.Matches))

		snap, err := coordinator.RefreshSince(r.Context(), leagueID, time.Now())
		writeSnapshot(w, leagueID, snap, err)
	}
}
