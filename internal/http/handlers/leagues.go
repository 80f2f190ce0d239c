package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/refresh"
	"github.com/mauv0809/league-standings/internal/standings"
	"golang.org/x/time/rate"
)

// leagueRequest creates or updates a league together with its teams.
type leagueRequest struct {
	league.League
	Teams []standings.Team `json:"teams" validate:"dive"`
}

func ListLeaguesHandler(store league.LeagueStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := store.ListLeagues()
		if err != nil {
			http.Error(w, "Failed to get leagues", http.StatusInternalServerError)
			log.Error("Failed to get leagues from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, leagues)
	}
}

// UpsertLeagueHandler saves a league with its teams and recomputes its table
// under the new rules.
func UpsertLeagueHandler(store league.LeagueStore, coordinator *refresh.Coordinator, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leagueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, validationMessage(err), http.StatusBadRequest)
			return
		}
		if err := store.CreateLeague(req.League); err != nil {
			http.Error(w, "Failed to save league", http.StatusInternalServerError)
			log.Error("Failed to save league", "error", err, "leagueID", req.ID)
			return
		}
		if len(req.Teams) > 0 {
			if err := store.UpsertTeams(req.ID, req.Teams); err != nil {
				http.Error(w, "Failed to save teams", http.StatusInternalServerError)
				log.Error("Failed to save teams", "error", err, "leagueID", req.ID)
				return
			}
		}

		saved, err := store.GetLeague(req.ID)
		if err != nil {
			http.Error(w, "Failed to load league", http.StatusInternalServerError)
			log.Error("Failed to load saved league", "error", err, "leagueID", req.ID)
			return
		}
		teams, err := store.GetTeams(req.ID)
		if err != nil {
			log.Error("Failed to load teams", "error", err, "leagueID", req.ID)
		} else if err := saved.Zones.Validate(len(teams)); err != nil {
			log.Warn("League zones overlap", "leagueID", req.ID, "teams", len(teams), "error", err)
		}

		if _, err := coordinator.RefreshSince(r.Context(), req.ID, time.Now()); err != nil {
			// Do not keep serving a table computed under the old rules.
			coordinator.Forget(req.ID)
			log.Warn("Refresh after league update failed", "error", err, "leagueID", req.ID)
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// StandingsHandler serves the retained table, computing it on first use.
// ?refresh=true forces a recompute.
func StandingsHandler(coordinator *refresh.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.PathValue("id")
		var snap refresh.Snapshot
		var err error
		if r.URL.Query().Get("refresh") == "true" {
			snap, err = coordinator.Refresh(r.Context(), leagueID)
		} else {
			snap, err = coordinator.Current(r.Context(), leagueID)
		}
		writeSnapshot(w, leagueID, snap, err)
	}
}

func RefreshHandler(coordinator *refresh.Coordinator, limiter *rate.Limiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.PathValue("id")
		if !limiter.Allow() {
			log.Warn("Refresh rate limit exceeded", "leagueID", leagueID)
			http.Error(w, "Too many refresh requests", http.StatusTooManyRequests)
			return
		}
		log.Info("Manual refresh requested", "leagueID", leagueID)
		snap, err := coordinator.Refresh(r.Context(), leagueID)
		writeSnapshot(w, leagueID, snap, err)
	}
}
