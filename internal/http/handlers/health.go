package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/refresh"
)

func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func ClearStoreHandler(store league.LeagueStore, coordinator *refresh.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.URL.Query().Get("leagueID")
		if leagueID != "" {
			log.Info("Received request to clear a specific league", "leagueID", leagueID)
			store.ClearLeague(leagueID)
			coordinator.Forget(leagueID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared league %s from store!", leagueID)
			log.Info("Successfully cleared league from store", "leagueID", leagueID)
		} else {
			log.Info("Received request to clear entire store")
			store.Clear()
			coordinator.ForgetAll()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
			log.Info("Store cleared successfully")
		}
	}
}
