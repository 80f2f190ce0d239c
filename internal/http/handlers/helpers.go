package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/refresh"
	"github.com/slack-go/slack"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// StaleHeader is set when a response carries the last good table because a refresh failed.
const StaleHeader = "X-Standings-Stale"

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	writeJSON(w, http.StatusOK, msg)
}

// decodePushMessage unwraps the base64 data of a Pub/Sub push request.
func decodePushMessage(r *http.Request) ([]byte, error) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	log.Debug("Received push message", "path", r.URL.Path, "body", string(bodyBytes))

	var pubsubMsg struct {
		Subscription string `json:"subscription"`
		Message      struct {
			Data string `json:"data"`
		} `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}
	return rawData, nil
}

// writeSnapshot answers with a refresh result, mapping its error to a status.
// A failed refresh that still has a previous table is served with StaleHeader.
func writeSnapshot(w http.ResponseWriter, leagueID string, snap refresh.Snapshot, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, snap)
	case errors.Is(err, league.ErrLeagueNotFound):
		http.Error(w, fmt.Sprintf("League %s not found", leagueID), http.StatusNotFound)
	case !snap.IsZero():
		log.Warn("Serving stale standings", "leagueID", leagueID, "error", err, "computed_at", snap.ComputedAt)
		w.Header().Set(StaleHeader, "true")
		writeJSON(w, http.StatusOK, snap)
	default:
		log.Error("Failed to compute standings", "leagueID", leagueID, "error", err)
		http.Error(w, "Failed to compute standings", http.StatusInternalServerError)
	}
}

// validationMessage flattens validator errors into one line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msg := "invalid request:"
	for _, fe := range verrs {
		msg += fmt.Sprintf(" %s failed %q;", fe.Namespace(), fe.Tag())
	}
	return msg
}
