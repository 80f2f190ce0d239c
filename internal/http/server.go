package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mauv0809/league-standings/internal/config"
	"github.com/mauv0809/league-standings/internal/http/handlers"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/metrics"
	"github.com/mauv0809/league-standings/internal/notifier"
	"github.com/mauv0809/league-standings/internal/pubsub"
	"github.com/mauv0809/league-standings/internal/refresh"
	"golang.org/x/time/rate"
)

func NewServer(store league.LeagueStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, coordinator *refresh.Coordinator, pubsub pubsub.PubSubClient) *Server {
	limit := cfg.Refresh.RateLimit
	if limit <= 0 {
		limit = config.DefaultRefreshRateLimit
	}
	burst := cfg.Refresh.Burst
	if burst <= 0 {
		burst = config.DefaultRefreshBurst
	}

	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Coordinator:    coordinator,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
		limiter:        rate.NewLimiter(rate.Limit(limit), burst),
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	slackAuth := slackVerificationMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("POST /clear", Chain(handlers.ClearStoreHandler(s.Store, s.Coordinator), paramsMiddleware))

	s.Router.Handle("GET /leagues", Chain(handlers.ListLeaguesHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /leagues", Chain(handlers.UpsertLeagueHandler(s.Store, s.Coordinator, s.validate), paramsMiddleware))
	s.Router.Handle("GET /leagues/{id}/standings", Chain(handlers.StandingsHandler(s.Coordinator), paramsMiddleware))
	s.Router.Handle("POST /leagues/{id}/refresh", Chain(handlers.RefreshHandler(s.Coordinator, s.limiter), paramsMiddleware))
	s.Router.Handle("POST /leagues/{id}/matches", Chain(handlers.IngestMatchesHandler(s.Store, s.Coordinator, s.Metrics, s.validate), paramsMiddleware))

	s.Router.Handle("POST /pubsub/match-result", Chain(handlers.MatchResultHandler(s.Store, s.Coordinator, s.pubsub, s.Metrics, s.validate), paramsMiddleware))
	s.Router.Handle("POST /pubsub/standings-updated", Chain(handlers.StandingsUpdatedHandler(s.Notifier, s.pubsub), paramsMiddleware))

	s.Router.Handle("POST /slack/command/standings", Chain(handlers.StandingsCommandHandler(s.Store, s.Coordinator, s.Notifier), paramsMiddleware, slackAuth))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
