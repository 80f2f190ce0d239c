package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mauv0809/league-standings/internal/config"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/metrics"
	"github.com/mauv0809/league-standings/internal/notifier"
	"github.com/mauv0809/league-standings/internal/pubsub"
	"github.com/mauv0809/league-standings/internal/refresh"
	"golang.org/x/time/rate"
)

type Server struct {
	Store          league.LeagueStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Coordinator    *refresh.Coordinator
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
	limiter        *rate.Limiter
	validate       *validator.Validate
}
