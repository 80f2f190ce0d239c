package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_recomputes_total",
			Help: "The total number of standings tables computed.",
		}),
		RecomputeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_recompute_failures_total",
			Help: "The total number of refreshes that failed and kept the previous table.",
		}),
		CoalescedRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_coalesced_refreshes_total",
			Help: "The total number of refresh requests served by a shared in-flight recompute.",
		}),
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "standings_recompute_duration_seconds",
			Help:    "The duration of a fetch plus recompute cycle.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		MatchesIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_matches_ingested_total",
			Help: "The total number of match results written to the store.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "standings_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Recomputes,
		s.RecomputeFailures,
		s.CoalescedRefreshes,
		s.RecomputeDuration,
		s.MatchesIngested,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRecomputes() {
	s.Recomputes.Inc()
}

func (s *Service) IncRecomputeFailures() {
	s.RecomputeFailures.Inc()
}

func (s *Service) IncCoalescedRefreshes() {
	s.CoalescedRefreshes.Inc()
}

func (s *Service) ObserveRecomputeDuration(duration float64) {
	s.RecomputeDuration.Observe(duration)
}

func (s *Service) IncMatchesIngested(count int) {
	s.MatchesIngested.Add(float64(count))
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
