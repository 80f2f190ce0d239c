package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Recomputes         prometheus.Counter
	RecomputeFailures  prometheus.Counter
	CoalescedRefreshes prometheus.Counter
	RecomputeDuration  prometheus.Histogram
	MatchesIngested    prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
