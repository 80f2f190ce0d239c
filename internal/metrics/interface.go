package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRecomputes()
	IncRecomputeFailures()
	IncCoalescedRefreshes()
	ObserveRecomputeDuration(duration float64)
	IncMatchesIngested(count int)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
