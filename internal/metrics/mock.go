package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	recomputes         int
	recomputeFailures  int
	coalescedRefreshes int
	recomputeDurations []float64
	matchesIngested    int
	slackNotifSent     int
	slackNotifFailed   int
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		recomputeDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRecomputes() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recomputes++
}

func (m *Mock) IncRecomputeFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recomputeFailures++
}

func (m *Mock) IncCoalescedRefreshes() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coalescedRefreshes++
}

func (m *Mock) ObserveRecomputeDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recomputeDurations = append(m.recomputeDurations, duration)
}

func (m *Mock) IncMatchesIngested(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesIngested += count
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Recomputes returns the number of times IncRecomputes was called.
func (m *Mock) Recomputes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recomputes
}

// RecomputeFailures returns the number of times IncRecomputeFailures was called.
func (m *Mock) RecomputeFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recomputeFailures
}

// CoalescedRefreshes returns the number of times IncCoalescedRefreshes was called.
func (m *Mock) CoalescedRefreshes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.coalescedRefreshes
}

// RecomputeDurations returns a copy of every observed duration.
func (m *Mock) RecomputeDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.recomputeDurations...)
}

// MatchesIngested returns the sum of all IncMatchesIngested counts.
func (m *Mock) MatchesIngested() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesIngested
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
