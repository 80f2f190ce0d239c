package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncRecomputes()
	svc.IncRecomputes()
	svc.IncRecomputeFailures()
	svc.IncCoalescedRefreshes()
	svc.IncMatchesIngested(3)
	svc.IncMatchesIngested(2)
	svc.IncSlackNotifSent()
	svc.IncSlackNotifFailed()
	svc.SetStartupTime(1.5)
	svc.ObserveRecomputeDuration(0.02)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.Recomputes))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.RecomputeFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.CoalescedRefreshes))
	assert.Equal(t, 5.0, testutil.ToFloat64(svc.MatchesIngested))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.SlackNotifSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.SlackNotifFailed))
	assert.Equal(t, 1.5, testutil.ToFloat64(svc.StartupTimeSeconds))
	assert.Equal(t, 1, testutil.CollectAndCount(svc.RecomputeDuration))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.IncRecomputes()

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)
	NewMetricsHandler(reg).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "standings_recomputes_total 1")
}
