package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/dashboard/", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/dashboard/", http.StatusOK, 30*time.Millisecond)
	m.LoginAttempt(ResultFailure)
	m.RegistrationAttempt(ResultSuccess)
	m.ImportCompleted(42, time.Second)
	m.SetStoredTickets(42)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/dashboard/", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues(ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.importedRows))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.storedTickets))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.LoginAttempt(ResultSuccess)
		m.RegistrationAttempt(ResultRejected)
		m.ImportCompleted(1, time.Millisecond)
		m.SetStoredTickets(1)
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.LoginAttempt(ResultSuccess)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `ticketsla_auth_logins_total{result="success"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
