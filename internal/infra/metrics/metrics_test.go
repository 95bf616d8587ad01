package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/recipes", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/recipes", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/recipes", http.StatusUnauthorized, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/recipes", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/recipes", "401")), 0)
}

func TestMetrics_AuthEvent(t *testing.T) {
	m := New()

	m.AuthEvent(EventLogin)
	m.AuthEvent(EventLogin)
	m.AuthEvent(EventLogout)

	assert.InDelta(t, 2, testutil.ToFloat64(m.authEvents.WithLabelValues(EventLogin)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.authEvents.WithLabelValues(EventLogout)), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.AuthEvent(EventSignup)
		m.ObserveRequest(http.MethodPost, "/signup", http.StatusCreated, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.AuthEvent(EventSignup)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `cookbook_auth_events_total{event="signup"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_RegisterDBStats(t *testing.T) {
	m := New()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, m.RegisterDBStats(db, "sqlite"))
	assert.Error(t, m.RegisterDBStats(db, "sqlite"), "duplicate collector")

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() == "go_sql_max_open_connections" {
			found = true
		}
	}
	assert.True(t, found)
}
