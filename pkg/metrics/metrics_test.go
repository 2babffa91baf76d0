package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("seating-test", reg)

	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/availability", http.StatusOK, 10*time.Millisecond)
	m.RecordDecision("FULL")
	m.RecordDecision("FULL")
	m.RecordDecision("OK")
	m.ObserveQuery("select", time.Millisecond, errors.New("boom"))
	m.ObserveQuery("select", time.Millisecond, sql.ErrNoRows)
	m.RecordSeatsBooked(4)
	m.RecordSeatsReleased(2)
	m.RecordRateLimited()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.admissionDecisions.WithLabelValues("FULL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.admissionDecisions.WithLabelValues("OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/availability", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("select")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.seatsBooked))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.seatsReleased))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRateLimited))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.RecordDecision("OK")
		m.RecordSuggestions(3)
		m.ObserveQuery("select", time.Second, nil)
		m.SetPoolStats(sql.DBStats{})
		m.RecordSeatsBooked(1)
		m.RecordSeatsReleased(1)
		m.RecordRateLimited()
	})
}
