package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics Prometheus-метрики сервиса
// Все методы безопасно вызывать на nil (метрики выключены)
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpRateLimited     prometheus.Counter

	dbQueryDuration   *prometheus.HistogramVec
	dbQueryErrors     *prometheus.CounterVec
	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge

	admissionDecisions *prometheus.CounterVec
	suggestionsOffered prometheus.Histogram
	seatsBooked        prometheus.Counter
	seatsReleased      prometheus.Counter
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpRateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name:        "http_rate_limited_total",
			Help:        "Requests rejected by the rate limiter",
			ConstLabels: labels,
		}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: labels,
		}),
		dbInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: labels,
		}),
		dbIdle: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: labels,
		}),
		dbWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),

		admissionDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "seating_admission_decisions_total",
			Help:        "Admission decisions by status",
			ConstLabels: labels,
		}, []string{"status"}),
		suggestionsOffered: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "seating_suggestions_offered",
			Help:        "Number of alternative times offered on FULL",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 2, 3},
		}),
		seatsBooked: factory.NewCounter(prometheus.CounterOpts{
			Name:        "seating_seats_booked_total",
			Help:        "Seats written by confirmed reservations",
			ConstLabels: labels,
		}),
		seatsReleased: factory.NewCounter(prometheus.CounterOpts{
			Name:        "seating_seats_released_total",
			Help:        "Seats freed by cancelled reservations",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest учитывает один HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRateLimited учитывает отклоненный лимитером запрос
func (m *Metrics) RecordRateLimited() {
	if m == nil {
		return
	}
	m.httpRateLimited.Inc()
}

// ObserveQuery учитывает запрос к БД
func (m *Metrics) ObserveQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetPoolStats публикует состояние пула соединений
func (m *Metrics) SetPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// RecordDecision учитывает решение по запросу (OK, FULL, OVER_LIMIT)
func (m *Metrics) RecordDecision(status string) {
	if m == nil {
		return
	}
	m.admissionDecisions.WithLabelValues(status).Inc()
}

// RecordSuggestions учитывает размер предложенного набора
func (m *Metrics) RecordSuggestions(count int) {
	if m == nil {
		return
	}
	m.suggestionsOffered.Observe(float64(count))
}

// RecordSeatsBooked учитывает записанные места
func (m *Metrics) RecordSeatsBooked(seats int) {
	if m == nil {
		return
	}
	m.seatsBooked.Add(float64(seats))
}

// RecordSeatsReleased учитывает освобожденные отменой места
func (m *Metrics) RecordSeatsReleased(seats int) {
	if m == nil {
		return
	}
	m.seatsReleased.Add(float64(seats))
}
