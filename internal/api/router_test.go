package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeatingService/internal/api/middleware"
	"github.com/m04kA/SMC-SeatingService/internal/domain"
	"github.com/m04kA/SMC-SeatingService/internal/service/bookings/models"
	checkAvailability "github.com/m04kA/SMC-SeatingService/internal/usecase/check_availability"
	createBooking "github.com/m04kA/SMC-SeatingService/internal/usecase/create_booking"
	getAvailableSlots "github.com/m04kA/SMC-SeatingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SeatingService/pkg/metrics"
)

type stubCheck struct{}

func (stubCheck) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	if req.PartySize == 3 {
		panic("boom")
	}
	return &checkAvailability.Response{Status: domain.AdmissionOK, PartySize: req.PartySize, Date: req.Date, RequestedTime: req.RequestedTime}, nil
}

type stubSlots struct{}

func (stubSlots) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return &getAvailableSlots.Response{Date: req.Date, PartySize: req.PartySize, SlotsUsed: 1}, nil
}

type stubCreate struct{}

func (stubCreate) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return &createBooking.Response{ReservationCode: "x", PartySize: req.PartySize, Date: req.Date, StartTime: req.StartTime, SlotsUsed: 1}, nil
}

type stubReservations struct{}

func (stubReservations) GetReservation(_ context.Context, code string) (*models.ReservationResponse, error) {
	return &models.ReservationResponse{Code: code}, nil
}

func (stubReservations) CancelReservation(_ context.Context, code string) (*models.CancelResponse, error) {
	return &models.CancelResponse{Code: code}, nil
}

func (stubReservations) GetDayReservations(_ context.Context, date time.Time) (*models.ReservationListResponse, error) {
	return &models.ReservationListResponse{Date: date.Format(domain.DateFormat)}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(limiter *middleware.RateLimiter) http.Handler {
	return NewRouter(Dependencies{
		CheckAvailability: stubCheck{},
		GetAvailableSlots: stubSlots{},
		CreateBooking:     stubCreate{},
		Reservations:      stubReservations{},
		ContactPhone:      "64534343",
		AllowedOrigins:    []string{"https://example.com"},
		Metrics:           metrics.NewWithRegistry("router-test", prometheus.NewRegistry()),
		MetricsPath:       "/metrics",
		RateLimiter:       limiter,
		Logger:            nopLogger{},
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		method   string
		target   string
		body     string
		wantCode int
	}{
		{method: http.MethodPost, target: "/api/v1/availability", body: `{"partySize":2,"date":"2026-05-01","time":"20:00"}`, wantCode: http.StatusOK},
		{method: http.MethodGet, target: "/api/v1/days/2026-05-01/slots?partySize=2", wantCode: http.StatusOK},
		{method: http.MethodGet, target: "/api/v1/rules", wantCode: http.StatusOK},
		{method: http.MethodPost, target: "/api/v1/reservations", body: `{"partySize":2,"date":"2026-05-01","time":"20:00","guestName":"Ana"}`, wantCode: http.StatusCreated},
		{method: http.MethodGet, target: "/api/v1/reservations/abc", wantCode: http.StatusOK},
		{method: http.MethodDelete, target: "/api/v1/reservations/abc", wantCode: http.StatusOK},
		{method: http.MethodGet, target: "/api/v1/days/2026-05-01/reservations", wantCode: http.StatusOK},
		{method: http.MethodGet, target: "/metrics", wantCode: http.StatusOK},
		{method: http.MethodPut, target: "/api/v1/reservations/abc", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, target: "/api/v1/unknown", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	router := newTestRouter(nil)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"partySize":3,"date":"2026-05-01","time":"20:00"}`)
	require.NotPanics(t, func() {
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/availability", body))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rules", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimit(t *testing.T) {
	router := newTestRouter(middleware.NewRateLimiter(0.001, 1))

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/rules", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/rules", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
