package get_day_reservations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
	"github.com/m04kA/SMC-SeatingService/internal/service/bookings/models"
)

type fakeService struct {
	got time.Time
	err error
}

func (f *fakeService) GetDayReservations(_ context.Context, date time.Time) (*models.ReservationListResponse, error) {
	f.got = date
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationListResponse{Date: date.Format(domain.DateFormat), Reservations: []models.ReservationResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, date string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/days/{date}/reservations", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/days/"+date+"/reservations", nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "2026-05-01")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2026-05-01","seatsBooked":0,"reservations":[]}`, rec.Body.String())
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), svc.got)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "May-1").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("boom")}, "2026-05-01").Code)
}
