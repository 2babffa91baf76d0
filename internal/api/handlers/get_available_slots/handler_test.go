package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SeatingService/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	got *getAvailableSlots.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableSlots.Response{
		Date:      req.Date,
		PartySize: req.PartySize,
		SlotsUsed: 2,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "21:00", Occupied: 1, Capacity: 6, FreeSeats: 5, Available: true},
			{StartTime: "21:30", Occupied: 0, Capacity: 6, FreeSeats: 6, Available: false},
		},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/days/{date}/slots", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/api/v1/days/2026-05-01/slots?partySize=5&onlyAvailable=false")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-05-01", body.Date)
	assert.Equal(t, 5, body.PartySize)
	assert.Equal(t, 60, body.DurationMinutes)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, AvailableSlot{StartTime: "21:00", OccupiedSeats: 1, AvailableSeats: 5, TotalSeats: 6, Available: true}, body.Slots[0])
	assert.False(t, body.Slots[1].Available)
}

func TestHandle_DefaultPartySize(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/api/v1/days/2026-05-01/slots")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.got.PartySize)
	assert.False(t, uc.got.OnlyAvailable)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		err      error
		wantCode int
	}{
		{name: "bad date", target: "/api/v1/days/2026-13-01/slots", wantCode: http.StatusBadRequest},
		{name: "bad party", target: "/api/v1/days/2026-05-01/slots?partySize=many", wantCode: http.StatusBadRequest},
		{name: "bad flag", target: "/api/v1/days/2026-05-01/slots?onlyAvailable=maybe", wantCode: http.StatusBadRequest},
		{name: "over limit", target: "/api/v1/days/2026-05-01/slots?partySize=9", err: getAvailableSlots.ErrPartyOverLimit, wantCode: http.StatusUnprocessableEntity},
		{name: "invalid", target: "/api/v1/days/2026-05-01/slots?partySize=0", err: getAvailableSlots.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal", target: "/api/v1/days/2026-05-01/slots", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
