package get_day_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeatingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeatingService/internal/domain"
	"github.com/m04kA/SMC-SeatingService/internal/service/bookings"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /days/{date}/reservations - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.GetDayReservations(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /days/{date}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /days/{date}/reservations - Failed to get reservations: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /days/{date}/reservations - Reservations retrieved successfully: date=%s, count=%d",
		list.Date, len(list.Reservations))
	handlers.RespondJSON(w, http.StatusOK, list)
}
