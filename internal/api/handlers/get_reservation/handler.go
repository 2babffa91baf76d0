package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeatingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeatingService/internal/service/bookings"
)

const (
	msgInvalidCode = "некорректный код брони"
	msgNotFound    = "бронь не найдена"
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

// Handle GET /api/v1/reservations/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	reservation, err := h.service.GetReservation(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /reservations/{code} - Invalid code: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, bookings.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{code} - Reservation not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /reservations/{code} - Failed to get reservation: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{code} - Reservation retrieved successfully: code=%s", code)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
