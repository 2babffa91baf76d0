package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeatingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeatingService/internal/service/bookings"
)

const (
	msgInvalidCode      = "некорректный код брони"
	msgNotFound         = "бронь не найдена"
	msgAlreadyCancelled = "бронь уже отменена"
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

// Handle DELETE /api/v1/reservations/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	result, err := h.service.CancelReservation(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("DELETE /reservations/{code} - Invalid code: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, bookings.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{code} - Reservation not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("DELETE /reservations/{code} - Already cancelled: code=%s", code)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("DELETE /reservations/{code} - Failed to cancel reservation: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{code} - Reservation cancelled successfully: code=%s, seats_released=%d",
		code, result.SeatsReleased)
	handlers.RespondJSON(w, http.StatusOK, result)
}
