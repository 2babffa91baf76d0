package get_reservation

import (
	"context"

	"github.com/m04kA/SMC-SeatingService/internal/service/bookings/models"
)

type ReservationService interface {
	GetReservation(ctx context.Context, code string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
