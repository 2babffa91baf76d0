package get_day_reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SeatingService/internal/service/bookings/models"
)

type ReservationService interface {
	GetDayReservations(ctx context.Context, date time.Time) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
