package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
)

// BookingRepository интерфейс репозитория мест
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	GetByReservationCode(ctx context.Context, code string) ([]*domain.Booking, error)
	CancelByReservationCode(ctx context.Context, code string) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учет освобожденных мест
type MetricsRecorder interface {
	RecordSeatsReleased(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
