package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
)

// BookingRepository источник снимка мест на день
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// RandomSource источник случайности для выборки альтернатив (для тестирования)
type RandomSource interface {
	IntN(n int) int
}

// MetricsRecorder учет решений
type MetricsRecorder interface {
	RecordDecision(status string)
	RecordSuggestions(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
