package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
)

// BookingRepository интерфейс репозитория мест
type BookingRepository interface {
	GetByDateForUpdate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	CreateSeats(ctx context.Context, seats []*domain.Booking) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// RandomSource источник случайности для альтернатив при отказе
type RandomSource interface {
	IntN(n int) int
}

// CodeGenerator генератор кода брони (для тестирования)
type CodeGenerator interface {
	NewCode() string
}

// MetricsRecorder учет решений и занятых мест
type MetricsRecorder interface {
	RecordDecision(status string)
	RecordSuggestions(count int)
	RecordSeatsBooked(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDCodeGenerator генерирует коды броней на основе UUIDv4
type UUIDCodeGenerator struct{}

// NewCode возвращает новый код брони
func (g *UUIDCodeGenerator) NewCode() string {
	return uuid.NewString()
}
