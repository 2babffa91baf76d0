package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SeatingService/internal/capacity"
	"github.com/m04kA/SMC-SeatingService/internal/domain"
)

// UseCase use case для получения загрузки слотов на день
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения загрузки слотов
// Возвращает все времена начала рабочего дня без случайной выборки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s, party=%d", req.Date.Format(domain.DateFormat), req.PartySize)

	// 2. Получаем места на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Считаем загрузку каждого окна
	slots := make([]Slot, 0, len(capacity.CandidateStarts()))
	for _, start := range capacity.CandidateStarts() {
		load := capacity.Load(req.PartySize, start, bookings)
		if req.OnlyAvailable && !load.Admissible {
			continue
		}
		slots = append(slots, Slot{
			StartTime: load.StartTime,
			Occupied:  load.Occupied,
			Capacity:  load.Capacity,
			FreeSeats: load.FreeSeats(),
			Available: load.Admissible,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d slots for date=%s (%d seats booked)",
		len(slots), req.Date.Format(domain.DateFormat), len(bookings))

	return &Response{
		Date:      req.Date,
		PartySize: req.PartySize,
		SlotsUsed: capacity.SlotsRequired(req.PartySize),
		Slots:     slots,
	}, nil
}
