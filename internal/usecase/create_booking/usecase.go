package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SeatingService/internal/capacity"
	"github.com/m04kA/SMC-SeatingService/internal/domain"
)

// UseCase use case для создания брони
type UseCase struct {
	bookingRepo   BookingRepository
	txManager     TransactionManager
	codeGenerator CodeGenerator
	random        RandomSource
	metrics       MetricsRecorder
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		codeGenerator: &UUIDCodeGenerator{},
		random:        capacity.DefaultRandom,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute выполняет use case создания брони
// Проверка вместимости и вставка мест идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: party=%d, date=%s, time=%s",
		req.PartySize, req.Date.Format(domain.DateFormat), req.StartTime)

	// 2. Большие группы только по телефону
	if capacity.IsOverLimit(req.PartySize) {
		uc.logger.Warn("CreateBooking: party=%d is over the online limit", req.PartySize)
		uc.recordDecision(domain.AdmissionOverLimit)
		return nil, fmt.Errorf("%w: party of %d", ErrPartyOverLimit, req.PartySize)
	}

	admission := domain.AdmissionRequest{
		PartySize:     req.PartySize,
		Date:          req.Date,
		RequestedTime: req.StartTime,
	}

	var created []*domain.Booking
	code := uc.codeGenerator.NewCode()

	// 3. Выполняем проверку и вставку в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Снимок мест на день с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDateForUpdate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 3.2. Повторная проверка вместимости на снимке транзакции
		decision := capacity.Evaluate(admission, bookings)
		if !decision.IsAdmitted() {
			suggestions := capacity.Suggest(admission, bookings, uc.random)
			uc.logger.Warn("CreateBooking: %s is full for party=%d, suggesting [%s]",
				req.StartTime, req.PartySize, strings.Join(suggestions.Strings(), ", "))
			return &SlotUnavailableError{Suggestions: suggestions}
		}

		// 3.3. Одна запись на каждого гостя, общий код брони
		seats := make([]*domain.Booking, 0, req.PartySize)
		for i := 0; i < req.PartySize; i++ {
			seats = append(seats, &domain.Booking{
				ReservationCode: code,
				BookingDate:     req.Date,
				TimeOfDay:       req.StartTime,
				Status:          domain.StatusConfirmed,
				GuestName:       strings.TrimSpace(req.GuestName),
				GuestPhone:      req.GuestPhone,
				Notes:           req.Notes,
			})
		}

		created, err = uc.bookingRepo.CreateSeats(txCtx, seats)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create seats: %v", err)
			return fmt.Errorf("%w: failed to create seats: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		var unavailable *SlotUnavailableError
		if errors.As(err, &unavailable) {
			uc.recordDecision(domain.AdmissionFull)
			uc.recordSuggestions(len(unavailable.Suggestions))
			return nil, unavailable
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		// Ошибки самой транзакции (begin/commit/исчерпаны повторы)
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.recordDecision(domain.AdmissionOK)
	if uc.metrics != nil {
		uc.metrics.RecordSeatsBooked(len(created))
	}

	uc.logger.Info("CreateBooking: successfully created reservation code=%s with %d seats", code, len(created))

	return toResponse(code, req, created), nil
}

func (uc *UseCase) recordDecision(status domain.AdmissionStatus) {
	if uc.metrics != nil {
		uc.metrics.RecordDecision(string(status))
	}
}

func (uc *UseCase) recordSuggestions(count int) {
	if uc.metrics != nil {
		uc.metrics.RecordSuggestions(count)
	}
}

func toResponse(code string, req *Request, created []*domain.Booking) *Response {
	resp := &Response{
		ReservationCode: code,
		PartySize:       len(created),
		Date:            req.Date,
		StartTime:       req.StartTime,
		SlotsUsed:       capacity.SlotsRequired(req.PartySize),
		Status:          string(domain.StatusConfirmed),
		GuestName:       strings.TrimSpace(req.GuestName),
		GuestPhone:      req.GuestPhone,
		Notes:           req.Notes,
		SeatIDs:         make([]int64, 0, len(created)),
	}

	for _, seat := range created {
		resp.SeatIDs = append(resp.SeatIDs, seat.ID)
		if resp.CreatedAt.IsZero() {
			resp.CreatedAt = seat.CreatedAt
		}
	}

	return resp
}
