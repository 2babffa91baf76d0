package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SeatingService/internal/capacity"
	"github.com/m04kA/SMC-SeatingService/internal/domain"
)

// UseCase use case проверки свободных мест и подбора альтернатив
type UseCase struct {
	bookingRepo BookingRepository
	random      RandomSource
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		random:      capacity.DefaultRandom,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CheckAvailability: party=%d, date=%s, time=%s",
		req.PartySize, req.Date.Format(domain.DateFormat), req.RequestedTime)

	admission := domain.AdmissionRequest{
		PartySize:     req.PartySize,
		Date:          req.Date,
		RequestedTime: req.RequestedTime,
	}

	// 2. Большие группы отсекаются без чтения броней
	if capacity.IsOverLimit(req.PartySize) {
		decision := capacity.Evaluate(admission, nil)
		uc.logger.Info("CheckAvailability: party=%d is over the online limit", req.PartySize)
		uc.record(decision.Status, nil)
		return toResponse(decision, nil), nil
	}

	// 3. Получаем снимок мест на день
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Решение по запрошенному времени
	decision := capacity.Evaluate(admission, bookings)
	if decision.IsAdmitted() {
		uc.logger.Info("CheckAvailability: %s admitted for party=%d (%d seats on the day)",
			req.RequestedTime, req.PartySize, len(bookings))
		uc.record(decision.Status, nil)
		return toResponse(decision, nil), nil
	}

	// 5. Мест нет: подбираем альтернативы на тот же день
	suggestions := capacity.Suggest(admission, bookings, uc.random)
	uc.logger.Info("CheckAvailability: %s full for party=%d, suggesting [%v]",
		req.RequestedTime, req.PartySize, suggestions.Strings())
	uc.record(decision.Status, suggestions)

	return toResponse(decision, suggestions), nil
}

func (uc *UseCase) record(status domain.AdmissionStatus, suggestions domain.SuggestionSet) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.RecordDecision(string(status))
	if status == domain.AdmissionFull {
		uc.metrics.RecordSuggestions(len(suggestions))
	}
}

func toResponse(decision domain.Decision, suggestions domain.SuggestionSet) *Response {
	if suggestions == nil {
		suggestions = domain.SuggestionSet{}
	}
	return &Response{
		Status:        decision.Status,
		PartySize:     decision.PartySize,
		Date:          decision.Date,
		RequestedTime: decision.RequestedTime,
		Suggestions:   suggestions,
	}
}
