package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SeatingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SeatingService/internal/service/bookings/models"
)

// Service сервис для работы с созданными бронями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     MetricsRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
// metrics может быть nil
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetReservation получает бронь по коду
func (s *Service) GetReservation(ctx context.Context, code string) (*models.ReservationResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: reservation code is required", ErrInvalidInput)
	}

	s.logger.Info("GetReservation: fetching reservation code=%s", code)

	seats, err := s.bookingRepo.GetByReservationCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetReservation: reservation code=%s not found", code)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetReservation: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetReservation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetReservation: successfully fetched reservation code=%s (%d seats)", code, len(seats))
	return models.FromDomainReservation(seats), nil
}

// GetDayReservations список подтвержденных броней на дату
func (s *Service) GetDayReservations(ctx context.Context, date time.Time) (*models.ReservationListResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("GetDayReservations: fetching reservations for %s", date.Format(domain.DateFormat))

	var seats []*domain.Booking
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		seats, err = s.bookingRepo.GetByDate(txCtx, date)
		return err
	})
	if err != nil {
		s.logger.Error("GetDayReservations: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDayReservations - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainDay(date, seats)
	s.logger.Info("GetDayReservations: %d reservations, %d seats on %s",
		len(resp.Reservations), resp.SeatsBooked, resp.Date)
	return resp, nil
}

// CancelReservation отменяет все места брони и освобождает вместимость
func (s *Service) CancelReservation(ctx context.Context, code string) (*models.CancelResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: reservation code is required", ErrInvalidInput)
	}

	s.logger.Info("CancelReservation: cancelling reservation code=%s", code)

	var released int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Проверяем, что бронь существует
		seats, err := s.bookingRepo.GetByReservationCode(txCtx, code)
		if err != nil {
			return err
		}

		res := domain.NewReservation(seats)
		if res.Status == domain.StatusCancelled {
			return ErrAlreadyCancelled
		}

		released, err = s.bookingRepo.CancelByReservationCode(txCtx, code)
		return err
	})

	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("CancelReservation: reservation code=%s not found", code)
			return nil, ErrReservationNotFound
		case errors.Is(err, ErrAlreadyCancelled), errors.Is(err, bookingRepo.ErrNothingToCancel):
			s.logger.Warn("CancelReservation: reservation code=%s already cancelled", code)
			return nil, ErrAlreadyCancelled
		default:
			s.logger.Error("CancelReservation: repository error for code=%s: %v", code, err)
			return nil, fmt.Errorf("%w: CancelReservation - repository error: %v", ErrInternal, err)
		}
	}

	if s.metrics != nil {
		s.metrics.RecordSeatsReleased(int(released))
	}

	s.logger.Info("CancelReservation: successfully cancelled reservation code=%s, %d seats released", code, released)
	return &models.CancelResponse{Code: code, SeatsReleased: released}, nil
}
