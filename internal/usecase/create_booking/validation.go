package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.PartySize < 1 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName must be at most %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
