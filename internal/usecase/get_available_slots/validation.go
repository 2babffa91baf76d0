package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SeatingService/internal/capacity"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PartySize < 1 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	if capacity.IsOverLimit(req.PartySize) {
		return fmt.Errorf("%w: party of %d", ErrPartyOverLimit, req.PartySize)
	}

	return nil
}
