package create_booking

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
)

var (
	// ErrSlotNotAvailable возвращается, когда в запрошенное время не хватает мест
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrPartyOverLimit возвращается для групп, которые бронируются только по телефону
	ErrPartyOverLimit = errors.New("create_booking: party size over online limit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotUnavailableError отказ по вместимости с альтернативными временами
type SlotUnavailableError struct {
	Suggestions domain.SuggestionSet
}

func (e *SlotUnavailableError) Error() string {
	if len(e.Suggestions) == 0 {
		return ErrSlotNotAvailable.Error()
	}
	return ErrSlotNotAvailable.Error() + ", try " + strings.Join(e.Suggestions.Strings(), ", ")
}

func (e *SlotUnavailableError) Unwrap() error {
	return ErrSlotNotAvailable
}
