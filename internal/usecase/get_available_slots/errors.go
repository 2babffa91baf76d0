package get_available_slots

import "errors"

var (
	// ErrPartyOverLimit возвращается для групп, которые бронируются только по телефону
	ErrPartyOverLimit = errors.New("get_available_slots: party size over online limit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
