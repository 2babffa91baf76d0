package bookings

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь с таким кодом не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAlreadyCancelled возвращается при повторной отмене брони
	ErrAlreadyCancelled = errors.New("reservation already cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
