package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда по коду брони нет ни одного места
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrNothingToCancel возвращается, когда все места брони уже отменены
	ErrNothingToCancel = errors.New("booking.repository: nothing to cancel")

	// ErrEmptyBatch возвращается при попытке вставить пустой список мест
	ErrEmptyBatch = errors.New("booking.repository: empty seat batch")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
