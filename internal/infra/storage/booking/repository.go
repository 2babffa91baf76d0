package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
	"github.com/m04kA/SMC-SeatingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SeatingService/pkg/psqlbuilder"
)

const tableSeatBookings = "seat_bookings"

var seatColumns = []string{
	"id",
	"reservation_code",
	"booking_date",
	"booking_time",
	"status",
	"guest_name",
	"guest_phone",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий мест (одна строка = одно занятое место)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate возвращает подтвержденные места на дату, упорядоченные по времени
// Без блокировок, подходит для чтения в том числе в read-only транзакции
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return r.getByDate(ctx, date, false)
}

// GetByDateForUpdate как GetByDate, но блокирует строки (FOR UPDATE)
// Вызывается внутри пишущей транзакции перед повторной проверкой вместимости
func (r *Repository) GetByDateForUpdate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return r.getByDate(ctx, date, true)
}

func (r *Repository) getByDate(ctx context.Context, date time.Time, forUpdate bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(seatColumns...).
		From(tableSeatBookings).
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		OrderBy("booking_time ASC", "id ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CreateSeats вставляет места одной брони одним запросом
// Заполняет ID, CreatedAt и UpdatedAt у переданных записей
func (r *Repository) CreateSeats(ctx context.Context, seats []*domain.Booking) ([]*domain.Booking, error) {
	if len(seats) == 0 {
		return nil, ErrEmptyBatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert(tableSeatBookings).
		Columns(
			"reservation_code",
			"booking_date",
			"booking_time",
			"status",
			"guest_name",
			"guest_phone",
			"notes",
		)

	for _, seat := range seats {
		insertBuilder = insertBuilder.Values(
			seat.ReservationCode,
			seat.BookingDate.Format(domain.DateFormat),
			seat.TimeOfDay,
			seat.Status,
			seat.GuestName,
			seat.GuestPhone,
			seat.Notes,
		)
	}

	query, args, err := insertBuilder.Suffix("RETURNING id, created_at, updated_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSeats - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSeats - execute insert: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(seats) {
			return nil, fmt.Errorf("%w: CreateSeats - more rows returned than inserted", ErrScanRow)
		}

		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&seats[i].ID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateSeats - scan returning: %v", ErrScanRow, err)
		}
		seats[i].CreatedAt = createdAt.Time
		seats[i].UpdatedAt = updatedAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateSeats - rows error: %w", ErrScanRow, err)
	}

	return seats, nil
}

// GetByReservationCode возвращает все места брони, включая отмененные
func (r *Repository) GetByReservationCode(ctx context.Context, code string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(seatColumns...).
		From(tableSeatBookings).
		Where(squirrel.Eq{"reservation_code": code}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationCode - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationCode - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings, nil
}

// CancelByReservationCode отменяет подтвержденные места брони и возвращает их число
func (r *Repository) CancelByReservationCode(ctx context.Context, code string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableSeatBookings).
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reservation_code": code}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelByReservationCode - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelByReservationCode - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelByReservationCode - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return 0, ErrNothingToCancel
	}

	return rowsAffected, nil
}

// scanBookings сканирует результаты запроса в слайс мест
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime
		var cancelledAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ReservationCode,
			&booking.BookingDate,
			&booking.TimeOfDay,
			&booking.Status,
			&booking.GuestName,
			&booking.GuestPhone,
			&booking.Notes,
			&cancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if cancelledAt.Valid {
			t := cancelledAt.Time
			booking.CancelledAt = &t
		}
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
