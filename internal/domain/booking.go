package domain

import (
	"time"

	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

// BookingStatus represents the status of a seat booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking одна запись = одно занятое место в слоте
// Группа из N гостей хранится как N записей с общим ReservationCode
type Booking struct {
	ID              int64
	ReservationCode string
	BookingDate     time.Time
	TimeOfDay       types.TimeString // может быть некорректным у старых записей, такие не учитываются
	Status          BookingStatus

	GuestName  string
	GuestPhone *string
	Notes      *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the seat still occupies capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the seat can be released
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// Reservation группа мест, созданная одним запросом
type Reservation struct {
	Code        string
	BookingDate time.Time
	TimeOfDay   types.TimeString
	PartySize   int
	Status      BookingStatus
	GuestName   string
	GuestPhone  *string
	Notes       *string
	CreatedAt   time.Time
}

// NewReservation собирает бронь из мест с одним кодом
// Возвращает nil для пустого списка
func NewReservation(seats []*Booking) *Reservation {
	if len(seats) == 0 {
		return nil
	}

	first := seats[0]
	res := &Reservation{
		Code:        first.ReservationCode,
		BookingDate: first.BookingDate,
		TimeOfDay:   first.TimeOfDay,
		Status:      StatusCancelled,
		GuestName:   first.GuestName,
		GuestPhone:  first.GuestPhone,
		Notes:       first.Notes,
		CreatedAt:   first.CreatedAt,
	}

	for _, seat := range seats {
		if seat.IsActive() {
			res.PartySize++
			res.Status = StatusConfirmed
		}
	}

	// Отмененная бронь показывает исходный размер группы
	if res.PartySize == 0 {
		res.PartySize = len(seats)
	}

	return res
}
