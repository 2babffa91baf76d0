package models

import (
	"time"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
)

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	Code        string  `json:"code"`
	Date        string  `json:"date"` // "2026-05-01"
	Time        string  `json:"time"` // "20:30"
	PartySize   int     `json:"partySize"`
	Status      string  `json:"status"`
	GuestName   string  `json:"guestName"`
	GuestPhone  *string `json:"guestPhone,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Date         string                `json:"date"`
	SeatsBooked  int                   `json:"seatsBooked"`
	Reservations []ReservationResponse `json:"reservations"`
}

// CancelResponse результат отмены
type CancelResponse struct {
	Code          string `json:"code"`
	SeatsReleased int64  `json:"seatsReleased"`
}

// FromDomainReservation конвертирует места одной брони в DTO
func FromDomainReservation(seats []*domain.Booking) *ReservationResponse {
	res := domain.NewReservation(seats)
	if res == nil {
		return nil
	}

	resp := &ReservationResponse{
		Code:       res.Code,
		Date:       res.BookingDate.Format(domain.DateFormat),
		Time:       res.TimeOfDay.String(),
		PartySize:  res.PartySize,
		Status:     string(res.Status),
		GuestName:  res.GuestName,
		GuestPhone: res.GuestPhone,
		Notes:      res.Notes,
		CreatedAt:  res.CreatedAt,
	}

	// Берем время отмены у любого отмененного места
	for _, seat := range seats {
		if seat.CancelledAt != nil {
			cancelledStr := seat.CancelledAt.Format(time.RFC3339)
			resp.CancelledAt = &cancelledStr
			break
		}
	}

	return resp
}

// FromDomainDay группирует места дня по коду брони, сохраняя порядок
func FromDomainDay(date time.Time, seats []*domain.Booking) *ReservationListResponse {
	resp := &ReservationListResponse{
		Date:         date.Format(domain.DateFormat),
		SeatsBooked:  len(seats),
		Reservations: []ReservationResponse{},
	}

	order := make([]string, 0)
	groups := make(map[string][]*domain.Booking)
	for _, seat := range seats {
		if _, ok := groups[seat.ReservationCode]; !ok {
			order = append(order, seat.ReservationCode)
		}
		groups[seat.ReservationCode] = append(groups[seat.ReservationCode], seat)
	}

	for _, code := range order {
		if r := FromDomainReservation(groups[code]); r != nil {
			resp.Reservations = append(resp.Reservations, *r)
		}
	}

	return resp
}
