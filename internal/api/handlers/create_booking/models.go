package create_booking

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
	createBooking "github.com/m04kA/SMC-SeatingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PartySize  int     `json:"partySize"`
	Date       string  `json:"date"` // "2026-05-01"
	Time       string  `json:"time"` // "20:30"
	GuestName  string  `json:"guestName"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Code            string  `json:"code"`
	PartySize       int     `json:"partySize"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	GuestName       string  `json:"guestName"`
	GuestPhone      *string `json:"guestPhone,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// SlotUnavailableResponse тело ответа 409 с альтернативами
type SlotUnavailableResponse struct {
	Code        int      `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		PartySize:  r.PartySize,
		Date:       date,
		StartTime:  startTime,
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *ReservationResponse {
	return &ReservationResponse{
		Code:            resp.ReservationCode,
		PartySize:       resp.PartySize,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.StartTime.String(),
		DurationMinutes: resp.SlotsUsed * domain.SlotDurationMinutes,
		Status:          resp.Status,
		GuestName:       resp.GuestName,
		GuestPhone:      resp.GuestPhone,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
