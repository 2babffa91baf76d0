package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SeatingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	PartySize       int             `json:"partySize"`
	SlotsUsed       int             `json:"slotsUsed"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot загрузка окна для группы
type AvailableSlot struct {
	StartTime      string `json:"startTime"`
	OccupiedSeats  int    `json:"occupiedSeats"`
	AvailableSeats int    `json:"availableSeats"`
	TotalSeats     int    `json:"totalSeats"`
	Available      bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:      slot.StartTime.String(),
			OccupiedSeats:  slot.Occupied,
			AvailableSeats: slot.FreeSeats,
			TotalSeats:     slot.Capacity,
			Available:      slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		PartySize:       resp.PartySize,
		SlotsUsed:       resp.SlotsUsed,
		DurationMinutes: resp.SlotsUsed * domain.SlotDurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
// Пустой partySize означает группу по умолчанию
func ToUseCaseRequest(dateStr, partySizeStr, onlyAvailableStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	partySize := domain.DefaultPartySize
	if partySizeStr != "" {
		partySize, err = strconv.Atoi(partySizeStr)
		if err != nil {
			return nil, errInvalidPartySize
		}
	}

	onlyAvailable := false
	if onlyAvailableStr != "" {
		onlyAvailable, err = strconv.ParseBool(onlyAvailableStr)
		if err != nil {
			return nil, errInvalidFlag
		}
	}

	return &getAvailableSlots.Request{
		Date:          date,
		PartySize:     partySize,
		OnlyAvailable: onlyAvailable,
	}, nil
}
