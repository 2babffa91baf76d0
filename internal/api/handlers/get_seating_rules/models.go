package get_seating_rules

import (
	"github.com/m04kA/SMC-SeatingService/internal/capacity"
	"github.com/m04kA/SMC-SeatingService/internal/domain"
	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

// RulesResponse правила вместимости для клиентов
type RulesResponse struct {
	SlotDurationMinutes    int      `json:"slotDurationMinutes"`
	SeatsPerSlot           int      `json:"seatsPerSlot"`
	MaxSingleSlotPartySize int      `json:"maxSingleSlotPartySize"`
	MaxOnlinePartySize     int      `json:"maxOnlinePartySize"`
	OpeningTime            string   `json:"openingTime"`
	LastStartTime          string   `json:"lastStartTime"`
	ClosingTime            string   `json:"closingTime"`
	StartTimes             []string `json:"startTimes"`
	MaxSuggestions         int      `json:"maxSuggestions"`
	ContactPhone           string   `json:"contactPhone,omitempty"`
}

// NewRulesResponse собирает ответ из констант модели вместимости
func NewRulesResponse(contactPhone string) *RulesResponse {
	starts := capacity.CandidateStarts()
	startTimes := make([]string, len(starts))
	for i, m := range starts {
		startTimes[i] = types.MustFromMinutes(m).String()
	}

	return &RulesResponse{
		SlotDurationMinutes:    domain.SlotDurationMinutes,
		SeatsPerSlot:           domain.MaxCapacityPerSlot,
		MaxSingleSlotPartySize: domain.MaxSingleSlotPartySize,
		MaxOnlinePartySize:     domain.MaxPartySize,
		OpeningTime:            types.MustFromMinutes(domain.OpeningMinutes).String(),
		LastStartTime:          types.MustFromMinutes(domain.LastStartMinutes).String(),
		ClosingTime:            types.MustFromMinutes(domain.ClosingMinutes).String(),
		StartTimes:             startTimes,
		MaxSuggestions:         domain.MaxSuggestions,
		ContactPhone:           contactPhone,
	}
}
