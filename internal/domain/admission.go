package domain

import (
	"time"

	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

// AdmissionStatus итог проверки вместимости
type AdmissionStatus string

const (
	AdmissionOK        AdmissionStatus = "OK"
	AdmissionFull      AdmissionStatus = "FULL"
	AdmissionOverLimit AdmissionStatus = "OVER_LIMIT"
)

// AdmissionRequest разобранный и проверенный на входе запрос
type AdmissionRequest struct {
	PartySize     int
	Date          time.Time
	RequestedTime types.TimeString
}

// Decision решение по запросу, несет исходные поля для отображения
type Decision struct {
	Status        AdmissionStatus
	PartySize     int
	Date          time.Time
	RequestedTime types.TimeString
}

// IsAdmitted returns true for OK decisions
func (d Decision) IsAdmitted() bool {
	return d.Status == AdmissionOK
}

// SuggestionSet до трех альтернативных времен начала, по возрастанию
type SuggestionSet []types.TimeString

// Strings returns suggestions as plain "HH:MM" strings
func (s SuggestionSet) Strings() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.String()
	}
	return out
}
