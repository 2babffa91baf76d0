package check_availability

import (
	"time"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

// Request модель запроса на проверку свободных мест
type Request struct {
	PartySize     int              // Размер группы (>= 1)
	Date          time.Time        // Дата (без времени)
	RequestedTime types.TimeString // Желаемое время, например "20:30"
}

// Response решение и, если мест нет, альтернативные времена
type Response struct {
	Status        domain.AdmissionStatus
	PartySize     int
	Date          time.Time
	RequestedTime types.TimeString
	Suggestions   domain.SuggestionSet // заполняется только для FULL, может быть пустым
}
