package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

// Request модель запроса на получение загрузки дня
type Request struct {
	Date          time.Time // Дата (без времени)
	PartySize     int       // Размер группы, определяет один слот или пару
	OnlyAvailable bool      // Вернуть только допустимые времена
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time
	PartySize int
	SlotsUsed int // 1 или 2 слота на группу
	Slots     []Slot
}

// Slot загрузка окна, начинающегося в StartTime
type Slot struct {
	StartTime types.TimeString // Время начала, например "10:00"
	Occupied  int              // Занятые места в окне
	Capacity  int              // 3 или 6 для пары слотов
	FreeSeats int              // Свободные места
	Available bool             // Группа может начать в это время
}
