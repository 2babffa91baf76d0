package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	PartySize  int              // Размер группы (1-6)
	Date       time.Time        // Дата брони (без времени)
	StartTime  types.TimeString // Время начала, например "20:30"
	GuestName  string           // Имя гостя
	GuestPhone *string          // Телефон (опционально)
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ReservationCode string           // Код брони, общий для всех мест
	PartySize       int              // Количество занятых мест
	Date            time.Time        // Дата брони
	StartTime       types.TimeString // Время начала
	SlotsUsed       int              // 1 или 2 слота
	Status          string           // Статус брони
	GuestName       string
	GuestPhone      *string
	Notes           *string
	SeatIDs         []int64   // ID созданных записей мест
	CreatedAt       time.Time // Время создания
}
