package domain

import "github.com/m04kA/SMC-SeatingService/pkg/types"

// SlotLoad загрузка слота (или пары слотов) для конкретного размера группы
type SlotLoad struct {
	StartTime  types.TimeString
	SlotsUsed  int // 1 или 2
	Occupied   int // занятые места в окне
	Capacity   int // 3 для одного слота, 6 для объединенной пары
	Admissible bool
}

// FreeSeats returns seats left in the window, never negative
func (s *SlotLoad) FreeSeats() int {
	if free := s.Capacity - s.Occupied; free > 0 {
		return free
	}
	return 0
}

// IsFull returns true if no seats are left
func (s *SlotLoad) IsFull() bool {
	return s.FreeSeats() == 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100+)
// Объединенная пара может оказаться заполнена больше чем на 100%
func (s *SlotLoad) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Occupied) / float64(s.Capacity) * 100
}
