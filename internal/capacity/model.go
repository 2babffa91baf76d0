// Package capacity модель вместимости слотов: сколько слотов нужно группе,
// какие минуты покрывает слот и сколько мест в нем уже занято.
// Функции пакета чистые и не хранят состояние, их можно вызывать конкурентно.
package capacity

import (
	"github.com/m04kA/SMC-SeatingService/internal/domain"
	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

// Window включительный диапазон минут от полуночи
type Window struct {
	Start int
	End   int
}

// Contains проверяет, попадает ли минута в окно (границы включены)
func (w Window) Contains(minute int) bool {
	return minute >= w.Start && minute <= w.End
}

// SlotsRequired 1 слот для групп до 3 человек, иначе 2 подряд
// Группы больше 6 обрабатываются вызывающим кодом как OVER_LIMIT
func SlotsRequired(partySize int) int {
	if partySize <= domain.MaxSingleSlotPartySize {
		return 1
	}
	return 2
}

// SlotWindow окно слота, начинающегося в startMinutes: [start, start+29]
func SlotWindow(startMinutes int) Window {
	return Window{
		Start: startMinutes,
		End:   startMinutes + domain.SlotDurationMinutes - 1,
	}
}

// CountOccupants считает записи, время которых попадает в окно
// Записи без времени или с нераспознаваемым временем пропускаются
func CountOccupants(bookings []*domain.Booking, w Window) int {
	count := 0
	for _, booking := range bookings {
		if booking == nil {
			continue
		}
		minute, err := booking.TimeOfDay.Minutes()
		if err != nil {
			continue
		}
		if w.Contains(minute) {
			count++
		}
	}
	return count
}

// PoolCapacity вместимость окна для группы: 3 для одного слота, 6 для пары
func PoolCapacity(partySize int) int {
	return SlotsRequired(partySize) * domain.MaxCapacityPerSlot
}

// Occupied занятые места в окне группы: один слот или сумма двух подряд
func Occupied(partySize, startMinutes int, bookings []*domain.Booking) int {
	used := CountOccupants(bookings, SlotWindow(startMinutes))
	if SlotsRequired(partySize) == 2 {
		used += CountOccupants(bookings, SlotWindow(startMinutes+domain.SlotDurationMinutes))
	}
	return used
}

// fits правило допуска без проверки времени закрытия
func fits(partySize, startMinutes int, bookings []*domain.Booking) bool {
	return Occupied(partySize, startMinutes, bookings)+partySize <= PoolCapacity(partySize)
}

// Load загрузка окна для группы с флагом допустимости как для подбора альтернатив
func Load(partySize, startMinutes int, bookings []*domain.Booking) domain.SlotLoad {
	start, _ := types.FromMinutes(startMinutes)
	return domain.SlotLoad{
		StartTime:  start,
		SlotsUsed:  SlotsRequired(partySize),
		Occupied:   Occupied(partySize, startMinutes, bookings),
		Capacity:   PoolCapacity(partySize),
		Admissible: admissibleAt(partySize, startMinutes, bookings),
	}
}
