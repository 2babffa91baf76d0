package capacity

import (
	"math/rand/v2"
	"slices"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

// RandomSource источник случайности для выборки альтернатив
// *rand.Rand из math/rand/v2 подходит без обертки
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRandom потокобезопасный источник на глобальном генераторе math/rand/v2
var DefaultRandom RandomSource = globalRandom{}

// CandidateStarts все времена начала рабочего дня с шагом 30 минут: 10:00 ... 21:30
func CandidateStarts() []int {
	starts := make([]int, 0, (domain.LastStartMinutes-domain.OpeningMinutes)/domain.SlotDurationMinutes+1)
	for t := domain.OpeningMinutes; t <= domain.LastStartMinutes; t += domain.SlotDurationMinutes {
		starts = append(starts, t)
	}
	return starts
}

// admissibleAt правило допуска для подбора: для пары слотов второй должен начаться до закрытия
func admissibleAt(partySize, startMinutes int, bookings []*domain.Booking) bool {
	if IsOverLimit(partySize) {
		return false
	}
	if SlotsRequired(partySize) == 2 && startMinutes+domain.SlotDurationMinutes >= domain.ClosingMinutes {
		return false
	}
	return fits(partySize, startMinutes, bookings)
}

// AdmissibleStarts все допустимые времена начала для группы, по возрастанию
func AdmissibleStarts(partySize int, dayBookings []*domain.Booking) []types.TimeString {
	result := make([]types.TimeString, 0)
	for _, start := range CandidateStarts() {
		if admissibleAt(partySize, start, dayBookings) {
			result = append(result, types.MustFromMinutes(start))
		}
	}
	return result
}

// Suggest до трех альтернативных времен на тот же день
// Если подходящих больше трех, берется равномерная случайная выборка (тасование
// Фишера-Йетса), затем результат сортируется по времени
func Suggest(req domain.AdmissionRequest, dayBookings []*domain.Booking, rnd RandomSource) domain.SuggestionSet {
	candidates := AdmissibleStarts(req.PartySize, dayBookings)

	if len(candidates) > domain.MaxSuggestions {
		if rnd == nil {
			rnd = DefaultRandom
		}
		shuffle(candidates, rnd)
		candidates = candidates[:domain.MaxSuggestions]
	}

	// HH:MM с ведущими нулями сортируется лексикографически по времени
	slices.Sort(candidates)

	return domain.SuggestionSet(candidates)
}

func shuffle(items []types.TimeString, rnd RandomSource) {
	for i := len(items) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
