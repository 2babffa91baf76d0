package capacity

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

// fixedRandom всегда возвращает одну и ту же позицию относительно n
type fixedRandom struct {
	last bool // true: n-1 (без перестановок), false: 0
}

func (f fixedRandom) IntN(n int) int {
	if f.last {
		return n - 1
	}
	return 0
}

func TestCandidateStarts(t *testing.T) {
	starts := CandidateStarts()

	require.Len(t, starts, 24)
	assert.Equal(t, 600, starts[0])
	assert.Equal(t, 1290, starts[len(starts)-1])
	for i := 1; i < len(starts); i++ {
		assert.Equal(t, 30, starts[i]-starts[i-1])
	}
}

func TestAdmissibleStarts_ClosingGuard(t *testing.T) {
	single := AdmissibleStarts(2, nil)
	assert.Len(t, single, 24)
	assert.Contains(t, single, types.TimeString("21:30"))

	pair := AdmissibleStarts(4, nil)
	assert.Len(t, pair, 23)
	assert.Contains(t, pair, types.TimeString("21:00"))
	assert.NotContains(t, pair, types.TimeString("21:30"))
}

func TestAdmissibleStarts_OverLimitIsEmpty(t *testing.T) {
	assert.Empty(t, AdmissibleStarts(7, nil))
}

func TestSuggest_NoShuffleTakesEarliest(t *testing.T) {
	got := Suggest(request(2, "12:00"), nil, fixedRandom{last: true})
	assert.Equal(t, domain.SuggestionSet{"10:00", "10:30", "11:00"}, got)
}

func TestSuggest_ShuffleThenSort(t *testing.T) {
	// j=0 на каждом шаге сдвигает список на одну позицию влево
	got := Suggest(request(2, "12:00"), nil, fixedRandom{})
	assert.Equal(t, domain.SuggestionSet{"10:30", "11:00", "11:30"}, got)
}

func TestSuggest_FewCandidatesReturnedAsIs(t *testing.T) {
	// Заняты все слоты, кроме 13:00 и 19:30
	var times []string
	for _, start := range CandidateStarts() {
		if start == 780 || start == 1170 {
			continue
		}
		times = append(times, repeat(types.MustFromMinutes(start).String(), 3)...)
	}

	got := Suggest(request(1, "12:00"), seats(times...), fixedRandom{})
	assert.Equal(t, domain.SuggestionSet{"13:00", "19:30"}, got)
}

func TestSuggest_OnlyLateGapYieldsNothingForPairs(t *testing.T) {
	// Все слоты до 21:00 включительно заняты, свободен только 21:30
	var times []string
	for _, start := range CandidateStarts() {
		if start == domain.LastStartMinutes {
			continue
		}
		times = append(times, repeat(types.MustFromMinutes(start).String(), 3)...)
	}
	bookings := seats(times...)

	assert.Empty(t, Suggest(request(4, "21:30"), bookings, DefaultRandom))
	assert.Equal(t, domain.SuggestionSet{"21:30"}, Suggest(request(1, "21:00"), bookings, DefaultRandom))
}

func TestSuggest_NilRandomFallsBackToDefault(t *testing.T) {
	got := Suggest(request(1, "12:00"), nil, nil)
	assert.Len(t, got, 3)
}

func TestSuggest_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))

	for round := 0; round < 300; round++ {
		bookings := randomDay(rng, rng.IntN(80))
		partySize := 1 + rng.IntN(6)

		admissible := AdmissibleStarts(partySize, bookings)
		got := Suggest(request(partySize, "12:00"), bookings, rng)

		assert.LessOrEqual(t, len(got), 3)
		assert.True(t, slices.IsSorted(got), "round=%d: %v not sorted", round, got)
		assert.Equal(t, min(3, len(admissible)), len(got))

		for _, at := range got {
			start, err := at.Minutes()
			require.NoError(t, err)
			assert.Contains(t, admissible, at)
			assert.True(t, admissibleAt(partySize, start, bookings))
			if partySize > 3 {
				assert.Less(t, start+30, domain.ClosingMinutes)
			}
		}

		// Повторный вызов дает тот же набор допустимых времен
		assert.Equal(t, admissible, AdmissibleStarts(partySize, bookings))
	}
}

func TestSuggest_SamplingCoversWholePool(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	seen := make(map[types.TimeString]bool)

	for i := 0; i < 500; i++ {
		for _, at := range Suggest(request(1, "12:00"), nil, rng) {
			seen[at] = true
		}
	}

	assert.Len(t, seen, 24)
}

func TestSuggest_SamplingIsUniform(t *testing.T) {
	const draws = 24000

	rng := rand.New(rand.NewPCG(11, 29))
	counts := make(map[types.TimeString]int)

	for i := 0; i < draws; i++ {
		set := Suggest(request(1, "12:00"), nil, rng)
		require.Len(t, set, domain.MaxSuggestions)
		for _, at := range set {
			counts[at]++
		}
	}

	// каждое из 24 времен попадает в выборку с вероятностью 3/24
	expected := float64(draws*domain.MaxSuggestions) / 24
	require.Len(t, counts, 24)
	for at, n := range counts {
		assert.InDeltaf(t, expected, float64(n), expected*0.1, "time %s drawn %d times", at, n)
	}
}
