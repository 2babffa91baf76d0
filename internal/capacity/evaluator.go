package capacity

import "github.com/m04kA/SMC-SeatingService/internal/domain"

// IsOverLimit группа слишком большая для онлайн-брони
func IsOverLimit(partySize int) bool {
	return partySize > domain.MaxPartySize
}

// Evaluate решает, можно ли посадить группу в запрошенное время
//
// Группы больше 6 получают OVER_LIMIT без просмотра броней.
// До 3 человек: занято в слоте + группа <= 3.
// От 4 до 6: занято в двух слотах суммарно + группа <= 6 (общий пул).
// Время закрытия здесь не проверяется, это делает только подбор альтернатив.
func Evaluate(req domain.AdmissionRequest, dayBookings []*domain.Booking) domain.Decision {
	decision := domain.Decision{
		PartySize:     req.PartySize,
		Date:          req.Date,
		RequestedTime: req.RequestedTime,
	}

	if IsOverLimit(req.PartySize) {
		decision.Status = domain.AdmissionOverLimit
		return decision
	}

	start, err := req.RequestedTime.Minutes()
	if err != nil {
		// Вход отсекает такие запросы раньше; сюда попадает только при прямом вызове
		decision.Status = domain.AdmissionFull
		return decision
	}

	if fits(req.PartySize, start, dayBookings) {
		decision.Status = domain.AdmissionOK
	} else {
		decision.Status = domain.AdmissionFull
	}

	return decision
}
