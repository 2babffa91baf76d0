package check_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
)

const (
	msgAvailable     = "Есть свободные места на %s в %s для %d чел."
	msgFullWithTimes = "На %s мест нет. Ближайшие свободные времена: %s"
	msgFullNoTimes   = "На %s мест нет, и на этот день свободных времен не осталось."
	msgOverLimit     = "Для групп больше %d человек, пожалуйста, позвоните по телефону %s, чтобы оформить бронь."
)

// Message текст для гостя по решению
func Message(decision domain.Decision, suggestions domain.SuggestionSet, contactPhone string) string {
	requested := decision.RequestedTime.String()
	if requested == "" {
		requested = "это время"
	}

	switch decision.Status {
	case domain.AdmissionOK:
		date := "выбранную дату"
		if !decision.Date.IsZero() {
			date = decision.Date.Format(domain.DateFormat)
		}
		return fmt.Sprintf(msgAvailable, date, requested, decision.PartySize)
	case domain.AdmissionOverLimit:
		return fmt.Sprintf(msgOverLimit, domain.MaxPartySize, contactPhone)
	default:
		if len(suggestions) == 0 {
			return fmt.Sprintf(msgFullNoTimes, requested)
		}
		return fmt.Sprintf(msgFullWithTimes, requested, strings.Join(suggestions.Strings(), ", "))
	}
}
