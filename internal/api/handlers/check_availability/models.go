package check_availability

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SeatingService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-SeatingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CheckAvailabilityRequest HTTP request model
// partySize принимается числом или строкой ("4", "4 personas")
type CheckAvailabilityRequest struct {
	PartySize json.RawMessage `json:"partySize,omitempty"`
	Date      string          `json:"date"` // "2026-05-01"
	Time      string          `json:"time"` // "20:30" или "20:30:00"
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Status         string   `json:"status"` // OK, FULL, OVER_LIMIT
	PartySize      int      `json:"partySize"`
	Date           string   `json:"date"`
	RequestedTime  string   `json:"requestedTime"`
	Suggestions    []string `json:"suggestions"`
	SuggestedTimes string   `json:"suggestedTimes"` // "10:30, 11:00, 11:30"
	Message        string   `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(r.Date))
	if err != nil {
		return nil, errInvalidDate
	}

	// Парсим время
	requested, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, errInvalidTime
	}

	return &checkAvailability.Request{
		PartySize:     parsePartySize(r.PartySize),
		Date:          date,
		RequestedTime: requested,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response, contactPhone string) *AvailabilityResponse {
	suggestions := resp.Suggestions.Strings()
	return &AvailabilityResponse{
		Status:         string(resp.Status),
		PartySize:      resp.PartySize,
		Date:           resp.Date.Format(domain.DateFormat),
		RequestedTime:  resp.RequestedTime.String(),
		Suggestions:    suggestions,
		SuggestedTimes: strings.Join(suggestions, ", "),
		Message:        Message(toDecision(resp), resp.Suggestions, contactPhone),
	}
}

func toDecision(resp *checkAvailability.Response) domain.Decision {
	return domain.Decision{
		Status:        resp.Status,
		PartySize:     resp.PartySize,
		Date:          resp.Date,
		RequestedTime: resp.RequestedTime,
	}
}

// overLimitPartySize подставляется вместо чисел, не помещающихся в int
const overLimitPartySize = domain.MaxPartySize + 1

// parsePartySize разбирает размер группы как parseInt: ведущее целое число
// Отсутствующее, нечисловое или меньше 1 значение дает размер по умолчанию,
// переполнение дает размер сверх лимита
func parsePartySize(raw json.RawMessage) int {
	if len(raw) == 0 {
		return domain.DefaultPartySize
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		switch {
		case n > math.MaxInt32:
			return overLimitPartySize
		case n < 1:
			return domain.DefaultPartySize
		}
		return int(n)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.DefaultPartySize
	}

	return atLeastDefault(leadingInt(strings.TrimSpace(s)))
}

func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) && s[0] != '-' {
		return overLimitPartySize
	}
	if err != nil {
		return 0
	}
	return n
}

func atLeastDefault(n int) int {
	if n < 1 {
		return domain.DefaultPartySize
	}
	return n
}
