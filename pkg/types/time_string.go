package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	timeLayout      = "15:04"
	minutesPerHour  = 60
	minutesPerDay   = 24 * minutesPerHour
	partsHourMinute = 2
	partsWithSecond = 3
)

var (
	// ErrInvalidTimeString возвращается, когда строка не похожа на HH:MM или HH:MM:SS
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time out of day range")
)

// TimeString время дня в формате "HH:MM"
// Хранится строкой, чтобы некорректные значения из хранилища доживали до
// подсчета и отбрасывались там, а не ломали чтение
type TimeString string

// NewTimeString создает TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит "HH:MM" или "HH:MM:SS" и нормализует к "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes)
}

// FromMinutes создает TimeString из количества минут от полуночи
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)), nil
}

// MustFromMinutes как FromMinutes, но паникует на значениях вне суток
func MustFromMinutes(minutes int) TimeString {
	ts, err := FromMinutes(minutes)
	if err != nil {
		panic(err)
	}
	return ts
}

func (t TimeString) String() string {
	return string(t)
}

// IsZero true, если время не задано
func (t TimeString) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	return parseMinutes(string(t))
}

// AddMinutes сдвигает время на n минут, не выходя за пределы суток
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes + n)
}

// IsBefore сравнивает по минутам; некорректные значения никогда не раньше
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter сравнивает по минутам; некорректные значения никогда не позже
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Scan реализует sql.Scanner
// Валидные значения нормализуются к HH:MM, остальные сохраняются как есть
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}

	if normalized, err := NewTimeStringFromString(raw); err == nil {
		*t = normalized
		return nil
	}
	*t = TimeString(raw)
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func parseMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != partsHourMinute && len(parts) != partsWithSecond {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if len(parts) == partsWithSecond {
		seconds, err := strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return hours*minutesPerHour + minutes, nil
}
