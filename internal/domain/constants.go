package domain

// Slot capacity model
const (
	MaxCapacityPerSlot     = 3
	SlotDurationMinutes    = 30
	MaxSingleSlotPartySize = 3
	MaxPartySize           = 6
	DefaultPartySize       = 1 // подставляется на входе, если размер группы не распознан
)

// Operating day, minutes from midnight
const (
	OpeningMinutes   = 600  // 10:00
	ClosingMinutes   = 1320 // 22:00
	LastStartMinutes = ClosingMinutes - SlotDurationMinutes // 21:30
)

// MaxSuggestions сколько альтернативных времен предлагать гостю
const MaxSuggestions = 3

// Business validation constants
const (
	MaxGuestNameLength = 100
	MaxNotesLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
