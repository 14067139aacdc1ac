package domain

// Business validation constants
const (
	MinSurface         = 10.0
	MaxSurface         = 5000.0
	MinNameLength      = 2
	MinPhoneLength     = 10
	BookingIDPrefix    = "BK-"
	QuoteIDPrefix      = "QUOTE-"
	QuoteValidityDays  = 30
	DefaultCapacity    = 1
	DefaultHorizonDays = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
