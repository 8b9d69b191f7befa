package domain

// Default configuration values
const (
	DefaultCurrency      = "RUB"
	DefaultPaymentStatus = "unpaid"
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours

	MinBufferMinutes = 0
	MaxBufferMinutes = 240

	MinAdvanceBookingHours    = 0
	MaxAdvanceBookingHoursCap = 24 * 365 // 1 year

	MaxServiceNameLength        = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxContactFieldLength       = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
