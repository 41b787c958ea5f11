package domain

// Default configuration values
const (
	DefaultDurationMinutes = 60
	SlotStepMinutes        = 60 // bookable slots start on the hour
)

// Business validation constants
const (
	MinDurationMinutes = 30
	MaxDurationMinutes = 240

	MinCustomerNameLength = 2
	MaxCustomerNameLength = 100

	MinPhoneLength = 10
	MaxPhoneLength = 20

	MaxVehicleMakeLength  = 50
	MaxVehicleModelLength = 50
	MinVehicleYear        = 1900

	MaxNotesLength   = 1000
	MaxMessageLength = 2000
	MaxSubjectLength = 200

	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt input limit
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Pagination defaults for admin listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
