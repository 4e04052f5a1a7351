package constants

// Database connection pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Validation bounds shared by users, calendars and events
const (
	NameMinLength        = 4
	NameMaxLength        = 30
	PasswordMinLength    = 8
	PasswordMaxLength    = 30
	DescriptionMaxLength = 200
)

// Timezone offsets are fixed signed whole hours, UTC-11 to UTC+14
const (
	TimezoneMin = -11
	TimezoneMax = 14
)

// Auth settings
const (
	TokenExpiryHours = 24
	RequestIDLength  = 7
)
