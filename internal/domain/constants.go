package domain

// Slot generation constants
const (
	// SlotStepMinutes шаг перебора кандидатов начала слота
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNotesLength            = 500
	MaxCustomerFieldLength    = 255
)

// Time format constants
const (
	TimeFormat = "15:04:05"   // HH:MM:SS
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Privilege levels of the identity collaborator
const (
	// PrivilegeAdmin уровень администратора
	PrivilegeAdmin = 1
	// PrivilegeUser обычный пользователь
	PrivilegeUser = 2
)
