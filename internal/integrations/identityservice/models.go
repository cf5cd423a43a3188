package identityservice

// Уровни привилегий в IdentityService
const (
	LevelAdmin = 1
	LevelUser  = 2
)

// User модель пользователя из IdentityService
type User struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Level    int     `json:"level"` // 1 = admin, 2 = regular user
}

// IsAdmin возвращает true для пользователя с административными правами
func (u *User) IsAdmin() bool {
	return u.Level == LevelAdmin
}

// DisplayName возвращает имя для подстановки в контактные поля записи
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Username
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
