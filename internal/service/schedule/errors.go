package schedule

import "errors"

var (
	// ErrHoursNotFound возвращается, когда строка расписания не найдена
	ErrHoursNotFound = errors.New("business hours not found")

	// ErrBlockedDateNotFound возвращается, когда блокировка даты не найдена
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrDateAlreadyBlocked возвращается при повторной блокировке даты
	ErrDateAlreadyBlocked = errors.New("date is already blocked")

	// ErrUserNotFound возвращается, когда профиль вызывающего не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied возвращается, когда вызывающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
