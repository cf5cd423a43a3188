package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrUserNotFound возвращается, когда профиль вызывающего не найден
	ErrUserNotFound = errors.New("create_appointment: user not found")

	// ErrSlotConflict возвращается, когда интервал пересекается с активной
	// записью на момент коммита. Ожидаемая ошибка при конкуренции за слот:
	// клиент перезапрашивает доступность и пробует снова.
	ErrSlotConflict = errors.New("create_appointment: time slot conflicts with an existing appointment")

	// ErrPastMidnight возвращается, когда вычисленное время окончания
	// выходит за пределы суток. Перенос на следующий день не поддерживается.
	ErrPastMidnight = errors.New("create_appointment: appointment would cross midnight")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
