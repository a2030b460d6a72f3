package get_free_slots

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("get_free_slots: court not found")

	// ErrCourtInactive возвращается, когда корт неактивен
	ErrCourtInactive = errors.New("get_free_slots: court is not active")

	// ErrHoursNotConfigured возвращается, когда у зоны корта нет расписания
	ErrHoursNotConfigured = errors.New("get_free_slots: operating hours are not configured")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_free_slots: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_slots: internal error")
)
