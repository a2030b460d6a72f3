package create_reservation

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_reservation: court not found")

	// ErrCourtInactive возвращается, когда корт неактивен
	ErrCourtInactive = errors.New("create_reservation: court is not active")

	// ErrDisciplineNotFound возвращается, когда дисциплина не найдена
	ErrDisciplineNotFound = errors.New("create_reservation: discipline not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_reservation: client not found")

	// ErrNotAClient возвращается, когда персона не может владеть бронированием
	ErrNotAClient = errors.New("create_reservation: person is not a client")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает окно бронирования
	ErrDateTooFarInFuture = errors.New("create_reservation: date is too far in the future")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("create_reservation: invalid time range")

	// ErrHoursNotConfigured возвращается, когда у зоны корта нет расписания
	ErrHoursNotConfigured = errors.New("create_reservation: operating hours are not configured")

	// ErrOutsideOperatingHours возвращается, когда интервал вне часов работы зоны
	ErrOutsideOperatingHours = errors.New("create_reservation: time range is outside operating hours")

	// ErrTimeConflict возвращается при пересечении с другим бронированием
	ErrTimeConflict = errors.New("create_reservation: time range conflicts with another reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
