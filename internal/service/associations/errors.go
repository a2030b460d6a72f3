package associations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrDisciplineNotFound возвращается, когда дисциплина не найдена
	ErrDisciplineNotFound = errors.New("discipline not found")

	// ErrAssociationNotFound возвращается, когда связка не найдена
	ErrAssociationNotFound = errors.New("association not found")

	// ErrAssociationExists возвращается при попытке создать дубликат связки
	ErrAssociationExists = errors.New("association already exists")

	// ErrNotModifiable возвращается, когда бронирование нельзя изменять
	ErrNotModifiable = errors.New("reservation cannot be modified in its current status")

	// ErrCourtInactive возвращается при попытке привязать неактивный корт
	ErrCourtInactive = errors.New("court is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
