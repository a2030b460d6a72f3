package record_payment

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("record_payment: reservation not found")

	// ErrReservationInactive возвращается для отменённых и no-show бронирований
	ErrReservationInactive = errors.New("record_payment: reservation is cancelled or no-show")

	// ErrInvalidStatus возвращается при некорректном статусе платежа
	ErrInvalidStatus = errors.New("record_payment: invalid payment status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("record_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("record_payment: internal error")
)
