package reconcile_payment

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reconcile_payment: reservation not found")

	// ErrReservationInactive возвращается для отменённых и no-show бронирований
	ErrReservationInactive = errors.New("reconcile_payment: reservation is cancelled or no-show")

	// ErrNoCourtAssociated возвращается, когда у бронирования нет корта
	ErrNoCourtAssociated = errors.New("reconcile_payment: reservation has no associated court")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reconcile_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reconcile_payment: internal error")
)
