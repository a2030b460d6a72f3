package guests

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrGuestNotFound возвращается, когда гость не найден в PersonService
	ErrGuestNotFound = errors.New("guest not found")

	// ErrParticipationNotFound возвращается, когда приглашение не найдено
	ErrParticipationNotFound = errors.New("participation not found")

	// ErrAlreadyInvited возвращается при повторном приглашении гостя
	ErrAlreadyInvited = errors.New("guest is already invited")

	// ErrAlreadyConfirmed возвращается при повторном подтверждении гостя
	ErrAlreadyConfirmed = errors.New("guest participation is already confirmed")

	// ErrNotConfirmed возвращается при отметке посещения без подтверждения
	ErrNotConfirmed = errors.New("guest participation is not confirmed")

	// ErrCapacityExceeded возвращается при превышении вместимости корта
	ErrCapacityExceeded = errors.New("court guest capacity exceeded")

	// ErrNotModifiable возвращается, когда список гостей нельзя изменять
	ErrNotModifiable = errors.New("reservation cannot be modified in its current status")

	// ErrReservationNotActive возвращается, когда подтверждение недоступно
	ErrReservationNotActive = errors.New("reservation is not active")

	// ErrNoCourtAssociated возвращается, когда у бронирования нет корта
	ErrNoCourtAssociated = errors.New("reservation has no associated court")

	// ErrNotAGuest возвращается, когда приглашаемая персона не является гостем
	ErrNotAGuest = errors.New("person is not a guest")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
