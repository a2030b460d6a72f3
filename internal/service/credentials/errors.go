package credentials

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCredentialNotFound возвращается, когда пропуск не найден
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrPersonNotFound возвращается, когда персона не найдена
	ErrPersonNotFound = errors.New("person not found")

	// ErrNotParticipant возвращается, когда персона не участвует в бронировании
	ErrNotParticipant = errors.New("person is not a participant of the reservation")

	// ErrReservationNotActive возвращается, когда выдача пропуска недоступна
	ErrReservationNotActive = errors.New("reservation is not active")

	// ErrNoCourtAssociated возвращается, когда у бронирования нет корта
	ErrNoCourtAssociated = errors.New("reservation has no associated court")

	// ErrCredentialExpired возвращается при проверке просроченного пропуска
	ErrCredentialExpired = errors.New("credential is expired")

	// ErrCredentialInactive возвращается при проверке отозванного пропуска
	ErrCredentialInactive = errors.New("credential is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
