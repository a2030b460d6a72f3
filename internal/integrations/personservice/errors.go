package personservice

import "errors"

var (
	// ErrPersonNotFound возвращается, когда персона не найдена
	ErrPersonNotFound = errors.New("person not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("personservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("personservice client: invalid response")
)
