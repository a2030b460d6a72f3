package qrencoder

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("qrencoder client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("qrencoder client: invalid response")

	// ErrEncodingFailed возвращается, когда сервис не смог отрендерить изображение
	ErrEncodingFailed = errors.New("qrencoder client: encoding failed")
)
