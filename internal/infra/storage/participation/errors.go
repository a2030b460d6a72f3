package participation

import "errors"

var (
	// ErrParticipationNotFound возвращается, когда приглашение не найдено
	ErrParticipationNotFound = errors.New("participation.repository: participation not found")

	// ErrParticipationExists возвращается при попытке пригласить гостя повторно
	ErrParticipationExists = errors.New("participation.repository: participation already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("participation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("participation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("participation.repository: failed to scan row")
)
