package association

import "errors"

var (
	// ErrAssociationNotFound возвращается, когда связка не найдена
	ErrAssociationNotFound = errors.New("association.repository: association not found")

	// ErrAssociationExists возвращается при попытке создать дубликат связки
	ErrAssociationExists = errors.New("association.repository: association already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("association.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("association.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("association.repository: failed to scan row")
)
