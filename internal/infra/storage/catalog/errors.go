package catalog

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")

	// ErrInvalidRow возвращается, когда строка каталога содержит
	// недопустимые значения (неизвестный сезон или продолжительность)
	ErrInvalidRow = errors.New("catalog.repository: invalid catalog row")
)
