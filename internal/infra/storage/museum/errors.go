package museum

import "errors"

var (
	// ErrMuseumNotFound возвращается, когда музей не найден
	ErrMuseumNotFound = errors.New("museum.repository: museum not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("museum.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("museum.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("museum.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации jsonb колонок
	ErrMarshal = errors.New("museum.repository: failed to marshal json column")

	// ErrUnmarshal возвращается при ошибке десериализации jsonb колонок
	ErrUnmarshal = errors.New("museum.repository: failed to unmarshal json column")
)
