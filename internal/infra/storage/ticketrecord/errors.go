package ticketrecord

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись о билете не найдена
	ErrRecordNotFound = errors.New("ticketrecord.repository: ticket record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ticketrecord.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("ticketrecord.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ticketrecord.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации jsonb колонок
	ErrMarshal = errors.New("ticketrecord.repository: failed to marshal json column")

	// ErrUnmarshal возвращается при ошибке десериализации jsonb колонок
	ErrUnmarshal = errors.New("ticketrecord.repository: failed to unmarshal json column")
)
