package completionservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("completionservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("completionservice client: invalid response")

	// ErrEmptyCompletion возвращается, когда сервис вернул пустой текст
	// Пустой ответ непригоден для показа пользователю и должен
	// переключать вызывающий код на rule-based fallback
	ErrEmptyCompletion = errors.New("completionservice client: empty completion")

	// ErrServiceDegraded возвращается при недоступности сервиса
	// Сигнал вызывающему коду использовать детерминированный fallback
	ErrServiceDegraded = errors.New("completionservice unavailable: graceful degradation applied")
)
