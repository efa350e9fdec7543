package tickets

import "errors"

var (
	// ErrRecordNotFound запись о билете не найдена
	ErrRecordNotFound = errors.New("ticket record not found")

	// ErrRenderPDF ошибка генерации PDF-квитанции
	ErrRenderPDF = errors.New("failed to render PDF receipt")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal tickets service error")
)
