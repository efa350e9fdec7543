package process_message

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/service/assistant"
	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
	createIntent "github.com/m04kA/SMC-MuseumService/internal/usecase/create_payment_intent"
)

// AssistantService интерфейс сервиса генерации ответов
type AssistantService interface {
	Respond(ctx context.Context, req *assistant.Request) string
}

// CatalogProvider источник снапшота каталога
// Один ход диалога работает с одним снапшотом
type CatalogProvider interface {
	Snapshot() *catalog.Snapshot
}

// IntentCreator интерфейс создания платежного намерения
// Успешный сабмит формы сразу переходит к первому шагу checkout
type IntentCreator interface {
	Execute(ctx context.Context, req *createIntent.Request) (*createIntent.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
