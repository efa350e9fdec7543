package assistant

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/integrations/completionservice"
	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

// CompletionClient интерфейс клиента внешнего completion-сервиса
type CompletionClient interface {
	CompleteWithGracefulDegradation(ctx context.Context, req *completionservice.CompletionRequest) (string, error)
}

// CatalogProvider источник снапшота каталога для системного контекста
type CatalogProvider interface {
	Snapshot() *catalog.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
