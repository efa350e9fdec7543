package list_museums

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

type CatalogService interface {
	ListMuseums(ctx context.Context) ([]*domain.Museum, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
