package put_museum

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

type CatalogService interface {
	UpsertMuseum(ctx context.Context, museum *domain.Museum) (*domain.Museum, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
