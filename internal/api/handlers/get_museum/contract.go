package get_museum

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

type CatalogService interface {
	GetMuseum(ctx context.Context, id string) (*domain.Museum, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
