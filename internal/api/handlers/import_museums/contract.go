package import_museums

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

type CatalogService interface {
	ImportSeed(ctx context.Context) (*catalog.ImportResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
