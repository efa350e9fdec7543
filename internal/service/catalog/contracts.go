package catalog

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

// MuseumRepository интерфейс репозитория музеев
type MuseumRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Museum, error)
	List(ctx context.Context) ([]*domain.Museum, error)
	Upsert(ctx context.Context, museum *domain.Museum) (*domain.Museum, error)
}

// SeedSource источник seed-данных для bulk-импорта
type SeedSource func() ([]*domain.Museum, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
