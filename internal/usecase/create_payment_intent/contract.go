package create_payment_intent

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

// IntentRepository интерфейс репозитория платежных намерений
type IntentRepository interface {
	Create(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error)
}

// CatalogProvider источник снапшота каталога
// Операция работает с одним снапшотом от начала до конца
type CatalogProvider interface {
	Snapshot() *catalog.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
