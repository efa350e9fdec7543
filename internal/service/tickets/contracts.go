package tickets

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

// RecordRepository интерфейс репозитория записей о билетах
type RecordRepository interface {
	GetByBookingID(ctx context.Context, bookingID string) (*domain.TicketRecord, error)
}

// CatalogProvider источник снапшота каталога
// Нужен для имени и адреса музея на квитанции
type CatalogProvider interface {
	Snapshot() *catalog.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
