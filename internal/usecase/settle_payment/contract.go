package settle_payment

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

// IntentRepository интерфейс репозитория платежных намерений
type IntentRepository interface {
	GetByID(ctx context.Context, paymentID string) (*domain.PaymentIntent, error)
	UpdateStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) error
}

// RecordRepository интерфейс репозитория записей о билетах
type RecordRepository interface {
	Create(ctx context.Context, record *domain.TicketRecord) (*domain.TicketRecord, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.TicketRecord, error)
}

// CatalogProvider источник снапшота каталога
type CatalogProvider interface {
	Snapshot() *catalog.Snapshot
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
