package get_ticket

import (
	"context"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

type TicketService interface {
	GetRecord(ctx context.Context, bookingID string) (*domain.TicketRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
