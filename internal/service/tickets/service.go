package tickets

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/internal/infra/storage/ticketrecord"
)

// Service сервис выдачи билетов и квитанций
type Service struct {
	records RecordRepository
	catalog CatalogProvider
	logger  Logger
}

func NewService(records RecordRepository, catalogProvider CatalogProvider, logger Logger) *Service {
	return &Service{
		records: records,
		catalog: catalogProvider,
		logger:  logger,
	}
}

// GetRecord возвращает запись о билете по идентификатору бронирования
func (s *Service) GetRecord(ctx context.Context, bookingID string) (*domain.TicketRecord, error) {
	record, err := s.records.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ticketrecord.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: bookingID=%s", ErrRecordNotFound, bookingID)
		}
		s.logger.Error("[tickets.GetRecord] Failed to fetch record: bookingID=%s, error=%v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return record, nil
}

// RenderReceipt возвращает PDF-квитанцию по записи о билете
func (s *Service) RenderReceipt(ctx context.Context, bookingID string) ([]byte, error) {
	record, err := s.GetRecord(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	museum, _ := s.catalog.Snapshot().MuseumByID(record.MuseumID)

	data, err := renderReceiptPDF(record, museum)
	if err != nil {
		s.logger.Error("[tickets.RenderReceipt] Failed to render PDF: bookingID=%s, error=%v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrRenderPDF, err)
	}

	s.logger.Info("[tickets.RenderReceipt] Receipt rendered: bookingID=%s, size=%d bytes", bookingID, len(data))
	return data, nil
}
