package settle_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	intentRepo "github.com/m04kA/SMC-MuseumService/internal/infra/storage/payment"
	recordRepo "github.com/m04kA/SMC-MuseumService/internal/infra/storage/ticketrecord"
)

// UseCase use case проведения платежа
// Второй шаг checkout-пайплайна: переводит намерение pending -> completed
// и собирает финальную запись о билете
type UseCase struct {
	intentRepo   IntentRepository
	recordRepo   RecordRepository
	catalog      CatalogProvider
	txManager    TransactionManager
	delay        time.Duration // симуляция обработки платежа шлюзом
	timeProvider TimeProvider
	logger       Logger
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	intents IntentRepository,
	records RecordRepository,
	catalog CatalogProvider,
	txManager TransactionManager,
	delay time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		intentRepo:   intents,
		recordRepo:   records,
		catalog:      catalog,
		txManager:    txManager,
		delay:        delay,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проводит платеж и собирает запись о билете
// Повторный settlement уже завершенного платежа идемпотентен:
// возвращается существующая запись без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SettlePayment: payment=%s", req.PaymentID)

	if strings.TrimSpace(req.PaymentID) == "" {
		return nil, fmt.Errorf("%w: paymentID is required", ErrInvalidInput)
	}

	// Симулируем обработку платежа шлюзом
	if err := sleepCtx(ctx, uc.delay); err != nil {
		return nil, fmt.Errorf("%w: cancelled while processing payment: %v", ErrInternal, err)
	}

	var result *domain.TicketRecord

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		intent, err := uc.intentRepo.GetByID(txCtx, req.PaymentID)
		if err != nil {
			if errors.Is(err, intentRepo.ErrIntentNotFound) {
				uc.logger.Warn("SettlePayment: intent %s not found", req.PaymentID)
				return ErrIntentNotFound
			}
			uc.logger.Error("SettlePayment: failed to get intent %s: %v", req.PaymentID, err)
			return fmt.Errorf("%w: failed to get intent: %v", ErrInternal, err)
		}

		// Уже завершенный платеж: возвращаем существующую запись как есть
		if intent.Status == domain.PaymentStatusCompleted {
			record, err := uc.recordRepo.GetByPaymentID(txCtx, req.PaymentID)
			if err != nil && !errors.Is(err, recordRepo.ErrRecordNotFound) {
				uc.logger.Error("SettlePayment: failed to get existing record for %s: %v", req.PaymentID, err)
				return fmt.Errorf("%w: failed to get existing record: %v", ErrInternal, err)
			}
			if record != nil {
				uc.logger.Info("SettlePayment: intent %s already settled, returning record %s", req.PaymentID, record.BookingID)
				result = record
				return nil
			}
			// Завершенный платеж без записи - досоздаем её ниже
		}

		// Симуляция шлюза сама по себе не фэйлит платежи, но контракт
		// допускает failed: такое намерение можно проводить повторно
		if err := uc.intentRepo.UpdateStatus(txCtx, req.PaymentID, domain.PaymentStatusCompleted); err != nil {
			uc.logger.Error("SettlePayment: failed to update status for %s: %v", req.PaymentID, err)
			return fmt.Errorf("%w: failed to update intent status: %v", ErrInternal, err)
		}

		record := uc.assembleRecord(intent, req)

		created, err := uc.recordRepo.Create(txCtx, record)
		if err != nil {
			uc.logger.Error("SettlePayment: failed to store ticket record for %s: %v", req.PaymentID, err)
			return fmt.Errorf("%w: failed to store ticket record: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SettlePayment: payment %s settled, booking=%s, total=%.2f",
		req.PaymentID, result.BookingID, result.TotalAmount)

	return &Response{
		PaymentID: req.PaymentID,
		Status:    string(result.PaymentStatus),
		Record:    fromDomainRecord(result),
	}, nil
}

// assembleRecord собирает запись о билете из намерения и draft-полей запроса
func (uc *UseCase) assembleRecord(intent *domain.PaymentIntent, req *Request) *domain.TicketRecord {
	ticketName := intent.TicketTypeID
	if museum, ok := uc.catalog.Snapshot().MuseumByID(intent.MuseumID); ok {
		if ticket, ok := museum.TicketByID(intent.TicketTypeID); ok {
			ticketName = ticket.Name
		}
	}

	return &domain.TicketRecord{
		BookingID:     newBookingID(uc.timeProvider.Now()),
		MuseumID:      intent.MuseumID,
		TicketTypeID:  intent.TicketTypeID,
		TicketName:    ticketName,
		Quantity:      intent.Quantity,
		VisitDate:     req.VisitDate,
		Visitor:       req.Visitor,
		PaymentID:     intent.PaymentID,
		PaymentStatus: domain.PaymentStatusCompleted,
		TotalAmount:   intent.Amount,
	}
}

// newBookingID генерирует идентификатор формата BK<unix-millis>
func newBookingID(now time.Time) string {
	return fmt.Sprintf("%s%d", domain.BookingIDPrefix, now.UnixMilli())
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
