package create_payment_intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

// UseCase use case создания платежного намерения
// Первый шаг checkout-пайплайна: intent-created -> settled
type UseCase struct {
	intentRepo IntentRepository
	catalog    CatalogProvider
	currency   string
	delay      time.Duration // симуляция задержки платежного шлюза
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	intentRepo IntentRepository,
	catalog CatalogProvider,
	currency string,
	delay time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		intentRepo: intentRepo,
		catalog:    catalog,
		currency:   currency,
		delay:      delay,
		logger:     logger,
	}
}

// Execute выполняет создание платежного намерения
// Повторный вызов с тем же draft создает новое независимое намерение,
// дедупликация не требуется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentIntent: museum=%s, ticketType=%s, quantity=%d",
		req.MuseumID, req.TicketTypeID, req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePaymentIntent: validation failed: %v", err)
		return nil, err
	}

	// 2. Ищем музей и тип билета в текущем снапшоте каталога
	snapshot := uc.catalog.Snapshot()

	museum, ok := snapshot.MuseumByID(req.MuseumID)
	if !ok {
		uc.logger.Warn("CreatePaymentIntent: museum id=%s not found (snapshot v%d)", req.MuseumID, snapshot.Version())
		return nil, ErrMuseumNotFound
	}

	ticket, ok := museum.TicketByID(req.TicketTypeID)
	if !ok {
		uc.logger.Warn("CreatePaymentIntent: ticket type=%s not found in museum id=%s", req.TicketTypeID, req.MuseumID)
		return nil, ErrTicketTypeNotFound
	}

	// 3. Считаем сумму
	amount := ticket.Price * float64(req.Quantity)

	// 4. Симулируем задержку платежного шлюза
	if err := sleepCtx(ctx, uc.delay); err != nil {
		return nil, fmt.Errorf("%w: cancelled while contacting gateway: %v", ErrInternal, err)
	}

	// 5. Создаем намерение со статусом pending
	intent := &domain.PaymentIntent{
		PaymentID:    newPaymentID(),
		MuseumID:     req.MuseumID,
		TicketTypeID: req.TicketTypeID,
		Quantity:     req.Quantity,
		Amount:       amount,
		Currency:     uc.currency,
		Status:       domain.PaymentStatusPending,
	}

	created, err := uc.intentRepo.Create(ctx, intent)
	if err != nil {
		uc.logger.Error("CreatePaymentIntent: failed to store intent: %v", err)
		return nil, fmt.Errorf("%w: failed to store intent: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePaymentIntent: intent %s created, amount=%.2f %s",
		created.PaymentID, created.Amount, created.Currency)

	return &Response{
		PaymentID:  created.PaymentID,
		MuseumID:   created.MuseumID,
		TicketName: ticket.Name,
		Quantity:   created.Quantity,
		Amount:     created.Amount,
		Currency:   created.Currency,
		Status:     string(created.Status),
	}, nil
}

// newPaymentID генерирует идентификатор формата PAY-XXXXXXXX
func newPaymentID() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return domain.PaymentIDPrefix + id[:8]
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
