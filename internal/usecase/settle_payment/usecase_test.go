package settle_payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	intentRepoPkg "github.com/m04kA/SMC-MuseumService/internal/infra/storage/payment"
	recordRepoPkg "github.com/m04kA/SMC-MuseumService/internal/infra/storage/ticketrecord"
	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeMuseumRepo struct {
	museums []*domain.Museum
}

func (f *fakeMuseumRepo) GetByID(ctx context.Context, id string) (*domain.Museum, error) {
	return nil, errors.New("not found")
}

func (f *fakeMuseumRepo) List(ctx context.Context) ([]*domain.Museum, error) {
	return f.museums, nil
}

func (f *fakeMuseumRepo) Upsert(ctx context.Context, museum *domain.Museum) (*domain.Museum, error) {
	return museum, nil
}

type fakeIntentRepo struct {
	intents map[string]*domain.PaymentIntent

	statusUpdates int
}

func (f *fakeIntentRepo) GetByID(ctx context.Context, paymentID string) (*domain.PaymentIntent, error) {
	intent, ok := f.intents[paymentID]
	if !ok {
		return nil, intentRepoPkg.ErrIntentNotFound
	}
	return intent, nil
}

func (f *fakeIntentRepo) UpdateStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) error {
	intent, ok := f.intents[paymentID]
	if !ok {
		return intentRepoPkg.ErrIntentNotFound
	}
	intent.Status = status
	f.statusUpdates++
	return nil
}

type fakeRecordRepo struct {
	records map[string]*domain.TicketRecord // по payment_id
}

func (f *fakeRecordRepo) Create(ctx context.Context, record *domain.TicketRecord) (*domain.TicketRecord, error) {
	stored := *record
	stored.CreatedAt = time.Now()
	f.records[record.PaymentID] = &stored
	return &stored, nil
}

func (f *fakeRecordRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.TicketRecord, error) {
	record, ok := f.records[paymentID]
	if !ok {
		return nil, recordRepoPkg.ErrRecordNotFound
	}
	return record, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

func testCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	museum := &domain.Museum{
		ID:   "vitm",
		Name: "Visvesvaraya Industrial and Technological Museum",
		Tickets: map[string]domain.Ticket{
			"general": {Name: "General", Price: 200},
		},
	}
	svc := catalog.NewService(&fakeMuseumRepo{museums: []*domain.Museum{museum}}, nil, nopLogger{})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func pendingIntent() *domain.PaymentIntent {
	return &domain.PaymentIntent{
		PaymentID:    "PAY-1A2B3C4D",
		MuseumID:     "vitm",
		TicketTypeID: "general",
		Quantity:     2,
		Amount:       400,
		Currency:     "inr",
		Status:       domain.PaymentStatusPending,
	}
}

func testRequest() *Request {
	return &Request{
		PaymentID: "PAY-1A2B3C4D",
		VisitDate: "2026-09-15",
		Visitor: domain.Visitor{
			Name:  "Asha Rao",
			Email: "asha@example.com",
			Phone: "+91 9000000000",
		},
	}
}

func newTestUseCase(t *testing.T, intents *fakeIntentRepo, records *fakeRecordRepo) *UseCase {
	t.Helper()
	uc := NewUseCase(intents, records, testCatalog(t), fakeTxManager{}, 0, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.UnixMilli(1767225600000)}
	return uc
}

func TestExecute_SettlesPendingIntent(t *testing.T) {
	intents := &fakeIntentRepo{intents: map[string]*domain.PaymentIntent{"PAY-1A2B3C4D": pendingIntent()}}
	records := &fakeRecordRepo{records: map[string]*domain.TicketRecord{}}
	uc := newTestUseCase(t, intents, records)

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentStatusCompleted), resp.Status)
	require.NotNil(t, resp.Record)

	assert.Equal(t, "BK1767225600000", resp.Record.BookingID)
	assert.True(t, strings.HasPrefix(resp.Record.BookingID, domain.BookingIDPrefix))
	assert.Equal(t, "General", resp.Record.TicketName, "ticket name resolved from catalog")
	assert.Equal(t, float64(400), resp.Record.TotalAmount, "total equals the intent amount")
	assert.Equal(t, "2026-09-15", resp.Record.VisitDate)
	assert.Equal(t, "Asha Rao", resp.Record.Visitor.Name)

	assert.Equal(t, domain.PaymentStatusCompleted, intents.intents["PAY-1A2B3C4D"].Status)
}

func TestExecute_ResettleIsIdempotent(t *testing.T) {
	intents := &fakeIntentRepo{intents: map[string]*domain.PaymentIntent{"PAY-1A2B3C4D": pendingIntent()}}
	records := &fakeRecordRepo{records: map[string]*domain.TicketRecord{}}
	uc := newTestUseCase(t, intents, records)

	first, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Record.BookingID, second.Record.BookingID)
	assert.Equal(t, first.Record.TotalAmount, second.Record.TotalAmount)
	assert.Equal(t, 1, intents.statusUpdates, "re-settle must not touch the intent again")
	assert.Len(t, records.records, 1)
}

func TestExecute_IntentNotFound(t *testing.T) {
	intents := &fakeIntentRepo{intents: map[string]*domain.PaymentIntent{}}
	records := &fakeRecordRepo{records: map[string]*domain.TicketRecord{}}
	uc := newTestUseCase(t, intents, records)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrIntentNotFound)
}

func TestExecute_FailedIntentCanBeRetried(t *testing.T) {
	failed := pendingIntent()
	failed.Status = domain.PaymentStatusFailed

	intents := &fakeIntentRepo{intents: map[string]*domain.PaymentIntent{"PAY-1A2B3C4D": failed}}
	records := &fakeRecordRepo{records: map[string]*domain.TicketRecord{}}
	uc := newTestUseCase(t, intents, records)

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentStatusCompleted), resp.Status)
	assert.Equal(t, domain.PaymentStatusCompleted, intents.intents["PAY-1A2B3C4D"].Status)
}

func TestExecute_MissingPaymentID(t *testing.T) {
	intents := &fakeIntentRepo{intents: map[string]*domain.PaymentIntent{}}
	records := &fakeRecordRepo{records: map[string]*domain.TicketRecord{}}
	uc := newTestUseCase(t, intents, records)

	_, err := uc.Execute(context.Background(), &Request{PaymentID: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
