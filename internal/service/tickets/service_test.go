package tickets

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/internal/infra/storage/ticketrecord"
	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRecordRepo struct {
	records map[string]*domain.TicketRecord
	err     error
}

func (f *fakeRecordRepo) GetByBookingID(ctx context.Context, bookingID string) (*domain.TicketRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	record, ok := f.records[bookingID]
	if !ok {
		return nil, ticketrecord.ErrRecordNotFound
	}
	return record, nil
}

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

func testRecord() *domain.TicketRecord {
	return &domain.TicketRecord{
		BookingID:     "BK1767225600000",
		MuseumID:      "vitm",
		TicketTypeID:  "general",
		TicketName:    "General",
		Quantity:      2,
		VisitDate:     "2026-09-15",
		Visitor:       domain.Visitor{Name: "Asha Rao", Email: "asha@example.com", Phone: "+91 9000000000"},
		PaymentID:     "PAY-1A2B3C4D",
		PaymentStatus: domain.PaymentStatusCompleted,
		TotalAmount:   400,
		CreatedAt:     time.Now(),
	}
}

func newTestService(t *testing.T, records *fakeRecordRepo) *Service {
	t.Helper()
	museum := &domain.Museum{
		ID:   "vitm",
		Name: "Visvesvaraya Industrial and Technological Museum",
		Location: domain.Location{
			Address: "Kasturba Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
	}
	cat := catalog.NewService(&fakeMuseumRepo{museums: []*domain.Museum{museum}}, nil, nopLogger{})
	require.NoError(t, cat.Load(context.Background()))
	return NewService(records, cat, nopLogger{})
}

func TestGetRecord(t *testing.T) {
	record := testRecord()
	svc := newTestService(t, &fakeRecordRepo{records: map[string]*domain.TicketRecord{record.BookingID: record}})

	got, err := svc.GetRecord(context.Background(), record.BookingID)
	require.NoError(t, err)
	assert.Equal(t, record.BookingID, got.BookingID)
	assert.Equal(t, float64(400), got.TotalAmount)
}

func TestGetRecord_NotFound(t *testing.T) {
	svc := newTestService(t, &fakeRecordRepo{records: map[string]*domain.TicketRecord{}})

	_, err := svc.GetRecord(context.Background(), "BK0")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRenderReceipt_ProducesPDF(t *testing.T) {
	record := testRecord()
	svc := newTestService(t, &fakeRecordRepo{records: map[string]*domain.TicketRecord{record.BookingID: record}})

	data, err := svc.RenderReceipt(context.Background(), record.BookingID)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "receipt must be a PDF document")
	assert.Greater(t, len(data), 500)
}

func TestRenderReceipt_UnknownMuseumStillRenders(t *testing.T) {
	record := testRecord()
	record.MuseumID = "gone"
	svc := newTestService(t, &fakeRecordRepo{records: map[string]*domain.TicketRecord{record.BookingID: record}})

	data, err := svc.RenderReceipt(context.Background(), record.BookingID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderReceipt_NotFound(t *testing.T) {
	svc := newTestService(t, &fakeRecordRepo{records: map[string]*domain.TicketRecord{}})

	_, err := svc.RenderReceipt(context.Background(), "BK0")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
