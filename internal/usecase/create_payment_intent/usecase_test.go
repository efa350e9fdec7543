package create_payment_intent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
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
	created *domain.PaymentIntent
	err     error
}

func (f *fakeIntentRepo) Create(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = intent
	return intent, nil
}

func testMuseum() *domain.Museum {
	return &domain.Museum{
		ID:   "vitm",
		Name: "Visvesvaraya Industrial and Technological Museum",
		Tickets: map[string]domain.Ticket{
			"general": {Name: "General", Price: 200},
			"student": {Name: "Student", Price: 100},
		},
	}
}

func testCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	svc := catalog.NewService(&fakeMuseumRepo{museums: []*domain.Museum{testMuseum()}}, nil, nopLogger{})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func newTestUseCase(t *testing.T, repo *fakeIntentRepo) *UseCase {
	t.Helper()
	return NewUseCase(repo, testCatalog(t), "inr", 0, nopLogger{})
}

func TestExecute_CreatesPendingIntent(t *testing.T) {
	repo := &fakeIntentRepo{}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		MuseumID:     "vitm",
		TicketTypeID: "general",
		Quantity:     2,
	})

	require.NoError(t, err)
	assert.Equal(t, float64(400), resp.Amount, "amount = price x quantity")
	assert.Equal(t, "inr", resp.Currency)
	assert.Equal(t, "General", resp.TicketName)
	assert.Equal(t, string(domain.PaymentStatusPending), resp.Status)

	assert.True(t, strings.HasPrefix(resp.PaymentID, domain.PaymentIDPrefix))
	assert.Len(t, resp.PaymentID, len(domain.PaymentIDPrefix)+8)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.PaymentStatusPending, repo.created.Status)
	assert.Equal(t, float64(400), repo.created.Amount)
}

func TestExecute_PaymentIDsAreUnique(t *testing.T) {
	repo := &fakeIntentRepo{}
	uc := newTestUseCase(t, repo)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		resp, err := uc.Execute(context.Background(), &Request{
			MuseumID:     "vitm",
			TicketTypeID: "student",
			Quantity:     1,
		})
		require.NoError(t, err)
		assert.False(t, seen[resp.PaymentID], "duplicate payment id %s", resp.PaymentID)
		seen[resp.PaymentID] = true
	}
}

func TestExecute_QuantityBounds(t *testing.T) {
	repo := &fakeIntentRepo{}
	uc := newTestUseCase(t, repo)

	for _, quantity := range []int{0, -1, 11} {
		_, err := uc.Execute(context.Background(), &Request{
			MuseumID:     "vitm",
			TicketTypeID: "general",
			Quantity:     quantity,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "quantity=%d", quantity)
	}

	for _, quantity := range []int{1, 10} {
		resp, err := uc.Execute(context.Background(), &Request{
			MuseumID:     "vitm",
			TicketTypeID: "general",
			Quantity:     quantity,
		})
		require.NoError(t, err, "quantity=%d", quantity)
		assert.Equal(t, float64(200*quantity), resp.Amount)
	}
}

func TestExecute_MuseumNotFound(t *testing.T) {
	repo := &fakeIntentRepo{}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), &Request{
		MuseumID:     "ghost",
		TicketTypeID: "general",
		Quantity:     1,
	})

	assert.ErrorIs(t, err, ErrMuseumNotFound)
	assert.Nil(t, repo.created, "no intent row on lookup failure")
}

func TestExecute_TicketTypeNotFound(t *testing.T) {
	repo := &fakeIntentRepo{}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), &Request{
		MuseumID:     "vitm",
		TicketTypeID: "vip",
		Quantity:     1,
	})

	assert.ErrorIs(t, err, ErrTicketTypeNotFound)
	assert.Nil(t, repo.created)
}
