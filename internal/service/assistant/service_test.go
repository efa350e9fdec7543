package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/internal/integrations/completionservice"
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

type stubClient struct {
	text string
	err  error

	lastReq *completionservice.CompletionRequest
}

func (s *stubClient) CompleteWithGracefulDegradation(ctx context.Context, req *completionservice.CompletionRequest) (string, error) {
	s.lastReq = req
	return s.text, s.err
}

func testCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	svc := catalog.NewService(&fakeMuseumRepo{museums: []*domain.Museum{testMuseum()}}, nil, nopLogger{})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestRespond_DisabledUsesRules(t *testing.T) {
	client := &stubClient{text: "live answer"}
	svc := NewService(client, testCatalog(t), false, nopLogger{})

	reply := svc.Respond(context.Background(), &Request{
		Message: "ticket price",
		Museum:  testMuseum(),
	})

	assert.Contains(t, reply, "₹200")
	assert.Nil(t, client.lastReq, "disabled assistant must not call the live backend")
}

func TestRespond_LiveBackend(t *testing.T) {
	client := &stubClient{text: "live answer"}
	svc := NewService(client, testCatalog(t), true, nopLogger{})

	reply := svc.Respond(context.Background(), &Request{Message: "anything"})

	assert.Equal(t, "live answer", reply)
	require.NotNil(t, client.lastReq)
	assert.Equal(t, "anything", client.lastReq.Prompt)
	assert.NotEmpty(t, client.lastReq.System)
}

func TestRespond_BackendFailureFallsBack(t *testing.T) {
	client := &stubClient{err: completionservice.ErrServiceDegraded}
	svc := NewService(client, testCatalog(t), true, nopLogger{})

	reply := svc.Respond(context.Background(), &Request{
		Message: "when are you open",
		Museum:  testMuseum(),
	})

	assert.Contains(t, reply, "10:00 AM")
	assert.Contains(t, reply, "6:00 PM")
}

func TestRespond_EmptyCompletionFallsBack(t *testing.T) {
	client := &stubClient{text: "   "}
	svc := NewService(client, testCatalog(t), true, nopLogger{})

	reply := svc.Respond(context.Background(), &Request{
		Message: "where are you",
		Museum:  testMuseum(),
	})

	assert.Contains(t, reply, "Kasturba Road")
}

func TestBuildCompletionRequest_SkipsLeadingAssistantTurns(t *testing.T) {
	client := &stubClient{text: "ok"}
	svc := NewService(client, testCatalog(t), true, nopLogger{})

	svc.Respond(context.Background(), &Request{
		Message: "next question",
		History: []domain.ConversationTurn{
			{Role: domain.RoleAssistant, Content: "Welcome!"},
			{Role: domain.RoleUser, Content: "hi"},
			{Role: domain.RoleAssistant, Content: "Hello!"},
		},
	})

	require.NotNil(t, client.lastReq)
	require.Len(t, client.lastReq.History, 2)
	assert.Equal(t, "user", client.lastReq.History[0].Role)
	assert.Equal(t, "hi", client.lastReq.History[0].Content)
	assert.Equal(t, "model", client.lastReq.History[1].Role)
}
