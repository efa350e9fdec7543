package chat_message

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	processMessage "github.com/m04kA/SMC-MuseumService/internal/usecase/process_message"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *processMessage.Response
	err  error

	lastReq *processMessage.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *processMessage.Request) (*processMessage.Response, error) {
	s.lastReq = req
	return s.resp, s.err
}

func postChat(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_PlainMessage(t *testing.T) {
	uc := &stubUseCase{
		resp: &processMessage.Response{
			Turn: domain.ConversationTurn{
				Role:    domain.RoleAssistant,
				Content: "We open at 10:00 AM.",
				Type:    domain.TurnPlain,
			},
		},
	}
	handler := NewHandler(uc, nopLogger{})

	rec := postChat(t, handler, `{"message":"when do you open?","museumId":"vitm","language":"en"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ChatMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "assistant", resp.Turn.Role)
	assert.Equal(t, "We open at 10:00 AM.", resp.Turn.Content)
	assert.False(t, resp.PendingForm)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "when do you open?", uc.lastReq.Message)
	require.NotNil(t, uc.lastReq.MuseumID)
	assert.Equal(t, "vitm", *uc.lastReq.MuseumID)
}

func TestHandle_FormSubmissionCarriesVisitor(t *testing.T) {
	uc := &stubUseCase{
		resp: &processMessage.Response{
			Turn: domain.ConversationTurn{
				Role:    domain.RoleAssistant,
				Content: "confirmed",
				Type:    domain.TurnBookingConfirmation,
				Draft: &domain.BookingDraft{
					MuseumID:     "vitm",
					TicketTypeID: "general",
					Quantity:     2,
					VisitDate:    "2026-09-15",
					Visitor:      domain.Visitor{Name: "Asha Rao", Email: "asha@example.com", Phone: "+91 9000000000"},
				},
			},
			Intent: &processMessage.IntentRef{
				PaymentID: "PAY-1A2B3C4D",
				Amount:    400,
				Currency:  "inr",
				Status:    "pending",
			},
		},
	}
	handler := NewHandler(uc, nopLogger{})

	body := `{
		"form": {
			"ticketTypeId": "general",
			"quantity": 2,
			"visitDate": "2026-09-15",
			"visitor": {"name": "Asha Rao", "email": "asha@example.com", "phone": "+91 9000000000"}
		},
		"museumId": "vitm",
		"pendingForm": true
	}`
	rec := postChat(t, handler, body)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.lastReq.Form)
	assert.Equal(t, "Asha Rao", uc.lastReq.Form.Visitor.Name)
	assert.True(t, uc.lastReq.PendingForm)

	var resp ChatMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking-confirmation", resp.Turn.Type)
	require.NotNil(t, resp.Intent)
	assert.Equal(t, "PAY-1A2B3C4D", resp.Intent.PaymentID)
	require.NotNil(t, resp.Turn.Draft)
	assert.Equal(t, "general", resp.Turn.Draft.TicketTypeID)
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	rec := postChat(t, handler, `{"message": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	rec := postChat(t, handler, `{"message":"hi","sessionId":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidInputFromUseCase(t *testing.T) {
	uc := &stubUseCase{err: processMessage.ErrInvalidInput}
	handler := NewHandler(uc, nopLogger{})

	rec := postChat(t, handler, `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
