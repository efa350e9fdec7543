package process_message

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/internal/service/assistant"
	createIntent "github.com/m04kA/SMC-MuseumService/internal/usecase/create_payment_intent"
)

// UseCase use case обработки одного хода диалога
// Решает, является ли ход информационным вопросом, запросом на
// бронирование или сабмитом формы, и порождает ровно одну реплику
// ассистента
type UseCase struct {
	assistant     AssistantService
	catalog       CatalogProvider
	intentCreator IntentCreator
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assistantSvc AssistantService,
	catalog CatalogProvider,
	intentCreator IntentCreator,
	logger Logger,
) *UseCase {
	return &UseCase{
		assistant:     assistantSvc,
		catalog:       catalog,
		intentCreator: intentCreator,
		logger:        logger,
	}
}

// Execute обрабатывает один ход диалога
// Правила применяются в фиксированном порядке приоритета:
// сабмит формы, запрос на бронирование, информационная реплика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Message) == "" && req.Form == nil {
		return nil, fmt.Errorf("%w: message or form is required", ErrInvalidInput)
	}

	// Музей резолвится один раз из текущего снапшота
	var museum *domain.Museum
	if req.MuseumID != nil {
		snapshot := uc.catalog.Snapshot()
		m, ok := snapshot.MuseumByID(*req.MuseumID)
		if !ok {
			// Неизвестный музей трактуем как отсутствие контекста
			uc.logger.Warn("ProcessMessage: museum id=%s not found (snapshot v%d), continuing without context",
				*req.MuseumID, snapshot.Version())
		}
		museum = m
	}

	intent := classifyIntent(req.Message, museum != nil, req.Form)
	uc.logger.Info("ProcessMessage: intent=%s, museum=%v, pendingForm=%v",
		intent, req.MuseumID, req.PendingForm)

	switch intent {
	case IntentFormSubmission:
		return uc.handleFormSubmission(ctx, req, museum)

	case IntentBookingRequest:
		// Фраза о бронировании при уже открытой форме перезапускает
		// форму с чистыми полями
		return uc.handleBookingRequest(museum), nil

	default:
		return uc.handleInformational(ctx, req, museum), nil
	}
}

// handleBookingRequest показывает форму бронирования
// Сервис ответов для этого хода не вызывается
func (uc *UseCase) handleBookingRequest(museum *domain.Museum) *Response {
	return &Response{
		Turn: domain.ConversationTurn{
			Role:    domain.RoleAssistant,
			Content: fmt.Sprintf("I can help you book tickets for %s. Please fill out the following form:", museum.Name),
			Type:    domain.TurnBookingForm,
		},
		PendingForm: true,
	}
}

// handleFormSubmission валидирует форму и переходит к созданию
// платежного намерения
func (uc *UseCase) handleFormSubmission(ctx context.Context, req *Request, museum *domain.Museum) (*Response, error) {
	if museum == nil {
		return &Response{
			Turn: domain.ConversationTurn{
				Role:    domain.RoleAssistant,
				Content: formMsgNoMuseum,
			},
			PendingForm: false,
		}, nil
	}

	if problem := validateForm(req.Form, museum); problem != "" {
		uc.logger.Warn("ProcessMessage: form validation failed for museum=%s: %s", museum.ID, problem)
		// Остаемся в состоянии открытой формы, пользователь исправит поля
		return &Response{
			Turn: domain.ConversationTurn{
				Role:    domain.RoleAssistant,
				Content: problem,
			},
			PendingForm: true,
		}, nil
	}

	draft := &domain.BookingDraft{
		MuseumID:     museum.ID,
		TicketTypeID: req.Form.TicketTypeID,
		Quantity:     req.Form.Quantity,
		VisitDate:    req.Form.VisitDate,
		Visitor:      req.Form.Visitor,
	}

	result, err := uc.intentCreator.Execute(ctx, &createIntent.Request{
		MuseumID:     draft.MuseumID,
		TicketTypeID: draft.TicketTypeID,
		Quantity:     draft.Quantity,
	})
	if err != nil {
		// Ошибка checkout не роняет ход и не портит сессию:
		// сообщаем и оставляем форму открытой для повторной попытки
		uc.logger.Error("ProcessMessage: intent creation failed for museum=%s: %v", museum.ID, err)
		return &Response{
			Turn: domain.ConversationTurn{
				Role:    domain.RoleAssistant,
				Content: "Sorry, I couldn't process your booking request. Please try again later.",
			},
			PendingForm: true,
		}, nil
	}

	ticket, _ := museum.TicketByID(draft.TicketTypeID)

	return &Response{
		Turn: domain.ConversationTurn{
			Role: domain.RoleAssistant,
			Content: fmt.Sprintf(
				"Great! I've prepared your booking for %d %s ticket(s) for %s on %s. Please proceed to payment to complete your booking.",
				draft.Quantity, ticket.Name, museum.Name, draft.VisitDate,
			),
			Type:  domain.TurnBookingConfirmation,
			Draft: draft,
		},
		PendingForm: false,
		Intent: &IntentRef{
			PaymentID: result.PaymentID,
			Amount:    result.Amount,
			Currency:  result.Currency,
			Status:    result.Status,
		},
	}, nil
}

// handleInformational отправляет реплику в сервис ответов
// Сервис сам деградирует до rule-based fallback, ход никогда
// не остается без ответа
func (uc *UseCase) handleInformational(ctx context.Context, req *Request, museum *domain.Museum) *Response {
	text := uc.assistant.Respond(ctx, &assistant.Request{
		Message:  req.Message,
		History:  req.History,
		Museum:   museum,
		Language: req.Language,
	})

	return &Response{
		Turn: domain.ConversationTurn{
			Role:    domain.RoleAssistant,
			Content: text,
		},
		PendingForm: req.PendingForm,
	}
}
