package assistant

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/internal/integrations/completionservice"
)

// Request запрос на генерацию ответа ассистента
type Request struct {
	Message  string
	History  []domain.ConversationTurn
	Museum   *domain.Museum // выбранный музей, nil если не выбран
	Language string
}

// Service сервис генерации ответов ассистента
// Делегирует внешнему completion-сервису, при его недоступности
// или непригодном ответе переключается на rule-based fallback
type Service struct {
	client  CompletionClient
	catalog CatalogProvider
	enabled bool
	logger  Logger
}

// NewService создает новый экземпляр сервиса ассистента
// enabled = false полностью отключает live-бэкенд, остаются только правила
func NewService(client CompletionClient, catalog CatalogProvider, enabled bool, logger Logger) *Service {
	return &Service{
		client:  client,
		catalog: catalog,
		enabled: enabled,
		logger:  logger,
	}
}

// Respond возвращает текст ответа на пользовательскую реплику
// Никогда не оставляет реплику без ответа: любая ошибка live-бэкенда
// прозрачно заменяется детерминированным fallback-ответом
func (s *Service) Respond(ctx context.Context, req *Request) string {
	if s.enabled && s.client != nil {
		text, err := s.client.CompleteWithGracefulDegradation(ctx, s.buildCompletionRequest(req))
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		s.logger.Warn("Assistant.Respond: live backend failed, falling back to rules: %v", err)
	}

	return fallbackResponse(req.Message, req.Museum)
}

func (s *Service) buildCompletionRequest(req *Request) *completionservice.CompletionRequest {
	history := make([]completionservice.HistoryMessage, 0, len(req.History))

	// Completion-сервис требует, чтобы история начиналась с user-реплики:
	// пропускаем стартовое приветствие ассистента
	started := false
	for _, turn := range req.History {
		if !started && turn.Role == domain.RoleAssistant {
			continue
		}
		started = true

		role := "user"
		if turn.Role == domain.RoleAssistant {
			role = "model"
		}
		history = append(history, completionservice.HistoryMessage{
			Role:    role,
			Content: turn.Content,
		})
	}

	return &completionservice.CompletionRequest{
		System:      buildSystemContext(s.catalog.Snapshot(), req.Language),
		Prompt:      req.Message,
		History:     history,
		Temperature: 0.7,
		MaxTokens:   800,
	}
}
