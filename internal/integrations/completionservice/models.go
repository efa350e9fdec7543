package completionservice

// HistoryMessage одна реплика истории диалога для completion-сервиса
type HistoryMessage struct {
	Role    string `json:"role"` // user | model
	Content string `json:"content"`
}

// CompletionRequest запрос на генерацию ответа
type CompletionRequest struct {
	Model       string           `json:"model"`
	System      string           `json:"system,omitempty"`
	Prompt      string           `json:"prompt"`
	History     []HistoryMessage `json:"history,omitempty"`
	Temperature float64          `json:"temperature,omitempty"`
	MaxTokens   int              `json:"maxTokens,omitempty"`
}

// CompletionResponse ответ completion-сервиса
type CompletionResponse struct {
	Text string `json:"text"`
}

// ErrorResponse модель ошибки от completion-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
