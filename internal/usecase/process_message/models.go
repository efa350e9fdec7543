package process_message

import "github.com/m04kA/SMC-MuseumService/internal/domain"

// FormSubmission структурированный сабмит формы бронирования
// Приходит вместо свободного текста, когда клиент показывает форму
type FormSubmission struct {
	TicketTypeID string
	Quantity     int
	VisitDate    string // YYYY-MM-DD
	Visitor      domain.Visitor
}

// Request модель одного хода диалога
// История путешествует с клиентом: сервер не хранит состояние сессии
type Request struct {
	Message     string          // Свободный текст пользователя (пусто при сабмите формы)
	Form        *FormSubmission // Сабмит формы (nil для текстовых реплик)
	History     []domain.ConversationTurn
	MuseumID    *string // Выбранный музей (опционально)
	Language    string  // Язык системных сообщений
	PendingForm bool    // Клиент показывает форму бронирования
}

// IntentRef ссылка на созданное платежное намерение
type IntentRef struct {
	PaymentID string
	Amount    float64
	Currency  string
	Status    string
}

// Response результат обработки хода
// Каждый ход порождает ровно одну реплику ассистента
type Response struct {
	Turn        domain.ConversationTurn // Реплика ассистента этого хода
	PendingForm bool                    // Форма остается открытой после хода
	Intent      *IntentRef              // Заполнено для booking-confirmation
}
