package process_message

import "strings"

// Intent классифицированное намерение одного хода диалога
type Intent int

const (
	// IntentInformational информационный вопрос, уходит в сервис ответов
	IntentInformational Intent = iota
	// IntentBookingRequest запрос на бронирование, показываем форму
	IntentBookingRequest
	// IntentFormSubmission сабмит формы, уходит в checkout
	IntentFormSubmission
)

func (i Intent) String() string {
	switch i {
	case IntentBookingRequest:
		return "booking_request"
	case IntentFormSubmission:
		return "form_submission"
	default:
		return "informational"
	}
}

// bookingIntentPhrases фиксированный набор фраз-маркеров намерения купить билет
// Сравнение регистронезависимое, по вхождению подстроки
var bookingIntentPhrases = []string{
	"book ticket",
	"buy ticket",
	"purchase ticket",
	"get ticket",
	"reserve ticket",
	"book a ticket",
	"buy a ticket",
	"purchase a ticket",
	"get a ticket",
	"reserve a ticket",
}

// classifyIntent чистая функция классификации хода
// Форма бронирования показывается только при выбранном музее:
// без контекста фраза о покупке остается информационной репликой
// (fallback подскажет выбрать музей)
func classifyIntent(message string, hasMuseum bool, form *FormSubmission) Intent {
	if form != nil {
		return IntentFormSubmission
	}

	if hasMuseum && containsBookingPhrase(message) {
		return IntentBookingRequest
	}

	return IntentInformational
}

func containsBookingPhrase(message string) bool {
	query := strings.ToLower(message)
	for _, phrase := range bookingIntentPhrases {
		if strings.Contains(query, phrase) {
			return true
		}
	}
	return false
}
