package domain

// TurnRole author of a conversation turn
type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

// TurnType тип реплики ассистента
type TurnType string

const (
	TurnPlain               TurnType = "plain"
	TurnBookingForm         TurnType = "booking-form"
	TurnBookingConfirmation TurnType = "booking-confirmation"
)

// ConversationTurn a single entry of the session transcript
// Транскрипт append-only и живет только в рамках одной сессии клиента
type ConversationTurn struct {
	Role    TurnRole
	Content string
	Type    TurnType      // пустой тип трактуется как plain
	Draft   *BookingDraft // заполняется только для booking-confirmation
}
