package domain

// Business validation constants
const (
	MinTicketsPerBooking = 1
	MaxTicketsPerBooking = 10

	MaxVisitorNameLength = 200
)

// Payment constants
const (
	DefaultCurrency = "inr"

	PaymentIDPrefix = "PAY-"
	BookingIDPrefix = "BK"
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultLanguage язык ответов по умолчанию
const DefaultLanguage = "en"

// SupportedLanguages языки, для которых есть таблицы системных сообщений
var SupportedLanguages = []string{"en", "hi", "kn", "te", "ta"}
