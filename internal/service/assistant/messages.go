package assistant

import "github.com/m04kA/SMC-MuseumService/internal/domain"

// Таблицы фиксированных системных строк по языкам
// Выбор языка влияет только на эти строки; rule-based ответы
// всегда на английском, живой бэкенд получает языковую директиву

var languageDirectives = map[string]string{
	"en": "Respond in English.",
	"hi": "हिंदी में जवाब दें।",
	"kn": "ಕನ್ನಡದಲ್ಲಿ ಉತ್ತರಿಸಿ.",
	"te": "తెలుగులో సమాధానం ఇవ్వండి.",
	"ta": "தமிழில் பதிலளிக்கவும்.",
}

var errorReplies = map[string]string{
	"en": "Sorry, I encountered an error. Please try again.",
	"hi": "क्षमा करें, एक त्रुटि हुई। कृपया पुनः प्रयास करें।",
	"kn": "ಕ್ಷಮಿಸಿ, ನಾನು ದೋಷವನ್ನು ಎದುರಿಸಿದ್ದೇನೆ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
	"te": "క్షమించండి, నేను లోపాన్ని ఎదుర్కొన్నాను. దయచేసి మళ్లీ ప్రయత్నించండి.",
	"ta": "மன்னிக்கவும், எனக்கு பிழை ஏற்பட்டது. தயவுசெய்து மீண்டும் முயற்சிக்கவும்.",
}

// LanguageDirective возвращает языковую директиву для live-бэкенда
func LanguageDirective(language string) string {
	if directive, ok := languageDirectives[language]; ok {
		return directive
	}
	return languageDirectives[domain.DefaultLanguage]
}

// ErrorReply возвращает локализованное сообщение об ошибке чата
func ErrorReply(language string) string {
	if reply, ok := errorReplies[language]; ok {
		return reply
	}
	return errorReplies[domain.DefaultLanguage]
}
