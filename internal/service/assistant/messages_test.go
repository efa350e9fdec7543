package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

func TestLanguageTablesCoverSupportedLanguages(t *testing.T) {
	for _, lang := range domain.SupportedLanguages {
		assert.NotEmpty(t, LanguageDirective(lang), "directive for %s", lang)
		assert.NotEmpty(t, ErrorReply(lang), "error reply for %s", lang)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, LanguageDirective("en"), LanguageDirective("fr"))
	assert.Equal(t, ErrorReply("en"), ErrorReply(""))
}
