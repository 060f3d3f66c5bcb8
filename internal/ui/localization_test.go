package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_AllLanguagesCoverEnglishKeys(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !assert.True(t, ok, "missing texts for %s", lang) {
			continue
		}
		for key := range l.texts["en"] {
			assert.NotEmpty(t, texts[key], "language %s lacks %s", lang, key)
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Check URL", l.GetText(KeyCheckURL))

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Проверить URL", l.GetText(KeyCheckURL))

	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
}

func TestLocalization_GetTextFallbacks(t *testing.T) {
	l := NewLocalization()
	l.texts["ru"] = map[string]string{}
	l.SetLanguage("ru")

	assert.Equal(t, "Stop", l.GetText(KeyStop))
	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}
