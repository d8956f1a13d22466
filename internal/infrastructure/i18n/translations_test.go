package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"videoskill/internal/domain"
)

func newTestTranslator() *Translator {
	return NewTranslator("ja-JP", zap.NewNop())
}

func TestLookup_Japanese(t *testing.T) {
	msgs := newTestTranslator().Lookup("ja-JP", "HelloWorldIntent")

	assert.Equal(t, domain.MessageSet{
		Welcome:   "ようこそ。再生、または、ヘルプ、と言ってみてください。どうぞ！",
		Play:      "動画を再生します",
		Help:      "再生、と言ってみてください。どうぞ！",
		Goodbye:   "さようなら",
		Reflector: "HelloWorldIntentがトリガーされました。",
		Fallback:  "ごめんなさい。ちょっとよくわかりませんでした。もう一度言ってみてください。",
		Error:     "ごめんなさい。なんだかうまく行かないようです。もう一度言ってみてください。",
	}, msgs)
}

func TestLookup_English(t *testing.T) {
	msgs := newTestTranslator().Lookup("en-US", "HelloWorldIntent")

	assert.Equal(t, "You just triggered HelloWorldIntent.", msgs.Reflector)
	for name, v := range map[string]string{
		"welcome": msgs.Welcome, "play": msgs.Play, "help": msgs.Help, "goodbye": msgs.Goodbye,
		"fallback": msgs.Fallback, "error": msgs.Error,
	} {
		assert.NotEmpty(t, v, name)
	}
}

func TestLookup_UnknownLocale(t *testing.T) {
	tr := newTestTranslator()

	for _, locale := range []string{"", "fr-FR", "ja", "ja-jp", "de-DE"} {
		t.Run(locale, func(t *testing.T) {
			assert.Equal(t, domain.MessageSet{}, tr.Lookup(locale, "AnyIntent"))
		})
	}
}

func TestLookup_ReflectorWithoutIntent(t *testing.T) {
	msgs := newTestTranslator().Lookup("ja-JP", "")
	assert.Equal(t, "がトリガーされました。", msgs.Reflector)
}

func TestLookup_FreshValues(t *testing.T) {
	tr := newTestTranslator()
	first := tr.Lookup("ja-JP", "A")
	first.Help = "changed"

	assert.Equal(t, "再生、と言ってみてください。どうぞ！", tr.Lookup("ja-JP", "A").Help)
}

func TestLocales(t *testing.T) {
	assert.ElementsMatch(t, []string{"ja-JP", "en-US"}, newTestTranslator().Locales())
}

func TestNewTranslator_InvalidDefault(t *testing.T) {
	tr := NewTranslator("???", nil)
	assert.Equal(t, "ja-JP", tr.DefaultLocale())
	assert.ElementsMatch(t, []string{"ja-JP", "en-US"}, tr.Locales())
	assert.Equal(t, domain.MessageSet{}, tr.Lookup("fr-FR", ""))
}

func TestDefaultLocale(t *testing.T) {
	assert.Equal(t, "en-US", NewTranslator("en-US", nil).DefaultLocale())
	assert.Equal(t, "ja-JP", NewTranslator("fr-FR", nil).DefaultLocale())
	assert.NotEmpty(t, newTestTranslator().Lookup(newTestTranslator().DefaultLocale(), "").Error)
}
