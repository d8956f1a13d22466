package i18n

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"videoskill/internal/domain"
	"videoskill/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// fallbackLocale ships with the binary and backs an unusable default locale.
const fallbackLocale = "ja-JP"

// Message IDs shared by every active.<locale>.toml file.
const (
	MsgWelcome   = "Welcome"
	MsgPlay      = "Play"
	MsgHelp      = "Help"
	MsgGoodbye   = "Goodbye"
	MsgReflector = "Reflector"
	MsgFallback  = "Fallback"
	MsgError     = "Error"
)

// Ensure Translator implements the output.Messages port.
var _ output.Messages = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle        *i18n.Bundle
	locales       map[string]struct{}
	defaultLocale string
	logger        *zap.Logger
}

// NewTranslator builds a Translator from the embedded active.*.toml files.
// defaultLocale (e.g. "ja-JP") is the bundle's fallback language when one
// file lacks a message another file defines.
func NewTranslator(defaultLocale string, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.Japanese
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(localeFS, "active.*.toml")
	locales := make(map[string]struct{}, len(files))
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("i18n: failed to load locale file", zap.String("file", file), zap.Error(err))
			continue
		}
		locales[localeFromFile(file)] = struct{}{}
	}

	def := defaultLocale
	if _, ok := locales[def]; !ok {
		logger.Warn("i18n: default locale has no translation file", zap.String("locale", defaultLocale), zap.String("fallback", fallbackLocale))
		def = fallbackLocale
	}

	return &Translator{
		bundle:        bundle,
		locales:       locales,
		defaultLocale: def,
		logger:        logger,
	}
}

// DefaultLocale is the configured default locale when it has a translation
// file, ja-JP otherwise.
func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// active.ja-JP.toml -> ja-JP
func localeFromFile(name string) string {
	return strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".toml")
}

// Locales lists the locale codes with a translation file.
func (t *Translator) Locales() []string {
	out := make([]string, 0, len(t.locales))
	for l := range t.locales {
		out = append(out, l)
	}
	return out
}

// Lookup renders the full message set for locale. Locales are matched
// exactly: "ja" or "ja-jp" are not "ja-JP" and get the empty set.
func (t *Translator) Lookup(locale, intentName string) domain.MessageSet {
	if _, ok := t.locales[locale]; !ok {
		return domain.MessageSet{}
	}

	localizer := i18n.NewLocalizer(t.bundle, locale)
	return domain.MessageSet{
		Welcome:   t.localize(localizer, locale, MsgWelcome, nil),
		Play:      t.localize(localizer, locale, MsgPlay, nil),
		Help:      t.localize(localizer, locale, MsgHelp, nil),
		Goodbye:   t.localize(localizer, locale, MsgGoodbye, nil),
		Reflector: t.localize(localizer, locale, MsgReflector, map[string]any{"IntentName": intentName}),
		Fallback:  t.localize(localizer, locale, MsgFallback, nil),
		Error:     t.localize(localizer, locale, MsgError, nil),
	}
}

func (t *Translator) localize(localizer *i18n.Localizer, locale, key string, data map[string]any) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("i18n: localize failed", zap.String("key", key), zap.String("locale", locale), zap.Error(err))
		return ""
	}
	return msg
}
