package output

import "videoskill/internal/domain"

// Messages exposes the locale text table used by the request handlers.
type Messages interface {
	// Lookup returns the message set for locale. intentName is substituted
	// into the reflector message and may be empty.
	// Unknown locales yield a MessageSet of empty strings.
	Lookup(locale, intentName string) domain.MessageSet
	// DefaultLocale is a locale guaranteed to have translations.
	DefaultLocale() string
}
