// Package ssml formats plain text as platform output speech.
package ssml

import (
	"encoding/xml"
	"strings"
)

const (
	openTag  = "<speak>"
	closeTag = "</speak>"
)

// Speak turns text into an SSML document. Plain text is XML-escaped and
// wrapped in <speak>; text that already is a <speak> document is kept as is.
func Speak(text string) string {
	s := strings.TrimSpace(text)
	if IsDocument(s) {
		return s
	}

	var b strings.Builder
	b.WriteString(openTag)
	_ = xml.EscapeText(&b, []byte(s)) // strings.Builder never fails
	b.WriteString(closeTag)
	return b.String()
}

// IsDocument reports whether text is already wrapped in <speak>.
func IsDocument(text string) bool {
	s := strings.TrimSpace(text)
	return strings.HasPrefix(s, openTag) && strings.HasSuffix(s, closeTag)
}
