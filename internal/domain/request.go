package domain

import (
	"encoding/json"
	"fmt"
)

// Request types delivered by the voice platform.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Intent names handled by the skill. The AMAZON.* ones are platform built-ins.
const (
	IntentPlayVideo = "PlayVideoIntent"
	IntentHelp      = "AMAZON.HelpIntent"
	IntentCancel    = "AMAZON.CancelIntent"
	IntentStop      = "AMAZON.StopIntent"
	IntentFallback  = "AMAZON.FallbackIntent"
)

// RequestEnvelope is the JSON document the platform sends for every invocation.
// Only request.type, request.intent.name and request.locale drive routing.
type RequestEnvelope struct {
	Version string          `json:"version"`
	Session *Session        `json:"session,omitempty"`
	Context json.RawMessage `json:"context,omitempty"`
	Request Request         `json:"request"`

	raw []byte
}

type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	User        User           `json:"user"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID string `json:"userId"`
}

type Request struct {
	Type      string        `json:"type"`
	RequestID string        `json:"requestId,omitempty"`
	Timestamp string        `json:"timestamp,omitempty"`
	Locale    string        `json:"locale,omitempty"`
	Intent    *Intent       `json:"intent,omitempty"`
	Reason    string        `json:"reason,omitempty"` // SessionEndedRequest only
	Error     *RequestError `json:"error,omitempty"`  // SessionEndedRequest only
}

type Intent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name               string `json:"name"`
	Value              string `json:"value,omitempty"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ParseEnvelope decodes a request envelope and keeps a copy of the raw bytes
// so the envelope can be logged exactly as received.
func ParseEnvelope(data []byte) (*RequestEnvelope, error) {
	var env RequestEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	env.raw = append([]byte(nil), data...)
	return &env, nil
}

// Raw returns the envelope as received, or its JSON encoding when it was
// built in code rather than parsed.
func (e *RequestEnvelope) Raw() []byte {
	if e == nil {
		return nil
	}
	if e.raw != nil {
		return e.raw
	}
	b, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return b
}

func (e *RequestEnvelope) Type() string {
	if e == nil {
		return ""
	}
	return e.Request.Type
}

func (e *RequestEnvelope) Locale() string {
	if e == nil {
		return ""
	}
	return e.Request.Locale
}

// IntentName is empty unless the envelope carries an IntentRequest.
func (e *RequestEnvelope) IntentName() string {
	if e == nil || e.Request.Type != RequestTypeIntent || e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Name
}

// IsIntent reports whether the envelope is an IntentRequest for one of names.
func (e *RequestEnvelope) IsIntent(names ...string) bool {
	if e.Type() != RequestTypeIntent {
		return false
	}
	name := e.IntentName()
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
