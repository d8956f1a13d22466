package domain

import "errors"

// Domain errors.
var (
	ErrInvalidEnvelope = errors.New("enveloppe de requête invalide")
	ErrNoHandler       = errors.New("aucun handler ne correspond à la requête")
	ErrHandlerPanic    = errors.New("panic pendant le traitement de la requête")
)

// Fault kinds reported to logs and metrics.
const (
	FaultNoHandler    = "no_handler"
	FaultPanic        = "panic"
	FaultHandlerError = "handler_error"
)

// FaultKind classifies an error raised while routing or handling a request.
func FaultKind(err error) string {
	switch {
	case errors.Is(err, ErrNoHandler):
		return FaultNoHandler
	case errors.Is(err, ErrHandlerPanic):
		return FaultPanic
	default:
		return FaultHandlerError
	}
}
