package application

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"videoskill/internal/domain"
	"videoskill/internal/ports/input"
	"videoskill/internal/ports/output"
)

var _ input.SkillUseCase = (*SkillService)(nil)

// handlerInput is what every predicate and action sees for one request.
type handlerInput struct {
	envelope *domain.RequestEnvelope
	logger   *zap.Logger
}

type handlerEntry struct {
	name      string
	canHandle func(in *handlerInput) bool
	handle    func(ctx context.Context, in *handlerInput) (domain.Response, error)
}

// SkillService routes a request envelope to the first matching handler.
type SkillService struct {
	messages  output.Messages
	metrics   output.Metrics
	logger    *zap.Logger
	userAgent string
	handlers  []handlerEntry
}

// NewSkillService builds the handler chain. metrics may be nil.
func NewSkillService(messages output.Messages, metrics output.Metrics, logger *zap.Logger, customUserAgent string) *SkillService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SkillService{
		messages:  messages,
		metrics:   metrics,
		logger:    logger,
		userAgent: userAgent(customUserAgent),
	}
	s.handlers = s.requestHandlers()
	return s
}

func userAgent(custom string) string {
	base := fmt.Sprintf("videoskill %s", runtime.Version())
	if custom == "" {
		return base
	}
	return base + " " + custom
}

// Handle answers env. Any error or panic raised by a handler, and any
// request no handler accepts, is answered by the error handler instead.
func (s *SkillService) Handle(ctx context.Context, env *domain.RequestEnvelope) domain.ResponseEnvelope {
	start := time.Now()
	in := &handlerInput{
		envelope: env,
		logger: s.logger.With(
			zap.String("request_id", requestID(env)),
			zap.String("request_type", env.Type()),
			zap.String("locale", env.Locale()),
		),
	}

	resp, name, err := s.dispatch(ctx, in)
	if err != nil {
		resp = s.handleError(in, err)
		name = "error"
	}
	s.metrics.ObserveRequest(name, time.Since(start))

	return resp.Envelope(s.userAgent)
}

func (s *SkillService) dispatch(ctx context.Context, in *handlerInput) (resp domain.Response, name string, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = domain.Response{}, fmt.Errorf("%w: %s: %v", domain.ErrHandlerPanic, name, r)
		}
	}()

	if in.envelope == nil {
		return domain.Response{}, "", fmt.Errorf("%w: nil envelope", domain.ErrInvalidEnvelope)
	}

	for _, h := range s.handlers {
		name = h.name
		if !h.canHandle(in) {
			continue
		}
		resp, err = h.handle(ctx, in)
		if err != nil {
			return domain.Response{}, name, fmt.Errorf("%s: %w", name, err)
		}
		return resp, name, nil
	}

	return domain.Response{}, "", fmt.Errorf("%w (type=%q, intent=%q)", domain.ErrNoHandler, in.envelope.Type(), in.envelope.IntentName())
}

// handleError is the catch-all error handler: it always answers with the
// localized apology and keeps the session open. Locales without an apology
// get the default locale's one, so the open session is never silent.
func (s *SkillService) handleError(in *handlerInput, err error) domain.Response {
	kind := domain.FaultKind(err)
	s.metrics.ObserveFault(kind)
	in.logger.Error("~~~~ Error handled", zap.String("kind", kind), zap.Error(err))

	msg := s.messages.Lookup(in.envelope.Locale(), "").Error
	if msg == "" {
		msg = s.messages.Lookup(s.messages.DefaultLocale(), "").Error
	}
	return domain.Ask(msg)
}

func requestID(env *domain.RequestEnvelope) string {
	if env != nil && env.Request.RequestID != "" {
		return env.Request.RequestID
	}
	return "local-" + uuid.NewString()
}

type nopMetrics struct{}

func (nopMetrics) ObserveRequest(string, time.Duration) {}
func (nopMetrics) ObserveFault(string)                  {}
