package application

import (
	"context"

	"go.uber.org/zap"

	"videoskill/internal/domain"
)

const (
	videoSource = "https://example.mp4"
	videoTitle  = "title"
)

// requestHandlers returns the handler chain. Order matters: the reflector
// accepts every IntentRequest and must stay last.
func (s *SkillService) requestHandlers() []handlerEntry {
	return []handlerEntry{
		{name: "launch", canHandle: isType(domain.RequestTypeLaunch), handle: s.launch},
		{name: "play_video", canHandle: isIntent(domain.IntentPlayVideo), handle: s.playVideo},
		{name: "help", canHandle: isIntent(domain.IntentHelp), handle: s.help},
		{name: "cancel_stop", canHandle: isIntent(domain.IntentCancel, domain.IntentStop), handle: s.cancelAndStop},
		{name: "fallback", canHandle: isIntent(domain.IntentFallback), handle: s.fallback},
		{name: "session_ended", canHandle: isType(domain.RequestTypeSessionEnded), handle: s.sessionEnded},
		{name: "intent_reflector", canHandle: isType(domain.RequestTypeIntent), handle: s.intentReflector},
	}
}

func isType(requestType string) func(in *handlerInput) bool {
	return func(in *handlerInput) bool {
		return in.envelope.Type() == requestType
	}
}

func isIntent(names ...string) func(in *handlerInput) bool {
	return func(in *handlerInput) bool {
		return in.envelope.IsIntent(names...)
	}
}

func (s *SkillService) messagesFor(in *handlerInput) domain.MessageSet {
	return s.messages.Lookup(in.envelope.Locale(), in.envelope.IntentName())
}

func (s *SkillService) launch(_ context.Context, in *handlerInput) (domain.Response, error) {
	return domain.Ask(s.messagesFor(in).Welcome), nil
}

func (s *SkillService) playVideo(_ context.Context, in *handlerInput) (domain.Response, error) {
	return domain.Tell(s.messagesFor(in).Play).WithVideo(videoSource, videoTitle), nil
}

func (s *SkillService) help(_ context.Context, in *handlerInput) (domain.Response, error) {
	return domain.Ask(s.messagesFor(in).Help), nil
}

func (s *SkillService) cancelAndStop(_ context.Context, in *handlerInput) (domain.Response, error) {
	return domain.Tell(s.messagesFor(in).Goodbye), nil
}

// fallback answers AMAZON.FallbackIntent, i.e. utterances that map to no
// intent of the interaction model. Locales without it never send it.
func (s *SkillService) fallback(_ context.Context, in *handlerInput) (domain.Response, error) {
	return domain.Ask(s.messagesFor(in).Fallback), nil
}

// sessionEnded is sent when the user exits, stays silent, or an error
// closes the session. The platform ignores any speech here.
func (s *SkillService) sessionEnded(_ context.Context, in *handlerInput) (domain.Response, error) {
	req := in.envelope.Request
	fields := []zap.Field{
		zap.String("reason", req.Reason),
		zap.ByteString("envelope", in.envelope.Raw()),
	}
	if req.Error != nil {
		fields = append(fields, zap.String("error_type", req.Error.Type), zap.String("error_message", req.Error.Message))
	}
	in.logger.Info("~~~~ Session ended", fields...)

	return domain.Empty(), nil
}

// intentReflector repeats the triggered intent name; useful to test the
// interaction model before a dedicated handler exists.
func (s *SkillService) intentReflector(_ context.Context, in *handlerInput) (domain.Response, error) {
	return domain.Tell(s.messagesFor(in).Reflector), nil
}
