// Package lambda hosts the skill as an AWS Lambda function.
package lambda

import (
	"context"
	"encoding/json"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"videoskill/internal/domain"
	"videoskill/internal/ports/input"
)

type Handler struct {
	skill  input.SkillUseCase
	logger *zap.Logger
	start  func(handler any)
}

func NewHandler(skill input.SkillUseCase, logger *zap.Logger) *Handler {
	return &Handler{skill: skill, logger: logger, start: awslambda.Start}
}

// Invoke answers one Lambda event. Only an event that is not a request
// envelope at all is returned as an error.
func (h *Handler) Invoke(ctx context.Context, event json.RawMessage) (domain.ResponseEnvelope, error) {
	env, err := domain.ParseEnvelope(event)
	if err != nil {
		h.logger.Error("❌ Invalid Lambda event", zap.Error(err))
		return domain.ResponseEnvelope{}, err
	}
	return h.skill.Handle(ctx, env), nil
}

// Start hands control to the Lambda runtime; it never returns, so buffered
// logs are flushed first.
func (h *Handler) Start() {
	h.logger.Info("✅ Lambda handler started")
	_ = h.logger.Sync()
	h.start(h.Invoke)
}
