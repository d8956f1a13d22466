package input

import (
	"context"

	"videoskill/internal/domain"
)

// SkillUseCase answers one request envelope. It never fails: faults are
// turned into the localized apology response.
type SkillUseCase interface {
	Handle(ctx context.Context, env *domain.RequestEnvelope) domain.ResponseEnvelope
}
