package scope

import (
	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/principal"
)

// Gate is the single mutation guard shared by the student, attendance, and
// mark write paths. Each resource kind supplies the target's section (from
// the payload's student association on create, from the stored row on
// update/delete) and the gate applies one decision for all three, so the
// check cannot drift between resource kinds.
type Gate struct {
	logger zerolog.Logger
}

// NewGate constructs the shared mutation gate.
func NewGate(logger zerolog.Logger) Gate {
	return Gate{logger: logger.With().Str("component", "mutation_gate").Logger()}
}

// Authorize returns ErrAuthorizationDenied when the principal may not mutate
// the target. It must be called before any store write; a denial leaves the
// store untouched.
func (g Gate) Authorize(p principal.Principal, target Target) error {
	if CanMutate(p, target) {
		return nil
	}

	g.logger.Warn().
		Str("principal_kind", string(p.Kind)).
		Str("target_section", target.Section).
		Msg("mutation denied by scope check")

	return domain.ErrAuthorizationDenied
}
