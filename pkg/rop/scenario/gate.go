package scenario

import (
	"context"

	"github.com/google/uuid"

	"github.com/ib-77/scenario/pkg/rop/core"
)

// Gate decides once whether a scenario runs at all. Every step derived from
// a closed gate is inert.
type Gate struct {
	ctx        context.Context
	id         uuid.UUID
	executable bool
}

// When opens the gate if condition is true.
func When(ctx context.Context, condition bool) Gate {
	return newGate(ctx, condition)
}

// WhenFunc evaluates condition exactly once, now. A panic in condition is
// not guarded.
func WhenFunc(ctx context.Context, condition func(ctx context.Context) bool) Gate {
	ctx = orBackground(ctx)
	return newGate(ctx, condition(ctx))
}

// Always returns an open gate.
func Always(ctx context.Context) Gate {
	return newGate(ctx, true)
}

func newGate(ctx context.Context, executable bool) Gate {
	id := uuid.New()
	return Gate{
		ctx:        core.WithScenario(orBackground(ctx), id.String()),
		id:         id,
		executable: executable,
	}
}

// orBackground lets a nil ctx through as context.Background.
func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func (g Gate) Executable() bool {
	return g.executable
}

func (g Gate) ID() uuid.UUID {
	return g.id
}

func (g Gate) Context() context.Context {
	return g.ctx
}
