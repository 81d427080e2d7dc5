package scenario

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ib-77/scenario/pkg/rop"
	"github.com/ib-77/scenario/pkg/rop/solo"
)

// ErrNoValue is returned by Get and friends when a step holds no usable value.
var ErrNoValue = errors.New("scenario: step holds no value")

// ErrNilRaise is returned in place of a nil error from a Raise.
var ErrNilRaise = rop.ErrNilRaise

// Step is one stage of a scenario. Combinators return a new Step and never
// modify the receiver.
type Step[T any] struct {
	gate Gate
	res  rop.Result[T]
}

// Run executes action if g is open. A failure is kept in the step.
func Run[T any](g Gate, action func(ctx context.Context) (T, error)) Step[T] {
	if !g.executable {
		return Step[T]{gate: g, res: rop.Empty[T]()}
	}
	return Step[T]{gate: g, res: solo.Run(g.ctx, action)}
}

// RunOrRaise executes action if g is open. A failure halts the chain with
// raise's error; the original failure is dropped.
func RunOrRaise[T any](g Gate, action func(ctx context.Context) (T, error), raise Raise) Step[T] {
	if !g.executable {
		return Step[T]{gate: g, res: rop.Empty[T]()}
	}
	return Step[T]{gate: g, res: solo.Substitute(g.ctx, action, raise)}
}

// Exec executes an action that produces no value.
func Exec(g Gate, action func(ctx context.Context) error) Step[struct{}] {
	return Run(g, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, action(ctx)
	})
}

func Start[T any](ctx context.Context, action func(ctx context.Context) (T, error)) Step[T] {
	return Run(Always(ctx), action)
}

func StartOrRaise[T any](ctx context.Context, action func(ctx context.Context) (T, error), raise Raise) Step[T] {
	return RunOrRaise(Always(ctx), action, raise)
}

func StartExec(ctx context.Context, action func(ctx context.Context) error) Step[struct{}] {
	return Exec(Always(ctx), action)
}

// Validate halts the chain with raise's error when predicate rejects the
// stored value. A pending failure passes through untouched.
func (s Step[T]) Validate(predicate func(ctx context.Context, t T) bool, raise Raise) Step[T] {
	if !s.gate.executable {
		return s
	}
	return s.with(solo.AndValidate(s.gate.ctx, s.res, predicate, raise))
}

// Apply runs a side effect on the stored value. An error from consume halts
// the chain as is.
func (s Step[T]) Apply(consume func(ctx context.Context, t T) error) Step[T] {
	if !s.gate.executable {
		return s
	}
	return s.with(solo.Tee(s.gate.ctx, s.res, consume))
}

// When is Apply guarded by predicate.
func (s Step[T]) When(predicate func(ctx context.Context, t T) bool,
	consume func(ctx context.Context, t T) error) Step[T] {

	if !s.gate.executable {
		return s
	}
	return s.with(solo.TeeIf(s.gate.ctx, s.res, predicate, consume))
}

// Recover replaces a pending failure with the value fn returns. An error
// from fn halts the chain.
func (s Step[T]) Recover(fn func(ctx context.Context, err error) (T, error)) Step[T] {
	if !s.gate.executable {
		return s
	}
	return s.with(solo.Recover(s.gate.ctx, s.res, fn))
}

// OnError hands a pending failure accepted by match to handle. If handle
// returns nil the failure is cleared and the step is left without a value;
// otherwise the chain halts with the returned error. Once a handler has
// taken the failure later OnError calls see nothing.
func (s Step[T]) OnError(match Matcher, handle func(ctx context.Context, err error) error) Step[T] {
	if !s.gate.executable {
		return s
	}
	return s.with(solo.Catch(s.gate.ctx, s.res, match, handle))
}

func (s Step[T]) OnAnyError(handle func(ctx context.Context, err error) error) Step[T] {
	return s.OnError(AnyError, handle)
}

// Map transforms the stored value into a new step. A failure from fn is
// kept in the new step; a pending failure or a halt is carried over and fn
// is not called.
func Map[T, R any](s Step[T], fn func(ctx context.Context, t T) (R, error)) Step[R] {
	if !s.gate.executable {
		return Step[R]{gate: s.gate, res: rop.Empty[R]()}
	}
	return Step[R]{gate: s.gate, res: solo.Try(s.gate.ctx, s.res, fn)}
}

func (s Step[T]) Get() (T, error) {
	return solo.Finally(s.gate.ctx, s.res, present[T], func(context.Context) (T, error) {
		var zero T
		return zero, ErrNoValue
	})
}

// OrZero returns the stored value or the zero value of T.
func (s Step[T]) OrZero() (T, error) {
	if s.res.IsHalted() {
		var zero T
		return zero, s.res.Err()
	}
	return s.res.Result(), nil
}

func (s Step[T]) OrElse(fallback T) (T, error) {
	return solo.Finally(s.gate.ctx, s.res, present[T], func(context.Context) (T, error) {
		return fallback, nil
	})
}

// OrElseGet calls fallback only when there is no value.
func (s Step[T]) OrElseGet(fallback func(ctx context.Context) T) (T, error) {
	return solo.Finally(s.gate.ctx, s.res, present[T], func(ctx context.Context) (T, error) {
		return fallback(ctx), nil
	})
}

func (s Step[T]) OrRaise(raise Raise) (T, error) {
	return solo.Finally(s.gate.ctx, s.res, present[T], func(ctx context.Context) (T, error) {
		var zero T
		if err := raise(ctx); err != nil {
			return zero, err
		}
		return zero, ErrNilRaise
	})
}

// Outcome exposes the underlying result for inspection.
func (s Step[T]) Outcome() rop.Result[T] {
	return s.res
}

// Err returns the pending or halting failure, if any.
func (s Step[T]) Err() error {
	return s.res.Err()
}

func (s Step[T]) Executable() bool {
	return s.gate.executable
}

func (s Step[T]) ScenarioID() uuid.UUID {
	return s.gate.id
}

func (s Step[T]) with(res rop.Result[T]) Step[T] {
	return Step[T]{gate: s.gate, res: res}
}

func present[T any](_ context.Context, t T) (T, error) {
	return t, nil
}
