package solo

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/ib-77/scenario/pkg/rop"
	"github.com/ib-77/scenario/pkg/rop/core"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Halt[T any](err error) rop.Result[T] {
	return rop.Halt[T](err)
}

// Run executes action and defers its failure into the result.
func Run[T any](ctx context.Context,
	action func(ctx context.Context) (T, error)) rop.Result[T] {

	out, err := capture(ctx, action)
	if err != nil {
		trace(ctx, "failure deferred", err)
		return rop.Fail[T](err)
	}
	return rop.Success(out)
}

// Substitute executes action and halts with onFailure's error instead of the
// original one. The original error is dropped.
func Substitute[T any](ctx context.Context,
	action func(ctx context.Context) (T, error),
	onFailure func(ctx context.Context) error) rop.Result[T] {

	out, err := capture(ctx, action)
	if err != nil {
		trace(ctx, "failure substituted", err)
		return halt[T](ctx, onFailure(ctx))
	}
	return rop.Success(out)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) bool,
	onInvalid func(ctx context.Context) error) rop.Result[T] {

	if input.IsSuccess() {
		if validate(ctx, input.Result()) {
			return input
		}
		return halt[T](ctx, onInvalid(ctx))
	}
	return input
}

// Try runs onTryExecute on a stored value. Anything else is carried over
// re-typed without calling it.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		return Run(ctx, func(ctx context.Context) (Out, error) {
			return onTryExecute(ctx, input.Result())
		})
	}
	return rop.FailFrom[In, Out](input)
}

// Tee runs a side effect on a stored value. Its error is raised, not deferred.
func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T) error) rop.Result[T] {

	if input.IsSuccess() {
		if err := onSuccess(ctx, input.Result()); err != nil {
			return halt[T](ctx, err)
		}
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T) error) rop.Result[T] {

	if input.IsSuccess() && condition(ctx, input.Result()) {
		return Tee(ctx, input, onSuccessAndCondition)
	}

	return input
}

func Recover[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, err error) (T, error)) rop.Result[T] {

	if !input.IsFailure() {
		return input
	}

	out, err := onFailure(ctx, input.Err())
	if err != nil {
		return halt[T](ctx, err)
	}
	trace(ctx, "failure recovered", input.Err())
	return rop.Success(out)
}

// Catch hands a matching deferred failure to onFailure. A nil return clears
// the failure and leaves the result empty.
func Catch[T any](ctx context.Context, input rop.Result[T],
	match func(err error) bool,
	onFailure func(ctx context.Context, err error) error) rop.Result[T] {

	if !input.IsFailure() || !match(input.Err()) {
		return input
	}

	if err := onFailure(ctx, input.Err()); err != nil {
		return halt[T](ctx, err)
	}
	trace(ctx, "failure handled", input.Err())
	return rop.Empty[T]()
}

// Finally collapses input. A halted input always yields its error.
func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onPresent func(ctx context.Context, r In) (Out, error),
	onAbsent func(ctx context.Context) (Out, error)) (Out, error) {

	if input.IsHalted() {
		var zero Out
		return zero, input.Err()
	}
	if input.IsPresent() {
		return onPresent(ctx, input.Result())
	}
	return onAbsent(ctx)
}

func capture[T any](ctx context.Context,
	action func(ctx context.Context) (T, error)) (out T, err error) {

	if core.IsCapturePanicsEnabled(ctx, true) {
		defer func() {
			if p := recover(); p != nil {
				err = &rop.PanicError{Value: p, Stack: debug.Stack()}
			}
		}()
	}
	return action(ctx)
}

func halt[T any](ctx context.Context, err error) rop.Result[T] {
	res := rop.Halt[T](err)
	trace(ctx, "chain halted", res.Err())
	return res
}

func trace(ctx context.Context, msg string, err error) {
	core.GetLogger(ctx).DebugContext(ctx, msg, slog.Any("err", err))
}
