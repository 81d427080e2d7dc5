package scenario

import (
	"context"
	"errors"

	"github.com/ib-77/scenario/pkg/rop"
)

// Raise builds the failure a chain halts with.
type Raise func(ctx context.Context) error

// Err returns a Raise that always yields err.
func Err(err error) Raise {
	return func(context.Context) error {
		return err
	}
}

// Matcher selects the deferred failures an OnError handler accepts.
type Matcher func(err error) bool

// AnyError accepts every failure.
var AnyError Matcher = func(err error) bool {
	return err != nil
}

// Cancellation accepts context cancellation and deadline failures.
var Cancellation Matcher = rop.IsCancellationError

// Is accepts failures whose chain contains target.
func Is(target error) Matcher {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// As accepts failures whose chain contains an error of type E.
func As[E error]() Matcher {
	return func(err error) bool {
		var target E
		return errors.As(err, &target)
	}
}

func MatchAll(matchers ...Matcher) Matcher {
	return func(err error) bool {
		for _, m := range matchers {
			if !m(err) {
				return false
			}
		}
		return true
	}
}

func MatchAny(matchers ...Matcher) Matcher {
	return func(err error) bool {
		for _, m := range matchers {
			if m(err) {
				return true
			}
		}
		return false
	}
}
