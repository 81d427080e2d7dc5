package rop

import (
	"time"

	"github.com/google/uuid"
)

// State tags which slot of a Result holds meaningful information.
type State uint8

const (
	// StateEmpty is a result that was never produced (gate closed or failure handled).
	StateEmpty State = iota
	// StateValue holds a value, possibly a nil one.
	StateValue
	// StateFailure holds a deferred failure waiting for recovery or dispatch.
	StateFailure
	// StateHalted holds a raised failure; nothing downstream runs.
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateValue:
		return "value"
	case StateFailure:
		return "failure"
	case StateHalted:
		return "halted"
	default:
		return "unknown"
	}
}

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	state     State
}

func Empty[T any]() Result[T] {
	return Result[T]{
		state:     StateEmpty,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		state:     StateValue,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		state:     StateFailure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Halt builds a halted result. A nil err is replaced by ErrNilRaise.
func Halt[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilRaise
	}
	return Result[T]{
		err:       err,
		state:     StateHalted,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a result that carries no value. A value result
// becomes empty since its value cannot cross the type boundary.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	state := from.state
	if state == StateValue {
		state = StateEmpty
	}
	return Result[Out]{
		err:       from.err,
		state:     state,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) State() State {
	return r.state
}

func (r Result[T]) IsSuccess() bool {
	return r.state == StateValue
}

func (r Result[T]) IsFailure() bool {
	return r.state == StateFailure
}

func (r Result[T]) IsHalted() bool {
	return r.state == StateHalted
}

func (r Result[T]) IsEmpty() bool {
	return r.state == StateEmpty
}

func (r Result[T]) HasResult() bool {
	return r.state == StateValue
}

// IsPresent reports a stored value that is not a nil reference.
func (r Result[T]) IsPresent() bool {
	return r.state == StateValue && !IsNil(r.result)
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
