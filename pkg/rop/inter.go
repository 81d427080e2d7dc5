package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the stored value, zero if there is none
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the deferred or raised error
	Err() error
	// IsSuccess returns true if a value is stored
	IsSuccess() bool
}

// WithState extends WithError with the full tag of the variant
type WithState[T any] interface {
	WithError[T]
	// State returns which slot holds information
	State() State
	// IsHalted returns true if a raised failure stopped the chain
	IsHalted() bool
}

var _ WithState[any] = Result[any]{}
