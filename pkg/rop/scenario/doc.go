// Package scenario expresses a multi-step business scenario as a linear
// chain of steps, keeping failure interception, substitution and recovery
// out of the business code.
//
// A chain starts at a Gate (When/WhenFunc/Always) or directly with Start.
// A closed gate makes every later call a no-op: no action, predicate or
// handler runs and nothing is raised.
//
// Failures come in two kinds:
// - deferred: an action or Map transformer failed; the failure waits in the
//   step for Recover or OnError, and is dropped silently if neither touches it
// - raised: RunOrRaise, Validate, a failing Apply/When consumer or a failing
//   Recover/OnError handler halts the chain; later calls are skipped and every
//   terminal operation returns that error
//
// Key operations:
// - Run/RunOrRaise/Exec, Start/StartOrRaise/StartExec: first step
// - Validate: halt when the value is rejected
// - Apply/When: side effects on the value
// - Map: transform the value into a Step of another type
// - Recover: turn a pending failure into a value
// - OnError/OnAnyError: dispatch a pending failure by Matcher
// - Get/OrZero/OrElse/OrElseGet/OrRaise: resolve to (T, error)
//
// Steps are values. Each combinator returns a new Step and leaves its
// receiver as it was, so a Step may be shared, but a chain is expected to be
// built by a single flow of control.
package scenario
