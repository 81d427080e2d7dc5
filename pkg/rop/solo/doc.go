// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. They are the building blocks behind scenario steps.
//
// Highlights:
// - Succeed/Fail/Halt: construct Result[T]
// - Run: call an action and defer its failure into the result
// - Substitute: call an action and halt with a replacement failure
// - AndValidate: halt when a stored value is rejected
// - Try: transform a stored value (Result[In] -> Result[Out])
// - Tee/TeeIf: side-effect helpers whose errors halt the result
// - Recover/Catch: turn a deferred failure into a value or handle it
// - Finally: reduce to a concrete value or error
package solo
