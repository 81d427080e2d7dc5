// Package core holds per-chain configuration carried in a context.Context:
// whether panics in actions are captured as deferred failures, and the
// logger used for opt-in chain tracing. It does not define business logic.
package core
