// Package assert provides invariant checks with a process-wide, pluggable
// failure handler.
//
// The handler registry holds at most one Handler at a time. Embedding
// applications install one with SetHandler to intercept assertion failures;
// the slot is an atomic pointer, so registration, clearing, and invocation are
// safe to interleave from any goroutine. Last registration wins.
//
// Failed checks flow through a single pipeline: caller-site capture,
// structured logging, OpenTelemetry metrics and span events, error-reporter
// notification, and finally handler consultation. A handler returning
// StatusContinue leaves the failure as an ordinary error return; any other
// value escalates it to a panic carrying the same *AssertionError.
package assert
