package runtime

import (
	"context"
	"runtime/debug"

	"github.com/LerianStudio/lib-assert/assert/log"
)

// Logger is the minimal logging interface required by recovery helpers.
// It is satisfied by log.Logger implementations such as the zap adapter.
type Logger = log.Logger

// logPanicWithStack logs a recovered panic with its stack trace.
// Safe to call with a nil logger; the event is dropped in that case.
func logPanicWithStack(logger Logger, goroutineName string, panicValue any, stack []byte) {
	if logger == nil {
		return
	}

	fields := []log.Field{
		log.String("goroutine_name", goroutineName),
		log.String("panic_value", formatPanicValue(panicValue)),
	}

	if len(stack) > 0 && !IsProductionMode() {
		fields = append(fields, log.String("stack_trace", string(stack)))
	}

	logger.Log(context.Background(), log.LevelError, "PANIC RECOVERED", fields...)
}

// RecoverAndLog recovers from a panic in the current goroutine, logs it with
// a stack trace, records the panic metric, and reports it to the configured
// error reporter. The panic is swallowed; execution continues after the
// deferring function returns.
//
// Must be invoked directly by defer so recover observes the in-flight panic:
//
//	defer runtime.RecoverAndLog(logger, "outbox_worker")
func RecoverAndLog(logger Logger, goroutineName string) {
	handlePanic(context.Background(), logger, "", goroutineName, recover(), false)
}

// RecoverAndLogWithContext is RecoverAndLog with a caller-supplied context so
// the panic metric and error report carry trace correlation.
func RecoverAndLogWithContext(ctx context.Context, logger Logger, goroutineName string) {
	handlePanic(ctx, logger, "", goroutineName, recover(), false)
}

// RecoverAndCrash recovers from a panic, performs the same logging, metric,
// and reporting work as RecoverAndLog, then re-panics with the original value.
// Use it where a panic must still take the process down but should not be lost
// to observability first.
func RecoverAndCrash(logger Logger, goroutineName string) {
	handlePanic(context.Background(), logger, "", goroutineName, recover(), true)
}

// RecoverAndCrashWithContext is RecoverAndCrash with a caller-supplied context.
func RecoverAndCrashWithContext(ctx context.Context, logger Logger, goroutineName string) {
	handlePanic(ctx, logger, "", goroutineName, recover(), true)
}

// SafeGo runs fn on a new goroutine guarded by panic recovery. A panic inside
// fn is logged, counted, and reported under the given component and goroutine
// name, and never escapes.
func SafeGo(ctx context.Context, logger Logger, component, goroutineName string, fn func(ctx context.Context)) {
	go func() {
		defer func() {
			handlePanic(ctx, logger, component, goroutineName, recover(), false)
		}()

		fn(ctx)
	}()
}

// handlePanic is the shared recovery path. The panic value is captured by the
// caller because recover only works when called directly by a deferred function.
//
//nolint:contextcheck // Intentionally creates a fallback context when nil is passed
func handlePanic(ctx context.Context, logger Logger, component, goroutineName string, panicValue any, rethrow bool) {
	if panicValue == nil {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	stack := debug.Stack()

	logPanicWithStack(logger, goroutineName, panicValue, stack)
	recordPanicMetric(ctx, component, goroutineName)
	reportPanicToErrorService(ctx, panicValue, stack, component, goroutineName)

	if rethrow {
		panic(panicValue)
	}
}
