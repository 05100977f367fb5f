package runtime

import (
	"context"
	"fmt"
	"sync"
)

// ErrorReporter forwards recovered panics and failed assertions to an
// external tracking backend. Implementations must tolerate nil contexts, be
// safe for concurrent use, and never panic.
type ErrorReporter interface {
	// CaptureException records err together with routing tags such as
	// "component", "operation", or "goroutine_name".
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

// reporting holds the process-wide reporter and the redaction switch. Both
// stay at their zero values unless configured during startup.
var reporting struct {
	sync.RWMutex
	reporter   ErrorReporter
	production bool
}

// SetErrorReporter installs the process-wide error reporter. Pass nil to
// disable external reporting.
func SetErrorReporter(reporter ErrorReporter) {
	reporting.Lock()
	defer reporting.Unlock()

	reporting.reporter = reporter
}

// GetErrorReporter returns the installed reporter, or nil when none is
// configured.
//
//nolint:ireturn
func GetErrorReporter() ErrorReporter {
	reporting.RLock()
	defer reporting.RUnlock()

	return reporting.reporter
}

// SetProductionMode toggles redaction of panic values, stack traces, and
// assertion details in everything this library hands to external services.
func SetProductionMode(enabled bool) {
	reporting.Lock()
	defer reporting.Unlock()

	reporting.production = enabled
}

// IsProductionMode reports whether redaction is enabled.
func IsProductionMode() bool {
	reporting.RLock()
	defer reporting.RUnlock()

	return reporting.production
}

const redactedPanicMsg = "panic recovered (details redacted)"

// maxReportedStack bounds the stack excerpt attached to a report.
const maxReportedStack = 4096

// reportPanicToErrorService hands a recovered panic to the installed
// reporter, if any. With production mode on, the panic value is replaced by
// a fixed message and the stack is dropped.
func reportPanicToErrorService(
	ctx context.Context,
	panicValue any,
	stack []byte,
	component, goroutineName string,
) {
	reporter := GetErrorReporter()
	if reporter == nil {
		return
	}

	redact := IsProductionMode()

	tags := map[string]string{
		"component":      component,
		"goroutine_name": goroutineName,
		"panic_type":     "recovered",
	}

	if len(stack) > 0 && !redact {
		tags["stack_trace"] = clipStack(stack)
	}

	reporter.CaptureException(ctx, toPanicError(panicValue, redact), tags)
}

func clipStack(stack []byte) string {
	if len(stack) <= maxReportedStack {
		return string(stack)
	}

	return string(stack[:maxReportedStack]) + "\n...[truncated]"
}

// panicError adapts a non-error panic value for CaptureException.
type panicError struct {
	message string
}

func (e *panicError) Error() string {
	return e.message
}

func toPanicError(panicValue any, redact bool) error {
	if redact {
		return &panicError{message: redactedPanicMsg}
	}

	switch val := panicValue.(type) {
	case error:
		return val
	case string:
		return &panicError{message: val}
	default:
		return &panicError{message: "panic: " + formatPanicValue(val)}
	}
}

// formatPanicValue renders a panic value for log fields.
func formatPanicValue(value any) string {
	switch val := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return val
	case error:
		return val.Error()
	default:
		return fmt.Sprintf("%v", value)
	}
}
