package assert

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Handler intercepts assertion failures. It receives the failed expression
// text, the originating file path and line, and the enclosing function name,
// and returns a status code. The registry passes the returned value through
// to the invoker verbatim; the Asserter treats StatusContinue as "carry on"
// and any other value as a request to escalate.
//
// Handlers must be safe for concurrent use and must not panic. The registry
// takes no ownership of resources captured by the handler's closure.
type Handler func(expression, file string, line int, function string) int

// Handler status codes. Any nonzero value is treated as StatusEscalate by the
// Asserter; the named constant exists for readability at handler sites.
const (
	// StatusContinue reports the failure and continues execution.
	StatusContinue = 0
	// StatusEscalate turns the failure into a panic at the check site.
	StatusEscalate = 1
)

// handlerSlot is the process-wide handler registry: a single atomic slot
// holding the installed Handler, or nil when unset.
var handlerSlot atomic.Pointer[Handler]

// SetHandler installs handler as the process-wide assertion handler,
// atomically replacing any previous registration. Passing nil clears the
// slot. The displaced handler is not notified. This operation cannot fail.
func SetHandler(handler Handler) {
	if handler == nil {
		handlerSlot.Store(nil)
		return
	}

	handlerSlot.Store(&handler)
}

// ClearHandler removes the installed handler, if any.
// Equivalent to SetHandler(nil).
func ClearHandler() {
	handlerSlot.Store(nil)
}

// CurrentHandler returns the installed handler, or nil if the slot is unset.
func CurrentHandler() Handler {
	ptr := handlerSlot.Load()
	if ptr == nil {
		return nil
	}

	return *ptr
}

// Invoke consults the installed handler with the four failure inputs and
// returns its result unmodified. If no handler is installed, Invoke writes
// the failure to stderr and returns StatusContinue: the library never aborts
// the process on its own. Embedders that want abort-on-assert install a
// handler that returns StatusEscalate or terminates itself.
func Invoke(expression, file string, line int, function string) int {
	handler := CurrentHandler()
	if handler == nil {
		fmt.Fprintf(os.Stderr, "ASSERTION FAILED: %s (%s:%d in %s)\n", expression, file, line, function)

		return StatusContinue
	}

	return handler(expression, file, line, function)
}
