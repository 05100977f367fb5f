package assert

import (
	goruntime "runtime"
	"strings"
)

const unknownSite = "unknown"

// callerSite resolves the file, line, and function name of the frame skip
// levels above the caller. It is the Go analogue of the
// __FILE__/__LINE__/__FUNCTION__ triple handlers receive.
func callerSite(skip int) (string, int, string) {
	pc, file, line, ok := goruntime.Caller(skip + 1)
	if !ok {
		return unknownSite, 0, unknownSite
	}

	function := unknownSite
	if fn := goruntime.FuncForPC(pc); fn != nil {
		function = trimFunctionName(fn.Name())
	}

	return file, line, function
}

// trimFunctionName strips the package path prefix from a fully qualified
// function name, keeping "pkg.Func" or "pkg.(*Type).Method".
func trimFunctionName(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}

	return name
}
