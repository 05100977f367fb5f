//go:build unit

package runtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestPanicRecover = errors.New("test error")

// TestLogPanicWithStack_NilLogger tests that nil logger doesn't cause panic.
func TestLogPanicWithStack_NilLogger(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		logPanicWithStack(nil, "test", "panic value", []byte("stack trace"))
	})
}

// TestLogPanicWithStack_ValidLogger tests logging with a valid logger.
func TestLogPanicWithStack_ValidLogger(t *testing.T) {
	t.Parallel()

	logger := newTestLogger()
	stack := []byte("goroutine 1 [running]:\nmain.main()\n\t/path/to/file.go:10")

	logPanicWithStack(logger, "test-handler", "test panic", stack)

	assert.True(t, logger.wasPanicLogged())
	assert.NotEmpty(t, logger.errorCalls)

	value, ok := logger.fieldValue("goroutine_name")
	require.True(t, ok)
	assert.Equal(t, "test-handler", value)
}

// TestLogPanicWithStack_DifferentPanicTypes tests various panic value types.
func TestLogPanicWithStack_DifferentPanicTypes(t *testing.T) {
	t.Parallel()

	type customStruct struct {
		Field string
		Code  int
	}

	tests := []struct {
		name       string
		panicValue any
	}{
		{name: "string panic value", panicValue: "something went wrong"},
		{name: "error panic value", panicValue: errTestPanicRecover},
		{name: "int panic value", panicValue: 42},
		{name: "struct panic value", panicValue: customStruct{Field: "test", Code: 500}},
		{name: "nil panic value", panicValue: nil},
		{name: "slice panic value", panicValue: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := newTestLogger()

			require.NotPanics(t, func() {
				logPanicWithStack(logger, "test", tt.panicValue, []byte("test stack"))
			})

			assert.True(t, logger.wasPanicLogged())
		})
	}
}

// TestRecoverAndLog_NilLogger tests RecoverAndLog with nil logger.
func TestRecoverAndLog_NilLogger(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		func() {
			defer RecoverAndLog(nil, "test-nil-logger")

			panic("test panic")
		}()
	})
}

// TestRecoverAndLog_SwallowsPanic tests the panic does not escape the deferring frame.
func TestRecoverAndLog_SwallowsPanic(t *testing.T) {
	t.Parallel()

	logger := newTestLogger()

	require.NotPanics(t, func() {
		func() {
			defer RecoverAndLog(logger, "worker")

			panic(errTestPanicRecover)
		}()
	})

	assert.True(t, logger.wasPanicLogged())
}

// TestRecoverAndLog_NoPanic verifies the helper is a no-op without a panic.
func TestRecoverAndLog_NoPanic(t *testing.T) {
	t.Parallel()

	logger := newTestLogger()

	func() {
		defer RecoverAndLog(logger, "calm-worker")
	}()

	assert.False(t, logger.wasPanicLogged())
}

// TestRecoverAndLogWithContext_NilContext tests fallback to a background context.
func TestRecoverAndLogWithContext_NilContext(t *testing.T) {
	t.Parallel()

	logger := newTestLogger()

	require.NotPanics(t, func() {
		func() {
			//nolint:staticcheck // intentionally passing nil ctx
			defer RecoverAndLogWithContext(nil, logger, "worker")

			panic("boom")
		}()
	})

	assert.True(t, logger.wasPanicLogged())
}

// TestRecoverAndCrash_Rethrows verifies the panic is reported then re-raised.
func TestRecoverAndCrash_Rethrows(t *testing.T) {
	t.Parallel()

	logger := newTestLogger()

	require.PanicsWithValue(t, "fatal state", func() {
		func() {
			defer RecoverAndCrash(logger, "critical-worker")

			panic("fatal state")
		}()
	})

	assert.True(t, logger.wasPanicLogged())
}

// TestRecoverAndCrashWithContext_NoPanic verifies no spurious re-panic.
func TestRecoverAndCrashWithContext_NoPanic(t *testing.T) {
	t.Parallel()

	logger := newTestLogger()

	require.NotPanics(t, func() {
		func() {
			defer RecoverAndCrashWithContext(context.Background(), logger, "critical-worker")
		}()
	})

	assert.False(t, logger.wasPanicLogged())
}

// TestSafeGo_RecoversPanicInGoroutine tests panic containment on spawned goroutines.
func TestSafeGo_RecoversPanicInGoroutine(t *testing.T) {
	t.Parallel()

	logger := newTestLogger()

	SafeGo(context.Background(), logger, "test-component", "exploding-goroutine", func(_ context.Context) {
		panic("goroutine boom")
	})

	require.True(t, logger.waitForPanicLog(5*time.Second), "panic was never logged")
}

// TestSafeGo_RunsFunction verifies fn executes with the provided context.
func TestSafeGo_RunsFunction(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}

	ctx := context.WithValue(context.Background(), ctxKey{}, "payload")
	done := make(chan string, 1)

	SafeGo(ctx, nil, "test-component", "quiet-goroutine", func(ctx context.Context) {
		value, _ := ctx.Value(ctxKey{}).(string)
		done <- value
	})

	select {
	case got := <-done:
		assert.Equal(t, "payload", got)
	case <-time.After(5 * time.Second):
		t.Fatal("goroutine never ran")
	}
}

// TestRecoverAndLog_ProductionModeOmitsStack verifies stack redaction.
//
//nolint:paralleltest // mutates global production mode
func TestRecoverAndLog_ProductionModeOmitsStack(t *testing.T) {
	SetProductionMode(true)
	t.Cleanup(func() { SetProductionMode(false) })

	logger := newTestLogger()

	func() {
		defer RecoverAndLog(logger, "prod-worker")

		panic("prod panic")
	}()

	require.True(t, logger.wasPanicLogged())

	_, hasStack := logger.fieldValue("stack_trace")
	assert.False(t, hasStack, "stack trace must be redacted in production mode")
}
