//go:build unit

package assert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	constant "github.com/LerianStudio/lib-assert/assert/constants"
	"github.com/LerianStudio/lib-assert/assert/runtime"
)

func newRecordingSpan(t *testing.T) (context.Context, *tracetest.SpanRecorder, func()) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := provider.Tracer("assert-test")

	ctx, span := tracer.Start(context.Background(), "operation")

	return ctx, recorder, func() {
		span.End()
		_ = provider.Shutdown(context.Background())
	}
}

func eventAttribute(attrs []attribute.KeyValue, key string) (string, bool) {
	for _, attr := range attrs {
		if string(attr.Key) == key {
			return attr.Value.AsString(), true
		}
	}

	return "", false
}

func TestFailedAssertion_RecordsSpanEvent(t *testing.T) {
	t.Parallel()

	ctx, recorder, done := newRecordingSpan(t)

	a, _ := newTestAsserterWithLogger()
	err := a.That(ctx, false, "span check")
	require.Error(t, err)

	done()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	events := spans[0].Events()
	require.NotEmpty(t, events)

	var found bool

	for _, event := range events {
		if event.Name != constant.EventAssertionFailed {
			continue
		}

		found = true

		name, ok := eventAttribute(event.Attributes, constant.AttrPrefixAssertion+"name")
		require.True(t, ok)
		require.Equal(t, "That", name)

		message, ok := eventAttribute(event.Attributes, constant.AttrPrefixAssertion+"message")
		require.True(t, ok)
		require.Equal(t, "span check", message)

		failureID, ok := eventAttribute(event.Attributes, constant.AttrPrefixAssertion+"failure_id")
		require.True(t, ok)
		require.NotEmpty(t, failureID)
	}

	require.True(t, found, "expected %s span event", constant.EventAssertionFailed)
}

func TestFailedAssertion_NonRecordingSpanSkipped(t *testing.T) {
	t.Parallel()

	a, _ := newTestAsserterWithLogger()

	// Plain context carries a non-recording span; the failure must still
	// surface as an error without touching the tracer.
	err := a.That(context.Background(), false, "no span")
	require.ErrorIs(t, err, ErrAssertionFailed)
}

//nolint:paralleltest // mutates the global error reporter
func TestFailedAssertion_ReportsToErrorReporter(t *testing.T) {
	reporter := &capturingReporter{}
	runtime.SetErrorReporter(reporter)
	t.Cleanup(func() { runtime.SetErrorReporter(nil) })

	a, _ := newTestAsserterWithLogger()
	err := a.That(context.Background(), false, "reported failure")
	require.Error(t, err)

	require.True(t, reporter.called)
	require.Equal(t, "That", reporter.tags["assertion"])
	require.Equal(t, "test-component", reporter.tags["component"])
	require.NotEmpty(t, reporter.tags["failure_id"])
}

//nolint:paralleltest // mutates global production mode and reporter
func TestFailedAssertion_ProductionReportOmitsDetails(t *testing.T) {
	reporter := &capturingReporter{}
	runtime.SetErrorReporter(reporter)
	runtime.SetProductionMode(true)
	t.Cleanup(func() {
		runtime.SetErrorReporter(nil)
		runtime.SetProductionMode(false)
	})

	a, _ := newTestAsserterWithLogger()
	_ = a.That(context.Background(), false, "redacted failure", "secret", "value")

	require.True(t, reporter.called)

	var entry *AssertionError

	require.ErrorAs(t, reporter.err, &entry)
	require.Empty(t, entry.Details, "production report must not carry detail lines")
	require.Equal(t, "redacted failure", entry.Message)
}

type capturingReporter struct {
	called bool
	err    error
	tags   map[string]string
}

func (r *capturingReporter) CaptureException(_ context.Context, err error, tags map[string]string) {
	r.called = true
	r.err = err
	r.tags = tags
}
