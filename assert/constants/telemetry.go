package constant

// TelemetrySDKName identifies this library in OTEL telemetry resource attributes.
const TelemetrySDKName = "lib-assert/opentelemetry"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
// Used by the assert and runtime packages for label sanitization.
const MaxMetricLabelLength = 64

// Telemetry attribute key prefixes.
const (
	// AttrPrefixAssertion is the prefix for assertion event attributes.
	AttrPrefixAssertion = "assertion."
	// AttrPrefixPanic is the prefix for panic event attributes.
	AttrPrefixPanic = "panic."
)

// Telemetry metric names.
const (
	// MetricAssertionFailedTotal is the counter metric for failed assertions.
	MetricAssertionFailedTotal = "assertion_failed_total"
	// MetricHandlerInvocationsTotal is the counter metric for assert handler invocations.
	MetricHandlerInvocationsTotal = "assert_handler_invocations_total"
	// MetricHandlerDurationUs is the histogram metric for assert handler call
	// duration. Microsecond resolution: handlers are expected to finish well
	// under a millisecond, so an integer-millisecond histogram would collapse
	// the whole expected range into the zero bucket.
	MetricHandlerDurationUs = "assert_handler_duration_us"
	// MetricPanicRecoveredTotal is the counter metric for recovered panics.
	MetricPanicRecoveredTotal = "panic_recovered_total"
)

// Telemetry event names.
const (
	// EventAssertionFailed is the span event name for assertion failures.
	EventAssertionFailed = "assertion.failed"
	// EventPanicRecovered is the span event name for recovered panics.
	EventPanicRecovered = "panic.recovered"
)

// Handler result labels used on MetricHandlerInvocationsTotal.
const (
	// HandlerResultContinue labels invocations whose handler asked to continue.
	HandlerResultContinue = "continue"
	// HandlerResultEscalate labels invocations whose handler asked to escalate.
	HandlerResultEscalate = "escalate"
	// HandlerResultDefault labels invocations that fell back to the unset-handler default.
	HandlerResultDefault = "default"
)

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
