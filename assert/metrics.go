package assert

import (
	"context"
	"fmt"
	"sync"
	"time"

	constant "github.com/LerianStudio/lib-assert/assert/constants"
	"github.com/LerianStudio/lib-assert/assert/opentelemetry/metrics"
)

// AssertionMetrics provides assertion-related metrics using OpenTelemetry.
// It wraps the library's MetricsFactory for consistent metric handling.
type AssertionMetrics struct {
	factory *metrics.MetricsFactory
}

var (
	assertionMetricsInstance *AssertionMetrics
	assertionMetricsMu       sync.RWMutex
)

// InitAssertionMetrics initializes assertion metrics with the provided MetricsFactory.
// This should be called once during application startup after telemetry is initialized.
// It is safe to call multiple times; subsequent calls are no-ops.
func InitAssertionMetrics(factory *metrics.MetricsFactory) {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	if factory == nil {
		return
	}

	if assertionMetricsInstance != nil {
		return
	}

	assertionMetricsInstance = &AssertionMetrics{factory: factory}
}

// GetAssertionMetrics returns the singleton AssertionMetrics instance.
// Returns nil if InitAssertionMetrics has not been called.
func GetAssertionMetrics() *AssertionMetrics {
	assertionMetricsMu.RLock()
	defer assertionMetricsMu.RUnlock()

	return assertionMetricsInstance
}

// ResetAssertionMetrics clears the assertion metrics singleton (useful for tests).
func ResetAssertionMetrics() {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	assertionMetricsInstance = nil
}

// RecordAssertionFailed increments the assertion_failed_total counter with labels.
// If metrics are not initialized, this is a no-op.
func (am *AssertionMetrics) RecordAssertionFailed(
	ctx context.Context,
	component, operation, assertion string,
) {
	if am == nil || am.factory == nil {
		return
	}

	counter, err := am.factory.Counter(metrics.MetricAssertionFailed)
	if err != nil {
		logAssertion(nil, fmt.Sprintf("failed to create assertion metric counter: %v", err))
		return
	}

	err = counter.
		WithLabels(map[string]string{
			"component": constant.SanitizeMetricLabel(component),
			"operation": constant.SanitizeMetricLabel(operation),
			"assertion": constant.SanitizeMetricLabel(assertion),
		}).
		AddOne(ctx)
	if err != nil {
		logAssertion(nil, fmt.Sprintf("failed to record assertion metric: %v", err))
		return
	}
}

// RecordHandlerInvocation counts a handler consultation and, for real handler
// calls, records its duration in microseconds. If metrics are not
// initialized, this is a no-op.
func (am *AssertionMetrics) RecordHandlerInvocation(ctx context.Context, result string, elapsedUs int64) {
	if am == nil || am.factory == nil {
		return
	}

	labels := map[string]string{"result": constant.SanitizeMetricLabel(result)}

	counter, err := am.factory.Counter(metrics.MetricHandlerInvocations)
	if err != nil {
		logAssertion(nil, fmt.Sprintf("failed to create handler metric counter: %v", err))
		return
	}

	if err := counter.WithLabels(labels).AddOne(ctx); err != nil {
		logAssertion(nil, fmt.Sprintf("failed to record handler metric: %v", err))
		return
	}

	if result == constant.HandlerResultDefault {
		return
	}

	histogram, err := am.factory.Histogram(metrics.MetricHandlerDuration)
	if err != nil {
		logAssertion(nil, fmt.Sprintf("failed to create handler duration histogram: %v", err))
		return
	}

	if err := histogram.WithLabels(labels).Record(ctx, elapsedUs); err != nil {
		logAssertion(nil, fmt.Sprintf("failed to record handler duration: %v", err))
		return
	}
}

func recordAssertionMetric(ctx context.Context, component, operation, assertion string) {
	am := GetAssertionMetrics()
	if am != nil {
		am.RecordAssertionFailed(ctx, component, operation, assertion)
	}
}

func recordHandlerInvocation(ctx context.Context, result string, elapsedUs int64) {
	am := GetAssertionMetrics()
	if am != nil {
		am.RecordHandlerInvocation(ctx, result, elapsedUs)
	}
}

// timeHandler calls handler and reports its result with the elapsed wall
// time in microseconds. Millisecond resolution would round every
// well-behaved handler down to zero.
func timeHandler(handler Handler, expression, file string, line int, function string) (int, int64) {
	start := time.Now()
	status := handler(expression, file, line, function)

	return status, time.Since(start).Microseconds()
}
