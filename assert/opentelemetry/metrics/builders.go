package metrics

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	// ErrNilCounter reports an Add on a builder without an instrument.
	ErrNilCounter = errors.New("counter instrument is nil")
	// ErrNilHistogram reports a Record on a builder without an instrument.
	ErrNilHistogram = errors.New("histogram instrument is nil")
)

// mergeAttrs combines base and extra into a fresh slice. Builders fork
// instead of mutating so several call sites can share one instrument.
func mergeAttrs(base, extra []attribute.KeyValue) []attribute.KeyValue {
	merged := make([]attribute.KeyValue, 0, len(base)+len(extra))
	merged = append(merged, base...)
	merged = append(merged, extra...)

	return merged
}

func labelAttrs(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for key, value := range labels {
		attrs = append(attrs, attribute.String(key, value))
	}

	return attrs
}

// CounterBuilder accumulates attributes for a counter increment.
type CounterBuilder struct {
	counter metric.Int64Counter
	attrs   []attribute.KeyValue
}

// WithLabels forks the builder with string labels added as attributes.
func (c *CounterBuilder) WithLabels(labels map[string]string) *CounterBuilder {
	return &CounterBuilder{counter: c.counter, attrs: mergeAttrs(c.attrs, labelAttrs(labels))}
}

// WithAttributes forks the builder with the given attributes added.
func (c *CounterBuilder) WithAttributes(attrs ...attribute.KeyValue) *CounterBuilder {
	return &CounterBuilder{counter: c.counter, attrs: mergeAttrs(c.attrs, attrs)}
}

// Add increments the counter by value with the accumulated attributes.
func (c *CounterBuilder) Add(ctx context.Context, value int64) error {
	if c.counter == nil {
		return ErrNilCounter
	}

	c.counter.Add(ctx, value, metric.WithAttributes(c.attrs...))

	return nil
}

// AddOne increments the counter by one.
func (c *CounterBuilder) AddOne(ctx context.Context) error {
	return c.Add(ctx, 1)
}

// HistogramBuilder accumulates attributes for a histogram observation.
type HistogramBuilder struct {
	histogram metric.Int64Histogram
	attrs     []attribute.KeyValue
}

// WithLabels forks the builder with string labels added as attributes.
func (h *HistogramBuilder) WithLabels(labels map[string]string) *HistogramBuilder {
	return &HistogramBuilder{histogram: h.histogram, attrs: mergeAttrs(h.attrs, labelAttrs(labels))}
}

// WithAttributes forks the builder with the given attributes added.
func (h *HistogramBuilder) WithAttributes(attrs ...attribute.KeyValue) *HistogramBuilder {
	return &HistogramBuilder{histogram: h.histogram, attrs: mergeAttrs(h.attrs, attrs)}
}

// Record observes value with the accumulated attributes.
func (h *HistogramBuilder) Record(ctx context.Context, value int64) error {
	if h.histogram == nil {
		return ErrNilHistogram
	}

	h.histogram.Record(ctx, value, metric.WithAttributes(h.attrs...))

	return nil
}
