// Package metrics provides a thread-safe OpenTelemetry metrics factory with
// fluent builders for the instruments recorded by the assertion pipeline.
package metrics
