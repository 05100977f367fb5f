// Package zap adapts go.uber.org/zap to the log.Logger interface used by the
// assertion pipeline, with trace correlation and an OTEL log bridge.
package zap
