// Package log defines the logging interface and typed logging fields used by
// the assertion pipeline.
//
// Adapters (such as the zap package) implement Logger so embedders can keep
// assertion logging consistent with their application backend.
package log
