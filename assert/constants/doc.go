// Package constant centralizes telemetry names and attribute keys shared by
// the assert and runtime packages.
package constant
