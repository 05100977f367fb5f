// Package runtime provides panic-recovery helpers, the production-mode switch,
// and the pluggable error reporter consumed by the assertion pipeline.
package runtime
