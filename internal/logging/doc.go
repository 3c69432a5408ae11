// Package logging assembles structured slog loggers used across the transfer
// components.
//
// It centralizes level and output plumbing for the console/JSON handlers and
// provides a no-op logger for tests and wiring code that cannot fail. Prefer
// these constructors over hand-rolled slog setup so every component emits data
// with the same shape.
package logging
