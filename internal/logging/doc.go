// Package logging assembles the structured slog loggers used across
// fuzzy-grouper.
//
// It centralizes level and format plumbing for the console and JSON
// handlers, provides standardized attribute helpers and field names, and
// exposes a no-op logger for tests and wiring code that cannot fail.
// Prefer these constructors over hand-rolled slog setup so every component
// emits log data with the same shape.
package logging
