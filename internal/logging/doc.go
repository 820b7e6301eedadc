// Package logging assembles structured slog loggers used across subber.
//
// It centralizes level parsing, console/JSON format selection, and optional
// log-file routing under the configured log directory, and exposes typed
// attribute helpers so call sites stay consistent. A no-op logger is
// available for tests and wiring code that cannot fail.
package logging
