// Package logger sets up the application's structured logging.
//
// It builds on the standard library's log/slog: JSON output, a
// configurable level, and helpers for carrying a logger through a
// context so request handlers log with their trace ID attached.
package logger
