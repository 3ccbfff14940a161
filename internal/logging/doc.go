// Package logging provides structured logging utilities for loggrep.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "get-logs")
//	logger.Warn("failed to fetch logs",
//	    logging.Namespace("default"),
//	    logging.Pod("web-1"),
//	    logging.Container("app"))
//
// Sanitize hosts before logging:
//
//	logger.Debug("built REST config", logging.Host(restConfig.Host))
//
// API server URLs have IP addresses redacted to avoid leaking network
// topology into diagnostics that end up in reports or pastes.
package logging
