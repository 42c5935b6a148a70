// Package logging assembles the slog loggers used by logcursor.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// shared attribute keys so that reader, follow, and CLI diagnostics have the
// same shape. Diagnostics go to stderr by default; stdout is reserved for file
// content. A no-op logger is provided for tests and library callers that do
// not care about diagnostics.
package logging
