// Package main hosts the logcursor CLI entrypoint and command graph.
//
// Each subcommand opens a line reader on one log file and maps onto a reader
// operation: read for ranges, head and last for counts from either end, next
// for a single line, script for several ranges against one cursor, and follow
// for streaming appended lines. Configuration is resolved lazily so config init
// works without an existing file. File content goes to stdout and diagnostics
// to stderr.
package main
