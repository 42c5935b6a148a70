// Package logs drives a linecursor.Reader over a file that keeps growing.
//
// Poll returns whatever was appended since the last read and can wait a
// bounded time for new lines. Follow repeats Poll on a ticker until its context
// is cancelled. With ReopenOnRotate the driver notices when the path is
// replaced or truncated and reopens explicitly; the reader itself never does.
// AcquireFollowLock keeps two followers from attaching to the same file.
package logs
