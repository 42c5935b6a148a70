// Package linecursor reads a text log file by line number while another
// process may still be appending to it.
//
// A Reader remembers how many lines it has produced since the file was last
// opened. Reads continue from that cursor, so polling Read picks up only the
// lines written since the previous call. Range requests accept 1-based
// absolute line numbers or end-relative indices (-1 is the last line) and are
// resolved against the cursor: going backwards is served by reopening the file
// and rescanning from the start, never by seeking to a cached offset.
//
// Running out of lines is not an error. Only I/O failures and malformed range
// requests (ErrInvalidRange) are reported. A Reader must not be shared between
// goroutines.
package linecursor
