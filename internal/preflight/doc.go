// Package preflight checks that logcursor can do its job before it starts:
// source logs are readable regular files, the state directory used for
// follower locks is writable, and the optional diagnostic log can be written.
package preflight
