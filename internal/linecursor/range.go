package linecursor

import (
	"errors"
	"fmt"
)

// ErrInvalidRange reports a from/to combination that cannot be resolved.
var ErrInvalidRange = errors.New("invalid range")

func invalidRange(from, to int, reason string) error {
	return fmt.Errorf("%w %d:%d: %s", ErrInvalidRange, from, to, reason)
}

// ReadRange returns lines from through to, inclusive.
//
// Positive bounds are 1-based line numbers. Non-positive bounds count from
// the end of the file: -1 is the last line, -2 the one before it. When both
// bounds are end-relative the result is the last -from+to+1 lines. A from of
// 0 starts at the last line produced; together with to == -1 it reads
// everything that is new.
//
// On a six line file:
//
//	ReadRange(1, -1, true)  // lines 1-6
//	ReadRange(4, -1, true)  // lines 4, 5, 6
//	ReadRange(4, -2, true)  // lines 4, 5
//	ReadRange(-3, -1, true) // lines 4, 5, 6
//	ReadRange(-1, -1, true) // line 6
//	ReadRange(-3, -2, true) // lines 5, 6
//
// A range that starts before the cursor is only served when force is set,
// by reopening the file. Ranges past the end of the file yield fewer lines,
// possibly none. Malformed ranges return an error wrapping ErrInvalidRange.
func (r *Reader) ReadRange(from, to int, force bool) (string, error) {
	if from == 0 {
		if to <= 0 {
			if to != -1 {
				return "", invalidRange(from, to, "continuing reads only support -1 as the end")
			}
			return r.Read()
		}
		// The last line produced counts as the start, so it is behind the
		// cursor unless nothing has been read yet.
		from = max(r.current, 1)
	}
	if to <= 0 {
		return r.readRangeFromEnd(from, to, force)
	}
	if from < 0 {
		return "", invalidRange(from, to, "an end-relative start needs an end-relative end")
	}
	if from > to {
		return "", invalidRange(from, to, "start is after end")
	}

	start := from - 1
	if start < r.current {
		if !force {
			return "", nil
		}
		if err := r.reopen("range start behind cursor"); err != nil {
			return "", err
		}
	}
	if err := r.skipTo(start); err != nil {
		return "", err
	}
	if r.current < start {
		return "", nil
	}
	return r.ReadNLines(to - start)
}

func (r *Reader) readRangeFromEnd(from, to int, force bool) (string, error) {
	if to == 0 {
		return "", invalidRange(from, to, "end 0 is not a line; use -1 for the last line")
	}
	if from < 0 {
		if -from+to+1 <= 0 {
			return "", invalidRange(from, to, "start is after end")
		}
		return r.ReadLastNLines(-from+to+1, force)
	}

	start := from - 1
	if to == -1 {
		if start < r.current {
			if err := r.reopen("range start behind cursor"); err != nil {
				return "", err
			}
		}
		if err := r.skipTo(start); err != nil {
			return "", err
		}
		if r.current < start {
			return "", nil
		}
		return r.Read()
	}

	// The end is relative, so count the lines first.
	if err := r.SkipToEnd(); err != nil {
		return "", err
	}
	end := r.current + to
	count := end - from + 2
	if count == 0 {
		return "", nil
	}
	if count < 0 {
		return "", invalidRange(from, to, fmt.Sprintf("start is past the end (file has %d lines)", r.current))
	}
	if err := r.reopen("end-relative range"); err != nil {
		return "", err
	}
	if err := r.skipTo(start); err != nil {
		return "", err
	}
	return r.ReadNLines(count)
}
