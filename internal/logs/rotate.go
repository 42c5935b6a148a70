package logs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"logcursor/internal/linecursor"
)

// ReopenPolicy decides whether the follow driver reopens a replaced file.
type ReopenPolicy int

const (
	// ReopenNever keeps reading the originally opened file.
	ReopenNever ReopenPolicy = iota
	// ReopenOnRotate reopens when the path names a different file or the
	// file shrank below the read position.
	ReopenOnRotate
)

type fileChange int

const (
	changeNone fileChange = iota
	changeRotated
	changeTruncated
)

func (c fileChange) String() string {
	switch c {
	case changeRotated:
		return "rotated"
	case changeTruncated:
		return "truncated"
	default:
		return "unchanged"
	}
}

func (p ReopenPolicy) detect(r *linecursor.Reader) (fileChange, error) {
	if p != ReopenOnRotate {
		return changeNone, nil
	}
	open, err := r.Stat()
	if err != nil {
		return changeNone, err
	}
	onDisk, err := os.Stat(r.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Moved away and not yet recreated; keep draining the old file.
			return changeNone, nil
		}
		return changeNone, fmt.Errorf("stat log: %w", err)
	}
	if !os.SameFile(open, onDisk) {
		return changeRotated, nil
	}
	if onDisk.Size() < r.Offset() {
		return changeTruncated, nil
	}
	return changeNone, nil
}
