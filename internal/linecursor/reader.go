package linecursor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"logcursor/internal/logging"
)

const (
	defaultBufferSize  = 64 * 1024
	scratchInitialSize = 1024
)

// Reader produces lines from a file and tracks how many it has produced since
// the file was last opened.
type Reader struct {
	path    string
	file    *os.File
	buf     *bufio.Reader
	current int
	offset  int64
	scratch []byte

	bufferSize int
	logger     *slog.Logger
}

// Option customizes a Reader.
type Option func(*Reader)

// WithLogger routes reopen diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logging.NewComponentLogger(logger, "linecursor")
		}
	}
}

// WithBufferSize sets the read buffer size. Values <= 0 keep the default.
func WithBufferSize(size int) Option {
	return func(r *Reader) {
		if size > 0 {
			r.bufferSize = size
		}
	}
}

// Open binds a Reader to path. The file must be readable now; it may be
// empty or grow later.
func Open(path string, opts ...Option) (*Reader, error) {
	r := &Reader{
		path:       path,
		scratch:    make([]byte, 0, scratchInitialSize),
		bufferSize: defaultBufferSize,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	r.file = file
	r.buf = bufio.NewReaderSize(file, r.bufferSize)
	return r, nil
}

// Path returns the path the Reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// CurrentLine returns the number of lines produced since the file was last
// opened. The next line produced is CurrentLine()+1.
func (r *Reader) CurrentLine() int {
	return r.current
}

// Offset returns the number of bytes produced since the file was last opened.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Stat describes the currently open handle, which may differ from the file
// now found at Path after a rotation.
func (r *Reader) Stat() (os.FileInfo, error) {
	info, err := r.file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat open log: %w", err)
	}
	return info, nil
}

// Close releases the file handle.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.buf = nil
	return err
}

// Reopen replaces the handle with a fresh one opened from Path and resets the
// cursor to the start of the file. On failure the old handle stays in use.
func (r *Reader) Reopen() error {
	return r.reopen("requested")
}

func (r *Reader) reopen(reason string) error {
	file, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("reopen log: %w", err)
	}
	previous := r.current
	if r.file != nil {
		_ = r.file.Close()
	}
	r.file = file
	if r.buf == nil {
		r.buf = bufio.NewReaderSize(file, r.bufferSize)
	} else {
		r.buf.Reset(file)
	}
	r.current = 0
	r.offset = 0
	r.logger.Debug("log reopened",
		logging.String(logging.FieldPath, r.path),
		logging.String(logging.FieldReason, reason),
		logging.Int("previous_line", previous),
	)
	return nil
}

// Next produces the next line, including its trailing newline. A final
// fragment without a newline is returned as a line of its own. When no more
// data is available Next returns io.EOF and the cursor does not move; calling
// again after the file grows picks up the new data.
//
// The returned slice is only valid until the next call on the Reader.
func (r *Reader) Next() ([]byte, error) {
	if r.buf == nil {
		return nil, fmt.Errorf("read %s: %w", r.path, os.ErrClosed)
	}
	r.scratch = r.scratch[:0]
	for {
		chunk, err := r.buf.ReadSlice('\n')
		r.scratch = append(r.scratch, chunk...)
		if err == nil {
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(r.scratch) == 0 {
				return nil, io.EOF
			}
			break
		}
		return nil, fmt.Errorf("read line %d of %s: %w", r.current+1, r.path, err)
	}
	r.current++
	r.offset += int64(len(r.scratch))
	return r.scratch, nil
}

// NextLine returns a copy of the next line. ok is false when no line is
// currently available.
func (r *Reader) NextLine() (line string, ok bool, err error) {
	b, err := r.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(b), true, nil
}

// Lines iterates over the lines available right now. The yielded slices are
// only valid for the current iteration step. Iteration ends at the current
// end of file or after the first error.
func (r *Reader) Lines() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			b, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(b, err) || err != nil {
				return
			}
		}
	}
}
