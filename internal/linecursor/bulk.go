package linecursor

import (
	"errors"
	"io"
	"strings"
)

// Read returns every line available past the cursor. Calling it again
// without new writes to the file returns an empty string.
func (r *Reader) Read() (string, error) {
	return r.readLines(-1)
}

// ReadNLines returns at most n lines past the cursor.
func (r *Reader) ReadNLines(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	return r.readLines(n)
}

// readLines concatenates up to limit lines; a negative limit reads to the
// current end of file.
func (r *Reader) readLines(limit int) (string, error) {
	var out strings.Builder
	for read := 0; limit < 0 || read < limit; read++ {
		line, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out.String(), err
		}
		out.Write(line)
	}
	return out.String(), nil
}

// SkipNLines discards up to n lines and reports how many were available.
func (r *Reader) SkipNLines(n int) (int, error) {
	skipped := 0
	for skipped < n {
		_, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return skipped, err
		}
		skipped++
	}
	return skipped, nil
}

// SkipToEnd discards every available line. Afterwards CurrentLine reports the
// number of lines in the file as opened.
func (r *Reader) SkipToEnd() error {
	for {
		_, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// skipTo advances the cursor until line is the last line produced, or the
// file runs out.
func (r *Reader) skipTo(line int) error {
	if line <= r.current {
		return nil
	}
	_, err := r.SkipNLines(line - r.current)
	return err
}
