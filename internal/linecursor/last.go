package linecursor

import (
	"errors"
	"io"
	"strings"

	"logcursor/internal/logging"
)

// ringInitialCap bounds the up-front allocation for large n.
const ringInitialCap = 4096

// ReadLastNLines returns the last n lines between the cursor and the current
// end of file.
//
// Without force the result never includes lines produced before the call, so
// it may hold fewer than n lines. With force, when fewer than n lines remain
// ahead of a cursor that had already moved, the file is reopened once and the
// true last n lines of the file are returned.
func (r *Reader) ReadLastNLines(n int, force bool) (string, error) {
	if n <= 0 {
		return "", nil
	}
	start := r.current
	window, seen, err := r.scanLast(n)
	if err != nil {
		return "", err
	}
	if seen >= n || !force || start == 0 {
		return strings.Join(window, ""), nil
	}

	r.logger.Debug("rewinding for last lines",
		logging.Int("want", n),
		logging.Int("available", seen),
		logging.Int("cursor", start),
	)
	if err := r.reopen("last lines behind cursor"); err != nil {
		return "", err
	}
	return r.ReadLastNLines(n, false)
}

// scanLast reads to the current end of file keeping the most recent n lines,
// oldest first. seen counts every line read.
func (r *Reader) scanLast(n int) ([]string, int, error) {
	ring := make([]string, 0, min(n, ringInitialCap))
	idx := 0
	seen := 0
	for {
		line, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, seen, err
		}
		seen++
		if len(ring) < n {
			ring = append(ring, string(line))
			continue
		}
		ring[idx] = string(line)
		idx = (idx + 1) % n
	}

	if len(ring) < n {
		return ring, seen, nil
	}
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = ring[(idx+i)%n]
	}
	return lines, seen, nil
}
