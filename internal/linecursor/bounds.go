package linecursor

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBound parses a single line bound such as "12" or "-3".
func ParseBound(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("line bound %q: not an integer", value)
	}
	return n, nil
}

// ParseRange parses FROM:TO range syntax into ReadRange bounds.
//
//	"2:5"   lines 2 through 5
//	"-3:-1" the last three lines
//	"4:"    line 4 to the end (4:-1)
//	":-1"   everything after the cursor (0:-1)
//	":"     same as ":-1"
//	"7"     line 7 only (7:7)
func ParseRange(value string) (from, to int, err error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, 0, fmt.Errorf("range is empty")
	}
	left, right, found := strings.Cut(trimmed, ":")
	if !found {
		n, err := ParseBound(left)
		if err != nil {
			return 0, 0, err
		}
		return n, n, nil
	}

	from, to = 0, -1
	if strings.TrimSpace(left) != "" {
		if from, err = ParseBound(left); err != nil {
			return 0, 0, err
		}
	}
	if strings.TrimSpace(right) != "" {
		if to, err = ParseBound(right); err != nil {
			return 0, 0, err
		}
	}
	return from, to, nil
}

// FormatRange renders bounds in the syntax accepted by ParseRange.
func FormatRange(from, to int) string {
	return strconv.Itoa(from) + ":" + strconv.Itoa(to)
}
