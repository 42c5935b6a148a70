package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LogName is the file name used by WriteLines and WriteNumbered.
const LogName = "test.log"

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteLines creates dir/test.log holding each line terminated by a newline
// and returns its path. No lines produces an empty file.
func WriteLines(t testing.TB, dir string, lines ...string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, LogName)
	if err := os.WriteFile(path, []byte(joinLines(lines)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteNumbered creates dir/test.log with lines L1 through Ln.
func WriteNumbered(t testing.TB, dir string, n int) string {
	t.Helper()
	return WriteLines(t, dir, Numbered(1, n)...)
}

// Numbered returns the labels Lfrom through Lto.
func Numbered(from, to int) []string {
	var lines []string
	for i := from; i <= to; i++ {
		lines = append(lines, fmt.Sprintf("L%d", i))
	}
	return lines
}

// AppendLines appends newline-terminated lines to an existing file.
func AppendLines(t testing.TB, path string, lines ...string) {
	t.Helper()
	AppendRaw(t, path, joinLines(lines))
}

// AppendRaw appends data to path without adding a terminator.
func AppendRaw(t testing.TB, path, data string) {
	t.Helper()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		t.Fatalf("open %s for append: %v", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(data); err != nil {
		t.Fatalf("append %s: %v", path, err)
	}
}

// Truncate empties path in place, keeping the same inode.
func Truncate(t testing.TB, path string) {
	t.Helper()
	if err := os.Truncate(path, 0); err != nil {
		t.Fatalf("truncate %s: %v", path, err)
	}
}

// Rotate renames path aside and creates a fresh file at path holding lines.
// It returns the rotated file's new location.
func Rotate(t testing.TB, path string, lines ...string) string {
	t.Helper()

	rotated := path + ".1"
	if err := os.Rename(path, rotated); err != nil {
		t.Fatalf("rotate %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(joinLines(lines)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return rotated
}
