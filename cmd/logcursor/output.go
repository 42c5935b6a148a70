package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"logcursor/internal/linecursor"
)

const (
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

// countLines counts lines the way the reader does: an unterminated final
// fragment is a line.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// firstLine returns the number of the first line in text. Every read leaves
// the cursor just after the last line it produced.
func firstLine(r *linecursor.Reader, text string) int {
	n := countLines(text)
	if n == 0 {
		return 0
	}
	return r.CurrentLine() - n + 1
}

// writeText copies text to w. With number set each line gets a line number
// gutter starting at first.
func writeText(w io.Writer, text string, first int, number bool) error {
	if !number || text == "" {
		_, err := io.WriteString(w, text)
		return err
	}
	color := shouldColorize(w)
	var b strings.Builder
	line := first
	for chunk := range strings.SplitAfterSeq(text, "\n") {
		if chunk == "" {
			continue
		}
		if color {
			b.WriteString(ansiDim)
		}
		fmt.Fprintf(&b, "%6d", line)
		if color {
			b.WriteString(ansiReset)
		}
		b.WriteString("  ")
		b.WriteString(chunk)
		line++
	}
	if !strings.HasSuffix(text, "\n") {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
