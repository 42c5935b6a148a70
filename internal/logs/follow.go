package logs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"logcursor/internal/linecursor"
	"logcursor/internal/logging"
)

const defaultInterval = time.Second

// FollowOptions controls polling for appended lines.
type FollowOptions struct {
	// Interval is the cadence between reads while waiting or following.
	Interval time.Duration
	// Wait bounds how long Poll keeps checking when nothing new is available.
	// Zero returns immediately.
	Wait   time.Duration
	Reopen ReopenPolicy
	Logger *slog.Logger
}

func (o FollowOptions) normalized() FollowOptions {
	if o.Interval <= 0 {
		o.Interval = defaultInterval
	}
	if o.Wait < 0 {
		o.Wait = 0
	}
	o.Logger = logging.NewComponentLogger(o.Logger, "follow")
	return o
}

// PollResult is the outcome of a single Poll.
type PollResult struct {
	Text string
	// Lines is the number of lines in Text.
	Lines int
	// FromLine is the 1-based number of the first line of Text in the file it
	// was read from. Zero when Text is empty.
	FromLine int
	// Reopened reports that the file was rotated or truncated and the reader
	// now points at the start of the current file.
	Reopened bool
}

func (p *PollResult) add(text string, from, lines int) {
	if lines == 0 {
		return
	}
	if p.Lines == 0 {
		p.FromLine = from
	}
	p.Text += text
	p.Lines += lines
}

// Poll returns everything appended since the reader's last read. When nothing
// is new and opts.Wait is positive it keeps checking until lines appear, the
// wait elapses, or ctx is cancelled.
func Poll(ctx context.Context, r *linecursor.Reader, opts FollowOptions) (PollResult, error) {
	opts = opts.normalized()
	deadline := time.Now().Add(opts.Wait)

	var ticker *time.Ticker
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	var result PollResult
	for {
		if err := pollOnce(r, opts, &result); err != nil {
			return result, err
		}
		if result.Lines > 0 || !time.Now().Before(deadline) {
			return result, nil
		}

		if ticker == nil {
			ticker = time.NewTicker(opts.Interval)
		}
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-ticker.C:
		}
	}
}

func pollOnce(r *linecursor.Reader, opts FollowOptions, result *PollResult) error {
	change, err := opts.Reopen.detect(r)
	if err != nil {
		return err
	}
	if change != changeNone {
		if err := handleChange(r, opts.Logger, change, result); err != nil {
			return err
		}
	}
	return readAppended(r, result)
}

func readAppended(r *linecursor.Reader, result *PollResult) error {
	from := r.CurrentLine() + 1
	text, err := r.Read()
	result.add(text, from, r.CurrentLine()-from+1)
	if err != nil {
		return fmt.Errorf("poll %s: %w", r.Path(), err)
	}
	return nil
}

func handleChange(r *linecursor.Reader, logger *slog.Logger, change fileChange, result *PollResult) error {
	if change == changeRotated {
		// The old handle still sees the rotated file; collect what the writer
		// appended before rotation.
		if err := readAppended(r, result); err != nil {
			return err
		}
	}
	previous := r.CurrentLine()
	if err := r.Reopen(); err != nil {
		return fmt.Errorf("reopen after %s: %w", change, err)
	}
	result.Reopened = true
	logger.Info("log file replaced, reading from start",
		logging.String(logging.FieldPath, r.Path()),
		logging.String(logging.FieldReason, change.String()),
		logging.Int("previous_line", previous),
	)
	return nil
}

// Follow polls r every opts.Interval and hands non-empty results to emit until
// ctx is cancelled. Cancellation is a clean stop and returns nil; an emit error
// stops the loop and is returned.
func Follow(ctx context.Context, r *linecursor.Reader, opts FollowOptions, emit func(PollResult) error) error {
	opts = opts.normalized()
	pollOpts := opts
	pollOpts.Wait = 0

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	opts.Logger.Debug("following log",
		logging.String(logging.FieldPath, r.Path()),
		logging.Int(logging.FieldLine, r.CurrentLine()),
		logging.Duration("interval", opts.Interval),
	)
	for {
		result, err := Poll(ctx, r, pollOpts)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if result.Lines > 0 || result.Reopened {
			opts.Logger.Debug("lines appended",
				logging.Int(logging.FieldLines, result.Lines),
				logging.Int(logging.FieldLine, result.FromLine),
			)
			if err := emit(result); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// SplitLines breaks poll text into lines without their terminators.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
