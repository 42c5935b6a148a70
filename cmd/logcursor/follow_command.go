package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"logcursor/internal/linecursor"
	"logcursor/internal/logging"
	"logcursor/internal/logs"
)

func newFollowCommand(ctx *commandContext) *cobra.Command {
	var interval, wait time.Duration
	var lines int
	var reopen, number, shared bool

	cmd := &cobra.Command{
		Use:   "follow [path]",
		Short: "Print the last lines, then new lines as they are written",
		Long: `Print the last N lines, then keep printing lines as they are appended.

With --wait, follow stops once no new line has arrived for that long.
Otherwise it runs until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("interval") {
				interval = cfg.FollowInterval()
			}
			if !flags.Changed("wait") {
				wait = cfg.FollowWait()
			}
			if !flags.Changed("reopen-on-rotate") {
				reopen = cfg.Follow.ReopenOnRotate
			}
			if interval <= 0 {
				return errors.New("--interval must be positive")
			}

			path, err := ctx.logPath(args)
			if err != nil {
				return err
			}

			if cfg.Follow.Exclusive && !shared {
				lock, err := logs.AcquireFollowLock(cfg.Paths.StateDir, path)
				if err != nil {
					return err
				}
				defer lock.Release()
			}

			sessionID := uuid.NewString()
			logger, err := ctx.sessionLogger(sessionID)
			if err != nil {
				return err
			}
			r, err := ctx.openReaderAt(path, logger)
			if err != nil {
				return err
			}
			defer r.Close()

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			cliLogger := logging.NewComponentLogger(logger, "cli").With(logging.String(logging.FieldPath, path))

			out := cmd.OutOrStdout()
			text, err := r.ReadLastNLines(lines, true)
			if err != nil {
				return err
			}
			if lines <= 0 {
				// Start from the end without printing backlog.
				if err := r.SkipToEnd(); err != nil {
					return err
				}
			}
			if err := writeText(out, text, r.CurrentLine()-countLines(text)+1, number); err != nil {
				return err
			}

			policy := logs.ReopenNever
			if reopen {
				policy = logs.ReopenOnRotate
			}
			opts := logs.FollowOptions{
				Interval: interval,
				Wait:     wait,
				Reopen:   policy,
				Logger:   logger,
			}
			cliLogger.Info("follow started",
				logging.Int(logging.FieldLine, r.CurrentLine()),
				logging.Duration("interval", interval),
				logging.Bool("reopen_on_rotate", reopen),
			)

			emit := func(res logs.PollResult) error {
				return writeText(out, res.Text, res.FromLine, number)
			}
			if wait > 0 {
				err = followUntilIdle(runCtx, r, opts, emit)
			} else {
				err = logs.Follow(runCtx, r, opts, emit)
			}
			cliLogger.Info("follow stopped", logging.Int(logging.FieldLine, r.CurrentLine()))
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Poll interval (defaults to follow.interval_ms)")
	cmd.Flags().DurationVar(&wait, "wait", 0, "Stop after this long without new lines (defaults to follow.wait_ms; 0 runs until interrupted)")
	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of existing lines to print first")
	cmd.Flags().BoolVar(&reopen, "reopen-on-rotate", false, "Reopen the file when it is rotated or truncated")
	cmd.Flags().BoolVar(&shared, "shared", false, "Do not take the single-follower lock")
	cmd.Flags().BoolVarP(&number, "number", "N", false, "Prefix lines with their line numbers")
	return cmd
}

// followUntilIdle polls with opts.Wait as the idle limit and returns once a
// poll comes back empty.
func followUntilIdle(ctx context.Context, r *linecursor.Reader, opts logs.FollowOptions, emit func(logs.PollResult) error) error {
	for {
		res, err := logs.Poll(ctx, r, opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if res.Lines == 0 {
			return nil
		}
		if err := emit(res); err != nil {
			return err
		}
	}
}
