package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logcursor/internal/linecursor"
	"logcursor/internal/logs"
)

type scriptStep struct {
	Range    string   `json:"range"`
	From     int      `json:"from"`
	To       int      `json:"to"`
	FromLine int      `json:"from_line,omitempty"`
	Lines    []string `json:"lines"`
	Cursor   int      `json:"cursor"`
	Error    string   `json:"error,omitempty"`
}

func newScriptCommand(ctx *commandContext) *cobra.Command {
	var force, asJSON, number bool

	cmd := &cobra.Command{
		Use:   "script [path] RANGE...",
		Short: "Apply several range reads in order on one reader",
		Long: `Apply range reads one after another on a single reader, so each read
starts from wherever the previous one left the cursor.

The first argument is taken as the log path when it names an existing file;
otherwise paths.default_log is used and every argument is a range. Invalid
ranges are reported in place and do not stop the script.

Put -- before the ranges when the first one starts with a minus sign.

Example:
  logcursor script app.log 2:5 1:4 10:14 8:-1 6:-2 9:-2
  logcursor script -- -3:-1 0:-1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathArgs, ranges := splitScriptArgs(args)
			if len(ranges) == 0 {
				return errors.New("at least one range is required")
			}

			r, err := ctx.openReader(pathArgs)
			if err != nil {
				return err
			}
			defer r.Close()

			steps := make([]scriptStep, 0, len(ranges))
			for _, rangeArg := range ranges {
				step, err := runScriptStep(r, rangeArg, force)
				if err != nil {
					return err
				}
				steps = append(steps, step)
				if !asJSON {
					if err := printScriptStep(cmd, step, number); err != nil {
						return err
					}
				}
			}
			if asJSON {
				return writeJSON(cmd, steps)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", true, "Reopen the file for ranges that start behind the cursor")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text sections")
	cmd.Flags().BoolVarP(&number, "number", "N", false, "Prefix lines with their line numbers")
	return cmd
}

func splitScriptArgs(args []string) ([]string, []string) {
	if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
		return args[:1], args[1:]
	}
	if _, _, err := linecursor.ParseRange(args[0]); err != nil {
		// Not a range either; let the reader report the missing file.
		return args[:1], args[1:]
	}
	return nil, args
}

// runScriptStep returns an error only for I/O failures; range problems are
// recorded on the step.
func runScriptStep(r *linecursor.Reader, rangeArg string, force bool) (scriptStep, error) {
	step := scriptStep{Range: rangeArg}
	from, to, err := linecursor.ParseRange(rangeArg)
	if err != nil {
		step.Error = err.Error()
		step.Cursor = r.CurrentLine()
		return step, nil
	}
	step.From, step.To = from, to
	step.Range = linecursor.FormatRange(from, to)

	text, err := r.ReadRange(from, to, force)
	step.Cursor = r.CurrentLine()
	if err != nil {
		if errors.Is(err, linecursor.ErrInvalidRange) {
			step.Error = err.Error()
			return step, nil
		}
		return step, err
	}
	step.Lines = logs.SplitLines(text)
	step.FromLine = firstLine(r, text)
	return step, nil
}

func printScriptStep(cmd *cobra.Command, step scriptStep, number bool) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== %s\n", step.Range)
	if step.Error != "" {
		fmt.Fprintf(out, "error: %s\n", step.Error)
		return nil
	}
	for i, line := range step.Lines {
		if err := writeText(out, line+"\n", step.FromLine+i, number); err != nil {
			return err
		}
	}
	return nil
}
