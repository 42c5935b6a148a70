package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"logcursor/internal/linecursor"
)

func newReadCommand(ctx *commandContext) *cobra.Command {
	var rangeFlag string
	var from, to, skip int
	var force, number bool

	cmd := &cobra.Command{
		Use:   "read [path]",
		Short: "Print a range of lines",
		Long: `Print lines FROM through TO, inclusive.

Positive bounds are 1-based line numbers. Negative bounds count from the end
of the file: -1 is the last line, and two negative bounds select the last
-FROM+TO+1 lines. A start of 0 starts at the last line read; with an end of -1
it prints everything after the cursor.
Without a range the whole file is printed.

Examples:
  logcursor read app.log --range 2:5
  logcursor read app.log --range -3:-1
  logcursor read app.log --from 10 --to -2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			rangeSet := flags.Changed("range")
			boundsSet := flags.Changed("from") || flags.Changed("to")
			if rangeSet && boundsSet {
				return errors.New("use either --range or --from/--to, not both")
			}
			if rangeSet {
				var err error
				if from, to, err = linecursor.ParseRange(rangeFlag); err != nil {
					return err
				}
			}

			r, err := ctx.openReader(args)
			if err != nil {
				return err
			}
			defer r.Close()
			if err := skipLines(r, skip); err != nil {
				return err
			}

			if !rangeSet && !boundsSet {
				start := r.CurrentLine() + 1
				text, err := r.Read()
				if err != nil {
					return err
				}
				return writeText(cmd.OutOrStdout(), text, start, number)
			}

			text, err := r.ReadRange(from, to, force)
			if err != nil {
				return err
			}
			return writeText(cmd.OutOrStdout(), text, firstLine(r, text), number)
		},
	}

	cmd.Flags().StringVarP(&rangeFlag, "range", "r", "", "Line range as FROM:TO (e.g. 2:5, -3:-1, 4:)")
	cmd.Flags().IntVar(&from, "from", 1, "First line (negative counts from the end, 0 starts at the last line read)")
	cmd.Flags().IntVar(&to, "to", -1, "Last line (negative counts from the end)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reopen the file when the range starts behind the cursor")
	cmd.Flags().IntVar(&skip, "skip", 0, "Advance the cursor by N lines before reading")
	cmd.Flags().BoolVarP(&number, "number", "N", false, "Prefix lines with their line numbers")
	return cmd
}

func newHeadCommand(ctx *commandContext) *cobra.Command {
	var lines, skip int
	var number bool

	cmd := &cobra.Command{
		Use:   "head [path]",
		Short: "Print the next N lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.openReader(args)
			if err != nil {
				return err
			}
			defer r.Close()
			if err := skipLines(r, skip); err != nil {
				return err
			}
			start := r.CurrentLine() + 1
			text, err := r.ReadNLines(lines)
			if err != nil {
				return err
			}
			return writeText(cmd.OutOrStdout(), text, start, number)
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of lines to print")
	cmd.Flags().IntVar(&skip, "skip", 0, "Advance the cursor by N lines before reading")
	cmd.Flags().BoolVarP(&number, "number", "N", false, "Prefix lines with their line numbers")
	return cmd
}

func newLastCommand(ctx *commandContext) *cobra.Command {
	var lines, skip int
	var force, number bool

	cmd := &cobra.Command{
		Use:   "last [path]",
		Short: "Print the last N lines",
		Long: `Print the last N lines of the file.

With --skip the cursor is advanced first; the result then only covers lines
after the cursor unless --force is given, which rereads the file to return the
true last N lines.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.openReader(args)
			if err != nil {
				return err
			}
			defer r.Close()
			if err := skipLines(r, skip); err != nil {
				return err
			}
			text, err := r.ReadLastNLines(lines, force)
			if err != nil {
				return err
			}
			return writeText(cmd.OutOrStdout(), text, r.CurrentLine()-countLines(text)+1, number)
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of lines to print")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reread the file when fewer than N lines follow the cursor")
	cmd.Flags().IntVar(&skip, "skip", 0, "Advance the cursor by N lines before reading")
	cmd.Flags().BoolVarP(&number, "number", "N", false, "Prefix lines with their line numbers")
	return cmd
}

func newNextCommand(ctx *commandContext) *cobra.Command {
	var skip int
	var number bool

	cmd := &cobra.Command{
		Use:   "next [path]",
		Short: "Print the line after the cursor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.openReader(args)
			if err != nil {
				return err
			}
			defer r.Close()
			if err := skipLines(r, skip); err != nil {
				return err
			}
			line, ok, err := r.NextLine()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "No lines available")
				return nil
			}
			return writeText(cmd.OutOrStdout(), line, r.CurrentLine(), number)
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Advance the cursor by N lines first")
	cmd.Flags().BoolVarP(&number, "number", "N", false, "Prefix the line with its line number")
	return cmd
}

func newCountCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "count [path]",
		Short: "Print the number of lines in the file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.openReader(args)
			if err != nil {
				return err
			}
			defer r.Close()
			if err := r.SkipToEnd(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.CurrentLine())
			return nil
		},
	}
}
