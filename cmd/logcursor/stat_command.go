package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type statReport struct {
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Lines    int       `json:"lines"`
	Modified time.Time `json:"modified"`
	Mode     string    `json:"mode"`
}

func (s statReport) rows() [][]string {
	return [][]string{
		{fieldLabel("path"), s.Path},
		{fieldLabel("size"), fmt.Sprintf("%s (%s bytes)", humanize.IBytes(uint64(s.Size)), humanize.Comma(s.Size))},
		{fieldLabel("lines"), humanize.Comma(int64(s.Lines))},
		{fieldLabel("last_modified"), fmt.Sprintf("%s (%s)", s.Modified.Format(time.RFC3339), humanize.Time(s.Modified))},
		{fieldLabel("mode"), s.Mode},
	}
}

func newStatCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stat [path]",
		Short: "Show size and line count of a log file",
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
			info, err := r.Stat()
			if err != nil {
				return err
			}
			report := statReport{
				Path:     r.Path(),
				Size:     info.Size(),
				Lines:    r.CurrentLine(),
				Modified: info.ModTime(),
				Mode:     info.Mode().String(),
			}
			if asJSON {
				return writeJSON(cmd, report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, report.rows(), []columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
