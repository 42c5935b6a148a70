package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"logcursor/internal/preflight"
)

var errPreflightFailed = errors.New("preflight checks failed")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path...]",
		Short: "Verify that log files and the state directory are usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			paths := args
			if len(paths) == 0 && cfg.Paths.DefaultLog != "" {
				paths = []string{cfg.Paths.DefaultLog}
			}

			results := preflight.RunAll(cfg, paths...)
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				status := "ok"
				if !r.Passed {
					status = "FAIL"
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
			if preflight.Failed(results) {
				return errPreflightFailed
			}
			return nil
		},
	}
}
