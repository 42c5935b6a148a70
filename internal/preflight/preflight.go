package preflight

import (
	"logcursor/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the state directory, the optional diagnostic log file, and
// each source log in paths. Every source gets a permission check and, when
// that passes, a full line scan.
func RunAll(cfg *config.Config, paths ...string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir))

	if cfg.Logging.File != "" {
		results = append(results, CheckLogOutput("Diagnostic log", cfg.Logging.File))
	}

	for _, path := range paths {
		readable := CheckFileReadable("Source log", path)
		results = append(results, readable)
		if readable.Passed {
			results = append(results, CheckLineScan("Line scan", path, cfg.BufferSize()))
		}
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
