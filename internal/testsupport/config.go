package testsupport

import (
	"path/filepath"
	"testing"

	"logcursor/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp state directory per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Follow.IntervalMS = 10
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithDefaultLog points paths.default_log at a file under the config's temp
// directory, seeded with the given lines.
func WithDefaultLog(lines ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.DefaultLog = WriteLines(b.t, b.baseDir, lines...)
	}
}

// WithFollow overrides follow timing on the test config.
func WithFollow(intervalMS, waitMS int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Follow.IntervalMS = intervalMS
		b.cfg.Follow.WaitMS = waitMS
	}
}

// WithReopenOnRotate enables rotation handling in follow mode.
func WithReopenOnRotate() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Follow.ReopenOnRotate = true
	}
}

// WithBufferKiB overrides the reader buffer size.
func WithBufferKiB(kib int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Reader.BufferKiB = kib
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
