package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"logcursor/internal/config"
	"logcursor/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	logPath    string
	homeDir    string
}

func setupCLITestEnv(t *testing.T, lines int) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_STATE_HOME", "")
	t.Chdir(base)

	cfg := testsupport.NewConfig(t)
	logPath := testsupport.WriteNumbered(t, filepath.Join(base, "logs"), lines)

	configPath := filepath.Join(homeDir, ".config", "logcursor", "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		logPath:    logPath,
		homeDir:    homeDir,
	}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf(
		"[paths]\nstate_dir = %q\ndefault_log = %q\n\n[follow]\ninterval_ms = %d\n\n[logging]\nlevel = %q\n",
		cfg.Paths.StateDir,
		cfg.Paths.DefaultLog,
		cfg.Follow.IntervalMS,
		cfg.Logging.Level,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	return runCLIContext(t, context.Background(), args, configPath)
}

func runCLIContext(t *testing.T, ctx context.Context, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func numberedText(from, to int) string {
	var b strings.Builder
	for _, line := range testsupport.Numbered(from, to) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
