package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"logcursor/internal/logs"
)

func TestScriptScenario(t *testing.T) {
	env := setupCLITestEnv(t, 6)

	args := []string{"script", env.logPath, "2:5", "1:4", "10:14", "9:10", "10:10", "8:-1", "6:-2", "9:-2"}
	out, _, err := runCLI(t, args, env.configPath)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	want := "=== 2:5\n" + numberedText(2, 5) +
		"=== 1:4\n" + numberedText(1, 4) +
		"=== 10:14\n" +
		"=== 9:10\n" +
		"=== 10:10\n" +
		"=== 8:-1\n" +
		"=== 6:-2\n" +
		"=== 9:-2\n" +
		"error: invalid range 9:-2: start is past the end (file has 6 lines)\n"
	if out != want {
		t.Fatalf("script output:\n%s\nwant:\n%s", out, want)
	}
}

func TestScriptWithoutForceSkipsRewinds(t *testing.T) {
	env := setupCLITestEnv(t, 6)

	out, _, err := runCLI(t, []string{"script", env.logPath, "--force=false", "2:5", "1:4"}, env.configPath)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	want := "=== 2:5\n" + numberedText(2, 5) + "=== 1:4\n"
	if out != want {
		t.Fatalf("script output %q, want %q", out, want)
	}
}

func TestScriptJSON(t *testing.T) {
	env := setupCLITestEnv(t, 6)
	env.cfg.Paths.DefaultLog = env.logPath
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"script", "--json", "--", "-3:-2", "bogus", "0:-1"}, env.configPath)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	var steps []scriptStep
	if err := json.Unmarshal([]byte(out), &steps); err != nil {
		t.Fatalf("decode script json: %v\n%s", err, out)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	if steps[0].FromLine != 5 || strings.Join(steps[0].Lines, ",") != "L5,L6" || steps[0].Cursor != 6 {
		t.Fatalf("unexpected first step %+v", steps[0])
	}
	if steps[1].Error == "" {
		t.Fatalf("expected parse error on second step, got %+v", steps[1])
	}
	if len(steps[2].Lines) != 0 {
		t.Fatalf("expected nothing new after the window scan, got %+v", steps[2])
	}
}

func TestStatJSON(t *testing.T) {
	env := setupCLITestEnv(t, 12)

	out, _, err := runCLI(t, []string{"stat", env.logPath, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	var report statReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode stat: %v", err)
	}
	info, err := os.Stat(env.logPath)
	if err != nil {
		t.Fatalf("stat file: %v", err)
	}
	if report.Lines != 12 || report.Size != info.Size() || report.Path != env.logPath {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestStatTable(t *testing.T) {
	env := setupCLITestEnv(t, 3)

	out, _, err := runCLI(t, []string{"stat", env.logPath}, env.configPath)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	requireContains(t, out, "Last Modified")
	requireContains(t, out, "Lines")
	requireContains(t, out, "(9 bytes)")
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t, 3)

	out, _, err := runCLI(t, []string{"check", env.logPath}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "State directory")
	requireContains(t, out, "(3 lines)")

	out, _, err = runCLI(t, []string{"check", env.logPath + ".missing"}, env.configPath)
	if !errors.Is(err, errPreflightFailed) {
		t.Fatalf("expected errPreflightFailed, got %v", err)
	}
	requireContains(t, out, "FAIL")
}

func TestConfigInitValidateShow(t *testing.T) {
	env := setupCLITestEnv(t, 1)
	target := filepath.Join(env.homeDir, "custom", "logcursor.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, target)

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, target)

	out, _, err = runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "interval_ms = 10")
	requireContains(t, out, env.cfg.Paths.StateDir)
}

func TestLogLevelOverrideValidated(t *testing.T) {
	env := setupCLITestEnv(t, 1)

	if _, _, err := runCLI(t, []string{"--log-level", "loud", "count", env.logPath}, env.configPath); err == nil {
		t.Fatal("expected invalid --log-level to fail")
	}
	if _, _, err := runCLI(t, []string{"--log-level", "debug", "count", env.logPath}, env.configPath); err != nil {
		t.Fatalf("count with debug logging: %v", err)
	}
}

func TestFollowPrintsBacklogAndAppends(t *testing.T) {
	env := setupCLITestEnv(t, 6)

	go func() {
		time.Sleep(50 * time.Millisecond)
		f, err := os.OpenFile(env.logPath, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		_, _ = f.WriteString("L7\n")
		_ = f.Close()
	}()

	out, _, err := runCLI(t, []string{"follow", env.logPath, "-n", "2", "--interval", "10ms", "--wait", "500ms", "--number"}, env.configPath)
	if err != nil {
		t.Fatalf("follow: %v", err)
	}
	want := "     5  L5\n     6  L6\n     7  L7\n"
	if out != want {
		t.Fatalf("follow output %q, want %q", out, want)
	}
}

func TestFollowStopsOnCancel(t *testing.T) {
	env := setupCLITestEnv(t, 3)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	out, _, err := runCLIContext(t, ctx, []string{"follow", env.logPath, "-n", "0", "--interval", "10ms"}, env.configPath)
	if err != nil {
		t.Fatalf("follow: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no backlog with -n 0, got %q", out)
	}
}

func TestFollowRespectsLock(t *testing.T) {
	env := setupCLITestEnv(t, 3)

	lock, err := logs.AcquireFollowLock(env.cfg.Paths.StateDir, env.logPath)
	if err != nil {
		t.Fatalf("acquire lock: %v", err)
	}
	defer lock.Release()

	_, _, err = runCLI(t, []string{"follow", env.logPath, "--wait", "20ms", "--interval", "10ms"}, env.configPath)
	if !errors.Is(err, logs.ErrFollowerRunning) {
		t.Fatalf("expected ErrFollowerRunning, got %v", err)
	}

	out, _, err := runCLI(t, []string{"follow", env.logPath, "--shared", "-n", "1", "--wait", "20ms", "--interval", "10ms"}, env.configPath)
	if err != nil {
		t.Fatalf("shared follow: %v", err)
	}
	if out != "L3\n" {
		t.Fatalf("shared follow output %q", out)
	}
}

func TestFollowReopensRotatedFile(t *testing.T) {
	env := setupCLITestEnv(t, 2)

	go func() {
		time.Sleep(50 * time.Millisecond)
		rotated := env.logPath + ".1"
		if err := os.Rename(env.logPath, rotated); err != nil {
			return
		}
		_ = os.WriteFile(env.logPath, []byte("N1\n"), 0o644)
	}()

	out, _, err := runCLI(t, []string{"follow", env.logPath, "-n", "1", "--interval", "10ms", "--wait", "500ms", "--reopen-on-rotate"}, env.configPath)
	if err != nil {
		t.Fatalf("follow: %v", err)
	}
	if out != "L2\nN1\n" {
		t.Fatalf("follow output %q", out)
	}
}
