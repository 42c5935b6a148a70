package main

import (
	"errors"
	"os"
	"testing"

	"logcursor/internal/linecursor"
)

func TestReadWholeFile(t *testing.T) {
	env := setupCLITestEnv(t, 6)

	out, _, err := runCLI(t, []string{"read", env.logPath}, env.configPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want, err := os.ReadFile(env.logPath)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if out != string(want) {
		t.Fatalf("read output %q, want %q", out, want)
	}
}

func TestReadRanges(t *testing.T) {
	env := setupCLITestEnv(t, 6)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"absolute", []string{"--range", "2:5"}, numberedText(2, 5)},
		{"last three", []string{"--range", "-3:-1"}, numberedText(4, 6)},
		{"last two of three", []string{"--range", "-3:-2"}, numberedText(5, 6)},
		{"open ended", []string{"--range", "4:"}, numberedText(4, 6)},
		{"single", []string{"--range", "3"}, numberedText(3, 3)},
		{"from and to", []string{"--from", "4", "--to", "-2"}, numberedText(4, 5)},
		{"only from", []string{"--from", "5"}, numberedText(5, 6)},
		{"past end", []string{"--range", "10:14"}, ""},
		{"skip without force", []string{"--skip", "3", "--range", "1:2"}, ""},
		{"skip with force", []string{"--skip", "3", "--range", "1:2", "--force"}, numberedText(1, 2)},
		{"continue without force", []string{"--skip", "2", "--range", "0:4"}, ""},
		{"continue with force", []string{"--skip", "2", "--range", "0:4", "--force"}, numberedText(2, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"read", env.logPath}, tt.args...)
			out, _, err := runCLI(t, args, env.configPath)
			if err != nil {
				t.Fatalf("read %v: %v", tt.args, err)
			}
			if out != tt.want {
				t.Fatalf("read %v = %q, want %q", tt.args, out, tt.want)
			}
		})
	}
}

func TestReadInvalidRange(t *testing.T) {
	env := setupCLITestEnv(t, 6)

	for _, r := range []string{"9:-2", "5:2", "-1:3", "3:0"} {
		_, _, err := runCLI(t, []string{"read", env.logPath, "--range", r}, env.configPath)
		if !errors.Is(err, linecursor.ErrInvalidRange) {
			t.Fatalf("range %s: expected ErrInvalidRange, got %v", r, err)
		}
	}
}

func TestReadRejectsMixedRangeFlags(t *testing.T) {
	env := setupCLITestEnv(t, 6)

	_, _, err := runCLI(t, []string{"read", env.logPath, "--range", "1:2", "--from", "3"}, env.configPath)
	if err == nil {
		t.Fatal("expected error when --range and --from are combined")
	}
}

func TestReadNumbered(t *testing.T) {
	env := setupCLITestEnv(t, 6)

	tests := []struct {
		rng  string
		want string
	}{
		{"2:3", "     2  L2\n     3  L3\n"},
		{"-3:-2", "     5  L5\n     6  L6\n"},
		{"4:-2", "     4  L4\n     5  L5\n"},
		{"-2:-1", "     5  L5\n     6  L6\n"},
		{"5:-1", "     5  L5\n     6  L6\n"},
	}
	for _, tt := range tests {
		out, _, err := runCLI(t, []string{"read", env.logPath, "--number", "--range", tt.rng}, env.configPath)
		if err != nil {
			t.Fatalf("read %s: %v", tt.rng, err)
		}
		if out != tt.want {
			t.Fatalf("read --number %s = %q, want %q", tt.rng, out, tt.want)
		}
	}
}

func TestReadUsesDefaultLog(t *testing.T) {
	env := setupCLITestEnv(t, 3)
	env.cfg.Paths.DefaultLog = env.logPath
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"read", "--range", "2:2"}, env.configPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if out != "L2\n" {
		t.Fatalf("read = %q, want L2", out)
	}
}

func TestReadWithoutPath(t *testing.T) {
	env := setupCLITestEnv(t, 3)

	_, _, err := runCLI(t, []string{"read"}, env.configPath)
	if !errors.Is(err, errNoLogPath) {
		t.Fatalf("expected errNoLogPath, got %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	env := setupCLITestEnv(t, 3)

	_, _, err := runCLI(t, []string{"read", env.logPath + ".missing"}, env.configPath)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestHeadAndLast(t *testing.T) {
	env := setupCLITestEnv(t, 6)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"head", []string{"head", "-n", "2"}, numberedText(1, 2)},
		{"head after skip", []string{"head", "-n", "2", "--skip", "4"}, numberedText(5, 6)},
		{"head zero", []string{"head", "-n", "0"}, ""},
		{"last", []string{"last", "-n", "2"}, numberedText(5, 6)},
		{"last more than file", []string{"last", "-n", "10"}, numberedText(1, 6)},
		{"last behind cursor", []string{"last", "-n", "3", "--skip", "5"}, numberedText(6, 6)},
		{"last behind cursor forced", []string{"last", "-n", "3", "--skip", "5", "--force"}, numberedText(4, 6)},
		{"last numbered", []string{"last", "-n", "1", "--number"}, "     6  L6\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{tt.args[0], env.logPath}, tt.args[1:]...)
			out, _, err := runCLI(t, args, env.configPath)
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if out != tt.want {
				t.Fatalf("%v = %q, want %q", tt.args, out, tt.want)
			}
		})
	}
}

func TestNextLine(t *testing.T) {
	env := setupCLITestEnv(t, 3)

	out, _, err := runCLI(t, []string{"next", env.logPath, "--skip", "1", "--number"}, env.configPath)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if out != "     2  L2\n" {
		t.Fatalf("next = %q", out)
	}

	out, errOut, err := runCLI(t, []string{"next", env.logPath, "--skip", "3"}, env.configPath)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	requireContains(t, errOut, "No lines available")
}

func TestCount(t *testing.T) {
	env := setupCLITestEnv(t, 42)

	out, _, err := runCLI(t, []string{"count", env.logPath}, env.configPath)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if out != "42\n" {
		t.Fatalf("count = %q, want 42", out)
	}
}
