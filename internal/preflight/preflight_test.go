package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"logcursor/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckFileReadable(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "app.log")
	if err := os.WriteFile(f, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if result := CheckFileReadable("log", f); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result := CheckFileReadable("log", dir); result.Passed || !strings.Contains(result.Detail, "is a directory") {
		t.Fatalf("expected directory failure, got %+v", result)
	}
	if result := CheckFileReadable("log", filepath.Join(dir, "missing.log")); result.Passed {
		t.Fatal("expected failure for missing file")
	}
}

func TestCheckLineScanCountsLines(t *testing.T) {
	f := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(f, []byte("a\nb\nc"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckLineScan("scan", f, 0)
	if !result.Passed || !strings.Contains(result.Detail, "(3 lines)") {
		t.Fatalf("unexpected scan result %+v", result)
	}
}

func TestCheckLogOutput(t *testing.T) {
	dir := t.TempDir()
	if result := CheckLogOutput("out", filepath.Join(dir, "new.log")); !result.Passed {
		t.Fatalf("expected creatable log, got %s", result.Detail)
	}
	if result := CheckLogOutput("out", filepath.Join(dir, "missing", "new.log")); result.Passed {
		t.Fatal("expected failure when parent is missing")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(nil); results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_StateDirAndSources(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = t.TempDir()

	src := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(src, []byte("one\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(t.TempDir(), "gone.log")

	results := RunAll(&cfg, src, missing)
	// state dir + readable + scan for src + readable for missing
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d: %+v", len(results), results)
	}
	for _, r := range results[:3] {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
	if results[3].Passed {
		t.Fatal("expected missing source to fail")
	}
	if !Failed(results) {
		t.Fatal("Failed should report the missing source")
	}
}
