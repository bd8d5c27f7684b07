package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"matchreel/internal/config"
	"matchreel/internal/record"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("Record directory", dir)
	if !result.Passed {
		t.Fatalf("writable temp dir should pass: %+v", result)
	}

	result = CheckDirectoryAccess("Record directory", filepath.Join(dir, "missing"))
	if result.Passed {
		t.Fatalf("missing dir should fail: %+v", result)
	}

	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	result = CheckDirectoryAccess("Record directory", file)
	if result.Passed {
		t.Fatalf("plain file should fail: %+v", result)
	}
}

func TestCheckFreeSpace(t *testing.T) {
	dir := t.TempDir()

	result := CheckFreeSpace(dir, 0)
	if !result.Passed || result.Detail != "check disabled" {
		t.Fatalf("zero threshold should disable the check: %+v", result)
	}

	result = CheckFreeSpace(dir, 0.001)
	if !result.Passed {
		t.Fatalf("tiny threshold should pass on any real filesystem: %+v", result)
	}

	result = CheckFreeSpace(dir, 1 << 30)
	if result.Passed {
		t.Fatalf("absurd threshold should fail: %+v", result)
	}
}

func TestCheckSystemDepsSkipsYtDlpForLocal(t *testing.T) {
	cfg := config.Default()
	statuses := CheckSystemDeps(&cfg, record.ModeLocal)
	for _, status := range statuses {
		if status.Name == "yt-dlp" {
			t.Fatalf("local mode should not check yt-dlp: %+v", statuses)
		}
	}

	statuses = CheckSystemDeps(&cfg, record.ModeRemote)
	found := false
	for _, status := range statuses {
		if status.Name == "yt-dlp" {
			found = true
		}
	}
	if !found {
		t.Fatalf("remote mode should check yt-dlp: %+v", statuses)
	}
}

func TestAllPassed(t *testing.T) {
	passing := []Result{{Passed: true}, {Passed: true}}
	if !AllPassed(passing) {
		t.Fatal("all passing results should report true")
	}
	if AllPassed([]Result{{Passed: true}, {}}) {
		t.Fatal("one failing result should report false")
	}
	if !AllPassed(nil) {
		t.Fatal("empty results should report true")
	}
}
