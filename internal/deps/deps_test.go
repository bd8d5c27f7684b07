package deps

import (
	"os"
	"path/filepath"
	"testing"

	"matchreel/internal/config"
)

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := CheckBinaries([]Requirement{
		{Name: "Shell", Command: "sh", Description: "always present"},
		{Name: "Ghost", Command: "matchreel-test-no-such-binary"},
		{Name: "Blank", Command: "   "},
	})
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("sh should be available: %+v", statuses[0])
	}
	if statuses[1].Available || statuses[1].Detail == "" {
		t.Fatalf("ghost binary should be unavailable with detail: %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Fatalf("blank command: %+v", statuses[2])
	}
}

func TestRequirementsUseConfiguredCommands(t *testing.T) {
	cfg := config.Default()
	cfg.FFmpegBinary = "/opt/ffmpeg/bin/ffmpeg"
	reqs := Requirements(&cfg)
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("ffmpeg command = %q", reqs[0].Command)
	}
	if !reqs[2].Optional {
		t.Fatal("yt-dlp should be optional")
	}
}

func TestEnsureExecutableRestoresBit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	EnsureExecutable(path)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Fatal("execute bit not restored")
	}
}

func TestEnsureExecutableIgnoresBareNames(t *testing.T) {
	// Must not panic or touch anything for PATH-resolved names.
	EnsureExecutable("ffmpeg")
	EnsureExecutable("")
}
