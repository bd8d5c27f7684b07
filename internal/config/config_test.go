package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FFmpegBinary != "ffmpeg" {
		t.Fatalf("unexpected ffmpeg binary %q", cfg.FFmpegBinary)
	}
	if cfg.Overlay.Team1Color != "red@0.8" {
		t.Fatalf("unexpected team1 color %q", cfg.Overlay.Team1Color)
	}
	if cfg.DownloadFormat == "" {
		t.Fatal("expected default download format")
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		`ffmpeg_binary = "/opt/ffmpeg/bin/ffmpeg"`,
		`log_level = "debug"`,
		``,
		`[overlay]`,
		`team1_color = "green@0.5"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FFmpegBinary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("override not applied: %q", cfg.FFmpegBinary)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level override not applied: %q", cfg.LogLevel)
	}
	if cfg.Overlay.Team1Color != "green@0.5" {
		t.Fatalf("overlay override not applied: %q", cfg.Overlay.Team1Color)
	}
	// Untouched keys keep defaults.
	if cfg.Overlay.Team2Color != "blue@0.8" {
		t.Fatalf("default lost: %q", cfg.Overlay.Team2Color)
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_format = "xml"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := expandPath("~/x/y")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if got != filepath.Join(home, "x", "y") {
		t.Fatalf("expandPath = %q", got)
	}
}

func TestWriteSampleRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected error on existing file")
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}
