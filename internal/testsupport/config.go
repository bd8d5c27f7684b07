// Package testsupport holds shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"matchreel/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.LogDir = filepath.Join(base, "logs")
	cfg.JournalPath = filepath.Join(base, "journal.db")
	cfg.MinFreeSpaceGiB = 0

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithFontFile sets the overlay font path on the test config.
func WithFontFile(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.FontFile = path
	}
}

// WithNtfyTopic points push notifications at the given URL.
func WithNtfyTopic(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.NtfyTopic = url
	}
}
