package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.LogDir, err = expandPath(c.LogDir); err != nil {
		return fmt.Errorf("log_dir: %w", err)
	}
	if c.JournalPath, err = expandPath(c.JournalPath); err != nil {
		return fmt.Errorf("journal_path: %w", err)
	}
	c.LogLevel = strings.TrimSpace(c.LogLevel)
	c.LogFormat = strings.TrimSpace(c.LogFormat)
	c.FFmpegBinary = strings.TrimSpace(c.FFmpegBinary)
	c.FFprobeBinary = strings.TrimSpace(c.FFprobeBinary)
	c.YtDlpBinary = strings.TrimSpace(c.YtDlpBinary)
	c.NtfyTopic = strings.TrimSpace(c.NtfyTopic)
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return trimmed, nil
}
