package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.FFmpegBinary == "" {
		return fmt.Errorf("ffmpeg_binary must not be empty")
	}
	if c.FFprobeBinary == "" {
		return fmt.Errorf("ffprobe_binary must not be empty")
	}
	if c.YtDlpBinary == "" {
		return fmt.Errorf("ytdlp_binary must not be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	if c.MinFreeSpaceGiB < 0 {
		return fmt.Errorf("min_free_space_gib must not be negative")
	}
	for name, value := range map[string]string{
		"team1_color":  c.Overlay.Team1Color,
		"team2_color":  c.Overlay.Team2Color,
		"bar_color":    c.Overlay.BarColor,
		"accent_color": c.Overlay.AccentColor,
		"line_color":   c.Overlay.LineColor,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("overlay %s must not be empty", name)
		}
	}
	return nil
}
