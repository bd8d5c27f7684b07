package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Overlay configures scoreboard and progress indicator colors. Values are
// ffmpeg color expressions, so alpha suffixes like "red@0.8" are valid.
type Overlay struct {
	Team1Color  string `toml:"team1_color"`
	Team2Color  string `toml:"team2_color"`
	BarColor    string `toml:"bar_color"`
	AccentColor string `toml:"accent_color"`
	LineColor   string `toml:"line_color"`
}

// Config captures every tunable the pipeline reads.
type Config struct {
	LogDir    string `toml:"log_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	JournalPath string `toml:"journal_path"`

	FFmpegBinary  string `toml:"ffmpeg_binary"`
	FFprobeBinary string `toml:"ffprobe_binary"`
	YtDlpBinary   string `toml:"ytdlp_binary"`

	FontFile       string `toml:"font_file"`
	DownloadFormat string `toml:"download_format"`

	MinFreeSpaceGiB int `toml:"min_free_space_gib"`

	NtfyTopic          string `toml:"ntfy_topic"`
	NtfyRequestTimeout int    `toml:"ntfy_request_timeout"`

	Overlay Overlay `toml:"overlay"`
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return "~/.config/matchreel/config.toml"
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. An empty path means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	expanded, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	cfg := Default()
	data, err := os.ReadFile(expanded)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults are a complete configuration.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", expanded, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", expanded, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the embedded sample config to path, refusing to clobber
// an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(expanded, []byte(sampleConfig), 0o644)
}
