// Package ytdlp wraps the yt-dlp command-line downloader. Only the
// [start,end] range of a video is requested, so a run never pulls the full
// source asset.
package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

const defaultFormat = "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

// Client defines remote range download behaviour.
type Client interface {
	DownloadRange(ctx context.Context, videoID string, start, end float64, dest string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithFormat overrides the format selector passed to yt-dlp.
func WithFormat(format string) Option {
	return func(c *CLI) {
		if format != "" {
			c.format = format
		}
	}
}

// CLI wraps the yt-dlp command-line downloader.
type CLI struct {
	binary string
	format string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "yt-dlp", format: defaultFormat}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// DownloadRange fetches only [start,end] of the identified video into dest.
func (c *CLI) DownloadRange(ctx context.Context, videoID string, start, end float64, dest string) error {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return errors.New("video id required")
	}
	if dest == "" {
		return errors.New("destination path required")
	}
	if end <= start {
		return fmt.Errorf("invalid range [%s, %s]", formatSeconds(start), formatSeconds(end))
	}

	section := fmt.Sprintf("*%s-%s", formatSeconds(start), formatSeconds(end))
	args := []string{
		"--quiet", "--no-warnings",
		"-f", c.format,
		"--download-sections", section,
		"--force-keyframes-at-cuts",
		"-o", dest,
		"https://www.youtube.com/watch?v=" + videoID,
	}

	cmd := commandContext(ctx, c.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("yt-dlp download: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var _ Client = (*CLI)(nil)
