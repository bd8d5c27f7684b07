package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

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

// CLI wraps the ffmpeg command-line transcoder.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// CutRange seeks to start in source and re-encodes exactly end-start seconds
// into dest. The ultrafast x264 encode keeps the cut frame-accurate without
// noticeably slowing the run.
func (c *CLI) CutRange(ctx context.Context, source string, start, end float64, dest string) error {
	if source == "" {
		return errors.New("source path required")
	}
	if end <= start {
		return fmt.Errorf("invalid range [%s, %s]", formatSeconds(start), formatSeconds(end))
	}
	args := []string{
		"-y",
		"-ss", formatSeconds(start),
		"-i", source,
		"-t", formatSeconds(end - start),
		"-c:v", "libx264", "-preset", "ultrafast",
		"-c:a", "aac",
		dest,
	}
	return c.run(ctx, "cut", args)
}

// RenderOverlay applies the compiled filter chain to raw, writing dest. Video
// is re-encoded at a fixed quality target; audio passes through untouched.
// The raw input is deleted on success since its processed version replaces it.
func (c *CLI) RenderOverlay(ctx context.Context, raw, filterChain, dest string) error {
	if raw == "" {
		return errors.New("raw clip path required")
	}
	if filterChain == "" {
		return errors.New("filter chain required")
	}
	args := []string{
		"-i", raw,
		"-vf", filterChain,
		"-c:v", "libx264", "-preset", "ultrafast", "-crf", "26",
		"-c:a", "copy",
		"-y", dest,
	}
	if err := c.run(ctx, "render", args); err != nil {
		return err
	}
	_ = os.Remove(raw)
	return nil
}

// Concat joins the clips listed in the playlist into output using stream
// copy. All processed clips share compatible encoding from RenderOverlay, so
// no re-encode happens here.
func (c *CLI) Concat(ctx context.Context, playlist, output string) error {
	if playlist == "" {
		return errors.New("playlist path required")
	}
	args := []string{
		"-f", "concat", "-safe", "0",
		"-i", playlist,
		"-c", "copy",
		"-y", output,
	}
	return c.run(ctx, "concat", args)
}

func (c *CLI) run(ctx context.Context, operation string, args []string) error {
	cmd := commandContext(ctx, c.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg %s: %w: %s", operation, err, tail(string(output)))
	}
	return nil
}

// tail keeps error messages readable; ffmpeg is chatty and only the end of
// its output explains a failure.
func tail(output string) string {
	trimmed := strings.TrimSpace(output)
	const limit = 512
	if len(trimmed) <= limit {
		return trimmed
	}
	return "..." + trimmed[len(trimmed)-limit:]
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
