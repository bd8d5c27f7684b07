// Package deps reports the availability of the external binaries the
// pipeline invokes.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"matchreel/internal/config"
)

// Requirement defines an external dependency matchreel relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the binaries the configured pipeline needs.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     cfg.FFmpegBinary,
			Description: "Required for cutting, overlay rendering, and concatenation",
		},
		{
			Name:        "FFprobe",
			Command:     cfg.FFprobeBinary,
			Description: "Required for reading clip dimensions",
		},
		{
			Name:        "yt-dlp",
			Command:     cfg.YtDlpBinary,
			Description: "Required for remote records only",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
