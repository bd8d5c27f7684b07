package ffmpeg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WritePlaylist writes a concat demuxer playlist listing the clips in the
// given order. Paths are made absolute and embedded quotes escaped so the
// demuxer reads each entry verbatim.
func WritePlaylist(path string, clips []string) error {
	var sb strings.Builder
	for _, clip := range clips {
		abs, err := filepath.Abs(clip)
		if err != nil {
			return fmt.Errorf("resolve clip path %s: %w", clip, err)
		}
		fmt.Fprintf(&sb, "file '%s'\n", escapePlaylistPath(abs))
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}
	return nil
}

func escapePlaylistPath(path string) string {
	return strings.ReplaceAll(path, "'", `'\''`)
}
