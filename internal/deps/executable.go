package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// EnsureExecutable restores the execute bit on a configured binary path.
// Bundled ffmpeg builds tend to lose it when unpacked from an archive. Only
// explicit paths are touched; bare command names resolved from PATH are left
// alone, and any failure is ignored since the subsequent invocation will
// surface it anyway.
func EnsureExecutable(path string) {
	if runtime.GOOS == "windows" {
		return
	}
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || !strings.ContainsRune(trimmed, filepath.Separator) {
		return
	}
	info, err := os.Stat(trimmed)
	if err != nil || info.IsDir() {
		return
	}
	if info.Mode().Perm()&0o111 != 0 {
		return
	}
	_ = os.Chmod(trimmed, info.Mode()|0o111)
}
