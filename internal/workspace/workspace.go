package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"matchreel/internal/logging"
)

// Layout names every path a run touches, derived deterministically from the
// record file location.
type Layout struct {
	TempDir      string
	ProcessedDir string
	PlaylistPath string
	OutputPath   string
	LockPath     string
}

// LayoutFor derives the workspace layout beside the record file.
func LayoutFor(recordPath string) Layout {
	dir := filepath.Dir(recordPath)
	base := filepath.Base(recordPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return Layout{
		TempDir:      filepath.Join(dir, "temp_clips"),
		ProcessedDir: filepath.Join(dir, "processed_clips"),
		PlaylistPath: filepath.Join(dir, "ffmpeg_list.txt"),
		OutputPath:   filepath.Join(dir, base+".mp4"),
		LockPath:     filepath.Join(dir, "."+base+".matchreel.lock"),
	}
}

// RawClipPath is the extraction destination for segment i.
func (l Layout) RawClipPath(i int) string {
	return filepath.Join(l.TempDir, fmt.Sprintf("raw_%03d.mp4", i))
}

// ProcessedClipPath is the render destination for segment i. Its existence is
// what resume checks.
func (l Layout) ProcessedClipPath(i int) string {
	return filepath.Join(l.ProcessedDir, fmt.Sprintf("clip_%03d.mp4", i))
}

// Workspace brackets a run: lock, create directories, clean up.
type Workspace struct {
	Layout

	lock   *flock.Flock
	logger *slog.Logger
}

// New builds a workspace for the record without touching the filesystem.
func New(recordPath string, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Workspace{
		Layout: LayoutFor(recordPath),
		logger: logging.NewComponentLogger(logger, "workspace"),
	}
}

// Acquire takes the workspace lock, failing fast when another run already
// holds it.
func (w *Workspace) Acquire() error {
	lock := flock.New(w.LockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire workspace lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("workspace is locked by another run (%s)", w.LockPath)
	}
	w.lock = lock
	return nil
}

// Prepare creates the temp and processed directories. Existing directories
// are kept, which is what makes resume work.
func (w *Workspace) Prepare() error {
	for _, dir := range []string{w.TempDir, w.ProcessedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// Cleanup removes the temp directory, processed directory, and playlist file,
// then releases the lock. Failures are logged and never escalated; partial
// cleanup must not mask the run's real outcome.
func (w *Workspace) Cleanup() {
	for _, dir := range []string{w.TempDir, w.ProcessedDir} {
		if err := os.RemoveAll(dir); err != nil {
			w.logger.Warn("cleanup failed", logging.String("path", dir), logging.Error(err))
		}
	}
	if err := os.Remove(w.PlaylistPath); err != nil && !os.IsNotExist(err) {
		w.logger.Warn("cleanup failed", logging.String("path", w.PlaylistPath), logging.Error(err))
	}
	if w.lock != nil {
		if err := w.lock.Unlock(); err != nil {
			w.logger.Warn("release workspace lock failed", logging.Error(err))
		}
		w.lock = nil
		if err := os.Remove(w.LockPath); err != nil && !os.IsNotExist(err) {
			w.logger.Warn("cleanup failed", logging.String("path", w.LockPath), logging.Error(err))
		}
	}
}
