package ffprobe

import (
	"context"
	"os/exec"
	"testing"
)

func stubCommand(t *testing.T, script string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", script)
	}
	t.Cleanup(func() { commandContext = original })
}

func TestInspectParsesDimensions(t *testing.T) {
	stubCommand(t, `printf '%s' '{"streams":[{"index":0,"codec_type":"video","width":1280,"height":720}],"format":{"duration":"8.0"}}'`)

	result, err := Inspect(context.Background(), "ffprobe", "clip.mp4")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	w, h, ok := result.Dimensions()
	if !ok || w != 1280 || h != 720 {
		t.Fatalf("Dimensions = %d x %d (ok=%v)", w, h, ok)
	}
}

func TestInspectFailsOnNonzeroExit(t *testing.T) {
	stubCommand(t, `echo broken >&2; exit 1`)
	if _, err := Inspect(context.Background(), "ffprobe", "clip.mp4"); err == nil {
		t.Fatal("expected error")
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestProbeFallsBackWithoutVideoStream(t *testing.T) {
	stubCommand(t, `printf '%s' '{"streams":[{"index":0,"codec_type":"audio"}],"format":{}}'`)

	w, h, err := Probe(context.Background(), "ffprobe", "clip.mp4")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if w != 1920 || h != 1080 {
		t.Fatalf("fallback dimensions = %d x %d", w, h)
	}
}
