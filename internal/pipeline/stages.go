package pipeline

import (
	"context"
	"fmt"
	"os"

	"matchreel/internal/media/ffmpeg"
	"matchreel/internal/media/ffprobe"
	"matchreel/internal/overlay"
	"matchreel/internal/record"
	"matchreel/internal/services"
	"matchreel/internal/services/ytdlp"
)

// RemoteFetcher downloads segment ranges with yt-dlp.
type RemoteFetcher struct {
	client  ytdlp.Client
	videoID string
}

// NewRemoteFetcher builds a fetcher for the given video ID.
func NewRemoteFetcher(client ytdlp.Client, videoID string) *RemoteFetcher {
	return &RemoteFetcher{client: client, videoID: videoID}
}

func (f *RemoteFetcher) Fetch(ctx context.Context, seg record.DerivedSegment, dest string) error {
	if err := f.client.DownloadRange(ctx, f.videoID, seg.Start, seg.End, dest); err != nil {
		return services.Wrap(services.ErrFetch, "pipeline", "fetch",
			fmt.Sprintf("downloading range for segment %d", seg.Index), err)
	}
	return validateRawClip(dest, "fetch")
}

// LocalFetcher cuts segment ranges from a source video on disk.
type LocalFetcher struct {
	ffmpeg *ffmpeg.CLI
	source string
}

// NewLocalFetcher builds a fetcher cutting from the given source file.
func NewLocalFetcher(cli *ffmpeg.CLI, source string) *LocalFetcher {
	return &LocalFetcher{ffmpeg: cli, source: source}
}

func (f *LocalFetcher) Fetch(ctx context.Context, seg record.DerivedSegment, dest string) error {
	if err := f.ffmpeg.CutRange(ctx, f.source, seg.Start, seg.End, dest); err != nil {
		return services.Wrap(services.ErrExtract, "pipeline", "extract",
			fmt.Sprintf("cutting range for segment %d", seg.Index), err)
	}
	return validateRawClip(dest, "extract")
}

// validateRawClip rejects missing or empty extraction output. Both yt-dlp and
// ffmpeg can exit zero while leaving nothing usable behind, and feeding an
// empty file to the render would fail with a far more confusing message.
func validateRawClip(dest, operation string) error {
	marker := services.ErrExtract
	if operation == "fetch" {
		marker = services.ErrFetch
	}
	info, err := os.Stat(dest)
	if err != nil {
		return services.Wrap(marker, "pipeline", operation, "no clip produced at "+dest, err)
	}
	if info.Size() == 0 {
		return services.Wrap(marker, "pipeline", operation, "empty clip produced at "+dest, nil)
	}
	return nil
}

// OverlayRenderer probes raw clip dimensions, plans the scoreboard overlay,
// and renders it with ffmpeg.
type OverlayRenderer struct {
	ffmpeg        *ffmpeg.CLI
	ffprobeBinary string
	style         overlay.Style
}

// NewOverlayRenderer builds the production renderer.
func NewOverlayRenderer(cli *ffmpeg.CLI, ffprobeBinary string, style overlay.Style) *OverlayRenderer {
	return &OverlayRenderer{ffmpeg: cli, ffprobeBinary: ffprobeBinary, style: style}
}

func (r *OverlayRenderer) Render(ctx context.Context, seg record.DerivedSegment, segments []record.DerivedSegment, raw, dest string) error {
	width, height, err := ffprobe.Probe(ctx, r.ffprobeBinary, raw)
	if err != nil {
		return services.Wrap(services.ErrRender, "pipeline", "probe", "reading dimensions of "+raw, err)
	}
	primitives := overlay.Plan(width, height, seg.Index, segments, r.style)
	chain := overlay.Compile(primitives)
	if err := r.ffmpeg.RenderOverlay(ctx, raw, chain, dest); err != nil {
		return services.Wrap(services.ErrRender, "pipeline", "render",
			fmt.Sprintf("annotating segment %d", seg.Index), err)
	}
	return nil
}

// StreamMerger writes the concat playlist and stream-copies it into the
// output file.
type StreamMerger struct {
	ffmpeg *ffmpeg.CLI
}

// NewStreamMerger builds the production merger.
func NewStreamMerger(cli *ffmpeg.CLI) *StreamMerger {
	return &StreamMerger{ffmpeg: cli}
}

func (m *StreamMerger) Merge(ctx context.Context, clips []string, playlistPath, outputPath string) error {
	if err := ffmpeg.WritePlaylist(playlistPath, clips); err != nil {
		return services.Wrap(services.ErrConcat, "pipeline", "playlist", "writing "+playlistPath, err)
	}
	if err := m.ffmpeg.Concat(ctx, playlistPath, outputPath); err != nil {
		return services.Wrap(services.ErrConcat, "pipeline", "concat", "merging into "+outputPath, err)
	}
	return nil
}

// NewFetcherForRecord picks the fetcher matching the record's mode.
func NewFetcherForRecord(rec *record.GameRecord, ytClient ytdlp.Client, cli *ffmpeg.CLI) Fetcher {
	if rec.Mode == record.ModeRemote {
		return NewRemoteFetcher(ytClient, rec.VideoID)
	}
	return NewLocalFetcher(cli, rec.LocalSourcePath())
}
