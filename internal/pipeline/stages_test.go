package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"matchreel/internal/pipeline"
	"matchreel/internal/record"
	"matchreel/internal/services"
)

type fakeDownloader struct {
	write  []byte
	err    error
	videoS string
}

func (f *fakeDownloader) DownloadRange(_ context.Context, videoID string, _, _ float64, dest string) error {
	f.videoS = videoID
	if f.err != nil {
		return f.err
	}
	if f.write == nil {
		return nil
	}
	return os.WriteFile(dest, f.write, 0o644)
}

func TestRemoteFetcherValidatesOutput(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "raw.mp4")
	seg := record.DerivedSegment{RawSegment: record.RawSegment{Start: 5, End: 10}}

	// Tool succeeded but wrote nothing.
	fetcher := pipeline.NewRemoteFetcher(&fakeDownloader{}, "abc123")
	err := fetcher.Fetch(context.Background(), seg, dest)
	if !errors.Is(err, services.ErrFetch) {
		t.Fatalf("missing output should be a fetch error, got %v", err)
	}

	// Tool wrote an empty file.
	fetcher = pipeline.NewRemoteFetcher(&fakeDownloader{write: []byte{}}, "abc123")
	if err := fetcher.Fetch(context.Background(), seg, dest); !errors.Is(err, services.ErrFetch) {
		t.Fatalf("empty output should be a fetch error, got %v", err)
	}

	dl := &fakeDownloader{write: []byte("video")}
	fetcher = pipeline.NewRemoteFetcher(dl, "abc123")
	if err := fetcher.Fetch(context.Background(), seg, dest); err != nil {
		t.Fatalf("valid output: %v", err)
	}
	if dl.videoS != "abc123" {
		t.Fatalf("video id = %q", dl.videoS)
	}
}

func TestRemoteFetcherWrapsToolFailure(t *testing.T) {
	fetcher := pipeline.NewRemoteFetcher(&fakeDownloader{err: errors.New("network down")}, "abc123")
	seg := record.DerivedSegment{RawSegment: record.RawSegment{Start: 0, End: 5}}
	err := fetcher.Fetch(context.Background(), seg, filepath.Join(t.TempDir(), "raw.mp4"))
	if !errors.Is(err, services.ErrFetch) {
		t.Fatalf("error = %v", err)
	}
	if !services.SegmentScoped(err) {
		t.Fatal("fetch failures must stay segment-scoped")
	}
}

func TestNewFetcherForRecordPicksByMode(t *testing.T) {
	remote := &record.GameRecord{Mode: record.ModeRemote, VideoID: "vid"}
	if _, ok := pipeline.NewFetcherForRecord(remote, &fakeDownloader{}, nil).(*pipeline.RemoteFetcher); !ok {
		t.Fatal("remote record should get a RemoteFetcher")
	}
	local := &record.GameRecord{Mode: record.ModeLocal, VideoTitle: "src.mp4", Path: "/tmp/game.json"}
	if _, ok := pipeline.NewFetcherForRecord(local, nil, nil).(*pipeline.LocalFetcher); !ok {
		t.Fatal("local record should get a LocalFetcher")
	}
}
