package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"matchreel/internal/record"
)

// RecordDoc mirrors the on-disk record document shape for test fixtures.
type RecordDoc struct {
	Mode       string       `json:"mode"`
	VideoID    string       `json:"videoId,omitempty"`
	VideoTitle string       `json:"videoTitle,omitempty"`
	Team1      string       `json:"team1,omitempty"`
	Team2      string       `json:"team2,omitempty"`
	Segments   []SegmentDoc `json:"segments"`
}

// SegmentDoc is one fixture segment.
type SegmentDoc struct {
	Start      float64      `json:"start"`
	End        float64      `json:"end"`
	ScoreState record.Score `json:"scoreState"`
}

// WriteRecord marshals doc as JSON into dir and returns the file path.
func WriteRecord(t testing.TB, dir, name string, doc RecordDoc) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write record: %v", err)
	}
	return path
}

// LocalRecord writes a two-segment local-mode record plus a dummy source
// video beside it, returning the record path.
func LocalRecord(t testing.TB, dir string) string {
	t.Helper()

	source := filepath.Join(dir, "match.mp4")
	if err := os.WriteFile(source, []byte("not a real video"), 0o644); err != nil {
		t.Fatalf("write source video: %v", err)
	}
	return WriteRecord(t, dir, "game.json", RecordDoc{
		Mode:       "local",
		VideoTitle: "match.mp4",
		Team1:      "Reds",
		Team2:      "Blues",
		Segments: []SegmentDoc{
			{Start: 10, End: 18, ScoreState: record.Score{T1: 1}},
			{Start: 40, End: 51, ScoreState: record.Score{T1: 1, T2: 1}},
		},
	})
}
