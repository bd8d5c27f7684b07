package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"matchreel/internal/services"
)

// Mode selects where segment video comes from.
type Mode string

const (
	// ModeRemote pulls segment ranges from a network video source.
	ModeRemote Mode = "remote"
	// ModeLocal cuts segment ranges from a video file next to the record.
	ModeLocal Mode = "local"
)

// Score is a score snapshot for both teams.
type Score struct {
	T1 int `json:"t1" yaml:"t1"`
	T2 int `json:"t2" yaml:"t2"`
}

// RawSegment is one timestamped excerpt with the score at its end.
type RawSegment struct {
	Start float64
	End   float64
	Score Score
}

// GameRecord is the parsed input document. Immutable once loaded.
type GameRecord struct {
	Mode       Mode
	VideoID    string
	VideoTitle string
	Team1      string
	Team2      string
	Segments   []RawSegment

	// Path is where the record was loaded from; workspace layout and the
	// local source video are resolved relative to it.
	Path string
}

var recordExtensions = []string{".json", ".yaml", ".yml"}

type documentSegment struct {
	Start      *float64 `json:"start" yaml:"start"`
	End        *float64 `json:"end" yaml:"end"`
	ScoreState *Score   `json:"scoreState" yaml:"scoreState"`
}

type document struct {
	Mode       string            `json:"mode" yaml:"mode"`
	VideoID    string            `json:"videoId" yaml:"videoId"`
	VideoTitle string            `json:"videoTitle" yaml:"videoTitle"`
	Team1      string            `json:"team1" yaml:"team1"`
	Team2      string            `json:"team2" yaml:"team2"`
	Segments   []documentSegment `json:"segments" yaml:"segments"`
}

// Load parses the record document at path.
func Load(path string) (*GameRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrInput, "record", "read", path, err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, services.Wrap(services.ErrInput, "record", "parse", path, err)
	}

	rec, err := doc.toRecord(path)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Find locates the record document for target: either the file itself or a
// directory containing exactly one record document.
func Find(target string) (string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return "", services.Wrap(services.ErrInput, "record", "locate", target, err)
	}
	if !info.IsDir() {
		return target, nil
	}

	var matches []string
	for _, ext := range recordExtensions {
		found, err := filepath.Glob(filepath.Join(target, "*"+ext))
		if err != nil {
			return "", services.Wrap(services.ErrInput, "record", "scan directory", target, err)
		}
		matches = append(matches, found...)
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return "", services.Wrap(services.ErrInput, "record", "locate",
			fmt.Sprintf("no record document in %s", target), nil)
	case 1:
		return matches[0], nil
	default:
		return "", services.Wrap(services.ErrInput, "record", "locate",
			fmt.Sprintf("%d record documents in %s, expected exactly one", len(matches), target), nil)
	}
}

// Dir returns the directory holding the record file. All run artifacts are
// created under it.
func (r *GameRecord) Dir() string {
	return filepath.Dir(r.Path)
}

// LocalSourcePath resolves the local source video beside the record file.
func (r *GameRecord) LocalSourcePath() string {
	return filepath.Join(filepath.Dir(r.Path), r.VideoTitle)
}

// BaseName is the record file name without extension, used for workspace and
// output naming.
func (r *GameRecord) BaseName() string {
	base := filepath.Base(r.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (d document) toRecord(path string) (*GameRecord, error) {
	mode := ModeRemote
	switch strings.ToLower(strings.TrimSpace(d.Mode)) {
	case "local":
		mode = ModeLocal
	case "", "remote":
	default:
		return nil, services.Wrap(services.ErrInput, "record", "parse",
			fmt.Sprintf("unknown mode %q", d.Mode), nil)
	}

	if mode == ModeRemote && strings.TrimSpace(d.VideoID) == "" {
		return nil, services.Wrap(services.ErrInput, "record", "parse", "videoId is required for remote records", nil)
	}
	if mode == ModeLocal && strings.TrimSpace(d.VideoTitle) == "" {
		return nil, services.Wrap(services.ErrInput, "record", "parse", "videoTitle is required for local records", nil)
	}
	if len(d.Segments) == 0 {
		return nil, services.Wrap(services.ErrInput, "record", "parse", "record has no segments", nil)
	}

	segments := make([]RawSegment, 0, len(d.Segments))
	for i, seg := range d.Segments {
		if seg.Start == nil || seg.End == nil || seg.ScoreState == nil {
			return nil, services.Wrap(services.ErrInput, "record", "parse",
				fmt.Sprintf("segment %d is missing start, end, or scoreState", i), nil)
		}
		if *seg.End <= *seg.Start {
			return nil, services.Wrap(services.ErrInput, "record", "parse",
				fmt.Sprintf("segment %d: end %.3f must be after start %.3f", i, *seg.End, *seg.Start), nil)
		}
		segments = append(segments, RawSegment{Start: *seg.Start, End: *seg.End, Score: *seg.ScoreState})
	}

	team1 := strings.TrimSpace(d.Team1)
	if team1 == "" {
		team1 = "Home"
	}
	team2 := strings.TrimSpace(d.Team2)
	if team2 == "" {
		team2 = "Away"
	}

	return &GameRecord{
		Mode:       mode,
		VideoID:    strings.TrimSpace(d.VideoID),
		VideoTitle: strings.TrimSpace(d.VideoTitle),
		Team1:      team1,
		Team2:      team2,
		Segments:   segments,
		Path:       path,
	}, nil
}
