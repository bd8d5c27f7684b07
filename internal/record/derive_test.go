package record_test

import (
	"testing"

	"matchreel/internal/record"
)

func recordWithScores(scores []record.Score) *record.GameRecord {
	segs := make([]record.RawSegment, len(scores))
	for i, s := range scores {
		segs[i] = record.RawSegment{
			Start: float64(i * 10),
			End:   float64(i*10 + 8),
			Score: s,
		}
	}
	return &record.GameRecord{
		Mode:     record.ModeRemote,
		VideoID:  "x",
		Team1:    "Reds",
		Team2:    "Blues",
		Segments: segs,
		Path:     "game.json",
	}
}

func TestDeriveWinnerFold(t *testing.T) {
	// Scores (1,0) -> (1,0) -> (2,0): team1 scores, nothing, team1 again.
	rec := recordWithScores([]record.Score{{T1: 1}, {T1: 1}, {T1: 2}})
	derived := record.Derive(rec)

	want := []record.Winner{record.WinnerTeam1, record.WinnerNone, record.WinnerTeam1}
	for i, seg := range derived {
		if seg.Winner != want[i] {
			t.Fatalf("segment %d winner = %v, want %v", i, seg.Winner, want[i])
		}
		if seg.Index != i {
			t.Fatalf("segment %d index = %d", i, seg.Index)
		}
	}
}

func TestDeriveWinnerUsesRunningMaximum(t *testing.T) {
	// t2 climbs, then a segment repeats an old score: no winner there.
	rec := recordWithScores([]record.Score{
		{T2: 1},
		{T1: 1, T2: 1},
		{T1: 1, T2: 1},
		{T1: 1, T2: 2},
	})
	derived := record.Derive(rec)

	want := []record.Winner{record.WinnerTeam2, record.WinnerTeam1, record.WinnerNone, record.WinnerTeam2}
	for i, seg := range derived {
		if seg.Winner != want[i] {
			t.Fatalf("segment %d winner = %v, want %v", i, seg.Winner, want[i])
		}
	}
}

func TestDeriveTeam1PrecedenceWhenBothScore(t *testing.T) {
	rec := recordWithScores([]record.Score{{T1: 1, T2: 1}})
	derived := record.Derive(rec)
	if derived[0].Winner != record.WinnerTeam1 {
		t.Fatalf("winner = %v, want team1", derived[0].Winner)
	}
}

func TestDerivePrevScores(t *testing.T) {
	rec := recordWithScores([]record.Score{{T1: 1}, {T1: 1, T2: 1}, {T1: 2, T2: 1}})
	derived := record.Derive(rec)

	if derived[0].PrevScore != (record.Score{}) {
		t.Fatalf("first segment prev score = %+v, want zero", derived[0].PrevScore)
	}
	if derived[1].PrevScore != (record.Score{T1: 1}) {
		t.Fatalf("second segment prev score = %+v", derived[1].PrevScore)
	}
	if derived[2].PrevScore != (record.Score{T1: 1, T2: 1}) {
		t.Fatalf("third segment prev score = %+v", derived[2].PrevScore)
	}
}

func TestDeriveSanitizesTeamNames(t *testing.T) {
	rec := recordWithScores([]record.Score{{T1: 1}})
	rec.Team1 = "St. Mary's: FC"
	derived := record.Derive(rec)
	if derived[0].Team1Name != `St. Marys\: FC` {
		t.Fatalf("sanitized name = %q", derived[0].Team1Name)
	}
}

func TestDurationClampsAtZero(t *testing.T) {
	seg := record.DerivedSegment{RawSegment: record.RawSegment{Start: 10, End: 8}}
	if seg.Duration() != 0 {
		t.Fatalf("Duration = %v, want 0", seg.Duration())
	}
	seg = record.DerivedSegment{RawSegment: record.RawSegment{Start: 10, End: 18.5}}
	if seg.Duration() != 8.5 {
		t.Fatalf("Duration = %v, want 8.5", seg.Duration())
	}
}
