package overlay_test

import (
	"reflect"
	"strings"
	"testing"

	"matchreel/internal/overlay"
	"matchreel/internal/record"
)

func derivedSegments(t *testing.T, scores []record.Score) []record.DerivedSegment {
	t.Helper()
	segs := make([]record.RawSegment, len(scores))
	for i, s := range scores {
		segs[i] = record.RawSegment{Start: float64(i * 10), End: float64(i*10 + 8), Score: s}
	}
	rec := &record.GameRecord{
		Mode: record.ModeRemote, VideoID: "x",
		Team1: "Reds", Team2: "Blues",
		Segments: segs, Path: "game.json",
	}
	return record.Derive(rec)
}

func testStyle() overlay.Style {
	return overlay.DefaultStyle("/fonts/test.ttf")
}

func boxes(prims []overlay.Primitive) []overlay.Box {
	var out []overlay.Box
	for _, p := range prims {
		if b, ok := p.(overlay.Box); ok {
			out = append(out, b)
		}
	}
	return out
}

func texts(prims []overlay.Primitive) []overlay.Text {
	var out []overlay.Text
	for _, p := range prims {
		if t, ok := p.(overlay.Text); ok {
			out = append(out, t)
		}
	}
	return out
}

func TestPlanIsDeterministic(t *testing.T) {
	segs := derivedSegments(t, []record.Score{{T1: 1}, {T1: 1, T2: 1}, {T1: 2, T2: 1}})
	a := overlay.Plan(1920, 1080, 2, segs, testStyle())
	b := overlay.Plan(1920, 1080, 2, segs, testStyle())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs must produce identical primitives")
	}
}

func TestPlanScoreboardGeometry(t *testing.T) {
	segs := derivedSegments(t, []record.Score{{T1: 1}})
	prims := overlay.Plan(1920, 1000, 0, segs, testStyle())
	bs := boxes(prims)

	// Line box, tick, bar, accent, two score boxes.
	if len(bs) != 6 {
		t.Fatalf("expected 6 boxes, got %d", len(bs))
	}

	bar := bs[2]
	if bar.Y != 850 || bar.Height != 150 || bar.Width != 1920 || bar.X != 0 {
		t.Fatalf("scoreboard bar = %+v", bar)
	}
	accent := bs[3]
	if accent.Y != 850 || accent.Height != 6 {
		t.Fatalf("accent stripe = %+v", accent)
	}
	t1Box, t2Box := bs[4], bs[5]
	if t1Box.Height != 75 || t1Box.Width != 90 {
		t.Fatalf("score box size = %+v", t1Box)
	}
	// Boxes abut the center line: team1 to the left, team2 to the right.
	if t1Box.X != 960-90 || t2Box.X != 960 {
		t.Fatalf("score box positions: t1=%d t2=%d", t1Box.X, t2Box.X)
	}
	if t1Box.Y != 850+(150-75)/2 {
		t.Fatalf("score box y = %d", t1Box.Y)
	}
}

func TestPlanScalesLinearlyWithHeight(t *testing.T) {
	segs := derivedSegments(t, []record.Score{{T1: 1}, {T1: 2}})
	small := boxes(overlay.Plan(1920, 1000, 1, segs, testStyle()))
	large := boxes(overlay.Plan(1920, 2000, 1, segs, testStyle()))

	if len(small) != len(large) {
		t.Fatalf("box count changed with height: %d vs %d", len(small), len(large))
	}
	// Bar, accent, and score boxes are pure functions of H; doubling H
	// doubles every height-derived dimension.
	for _, i := range []int{3, 4, 5, 6} {
		if large[i].Height != 2*small[i].Height {
			t.Fatalf("box %d height %d did not double to %d", i, small[i].Height, large[i].Height)
		}
	}
}

func TestPlanProgressTicksScenario(t *testing.T) {
	// Scores (1,0) -> (1,0) -> (2,0): ticks for segments 0 and 2 on team1's
	// side of the line, nothing for segment 1.
	segs := derivedSegments(t, []record.Score{{T1: 1}, {T1: 1}, {T1: 2}})
	prims := overlay.Plan(1920, 1000, 2, segs, testStyle())
	bs := boxes(prims)

	// line + 2 ticks + bar + accent + 2 score boxes
	if len(bs) != 7 {
		t.Fatalf("expected 7 boxes, got %d", len(bs))
	}
	line := bs[0]
	if line.X != 64 || line.Y != 50 || line.Height != 780 {
		t.Fatalf("progress line = %+v", line)
	}

	tick0, tick2 := bs[1], bs[2]
	style := testStyle()
	for _, tick := range []overlay.Box{tick0, tick2} {
		if tick.Color != style.Team1Color {
			t.Fatalf("tick color = %q", tick.Color)
		}
		if tick.X >= line.X {
			t.Fatalf("team1 tick must sit left of the line: x=%d", tick.X)
		}
		if tick.Width != 45 || tick.Height != 45 {
			t.Fatalf("tick size = %+v", tick)
		}
	}
	if tick0.Y != 50 || tick2.Y != 150 {
		t.Fatalf("tick y positions: %d, %d", tick0.Y, tick2.Y)
	}

	// Only the currently rendering segment's tick is time-gated.
	if tick0.Enable != "" {
		t.Fatalf("past tick must not be gated: %q", tick0.Enable)
	}
	if tick2.Enable != "gt(t,8)" {
		t.Fatalf("current tick gate = %q", tick2.Enable)
	}
}

func TestPlanTeam2TickSitsRightOfLine(t *testing.T) {
	segs := derivedSegments(t, []record.Score{{T2: 1}})
	prims := overlay.Plan(1920, 1000, 0, segs, testStyle())
	bs := boxes(prims)
	line, tick := bs[0], bs[1]
	if tick.Color != testStyle().Team2Color {
		t.Fatalf("tick color = %q", tick.Color)
	}
	if tick.X != line.X+line.Width+5 {
		t.Fatalf("team2 tick x = %d", tick.X)
	}
}

func TestPlanScoreTextGating(t *testing.T) {
	segs := derivedSegments(t, []record.Score{{T1: 1}, {T1: 2, T2: 1}})
	prims := overlay.Plan(1920, 1080, 1, segs, testStyle())
	ts := texts(prims)

	// two team names + prev/new score per team
	if len(ts) != 6 {
		t.Fatalf("expected 6 texts, got %d", len(ts))
	}
	prevT1, newT1, prevT2, newT2 := ts[2], ts[3], ts[4], ts[5]

	if prevT1.Content != "1" || newT1.Content != "2" {
		t.Fatalf("t1 scores: prev=%q new=%q", prevT1.Content, newT1.Content)
	}
	if prevT2.Content != "0" || newT2.Content != "1" {
		t.Fatalf("t2 scores: prev=%q new=%q", prevT2.Content, newT2.Content)
	}
	if prevT1.Enable != "lte(t,8)" || newT1.Enable != "gt(t,8)" {
		t.Fatalf("t1 gates: prev=%q new=%q", prevT1.Enable, newT1.Enable)
	}
	if prevT2.Enable != "lte(t,8)" || newT2.Enable != "gt(t,8)" {
		t.Fatalf("t2 gates: prev=%q new=%q", prevT2.Enable, newT2.Enable)
	}
}

func TestPlanTeamNamePlacement(t *testing.T) {
	segs := derivedSegments(t, []record.Score{{T1: 1}})
	prims := overlay.Plan(1920, 1000, 0, segs, testStyle())
	ts := texts(prims)

	t1Name, t2Name := ts[0], ts[1]
	if t1Name.Content != "Reds" || t2Name.Content != "Blues" {
		t.Fatalf("team names: %q, %q", t1Name.Content, t2Name.Content)
	}
	// team1 is right-aligned toward the center, so its x references text_w.
	if !strings.HasSuffix(t1Name.X, "-text_w") {
		t.Fatalf("t1 name x = %q", t1Name.X)
	}
	if t1Name.Enable != "" || t2Name.Enable != "" {
		t.Fatal("team names must not be time-gated")
	}
}

func TestPlanOutOfRangeIndex(t *testing.T) {
	segs := derivedSegments(t, []record.Score{{T1: 1}})
	if prims := overlay.Plan(1920, 1080, 1, segs, testStyle()); prims != nil {
		t.Fatalf("expected nil for out-of-range index, got %d primitives", len(prims))
	}
	if prims := overlay.Plan(1920, 1080, -1, segs, testStyle()); prims != nil {
		t.Fatal("expected nil for negative index")
	}
}
