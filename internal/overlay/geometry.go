package overlay

import (
	"fmt"
	"math"
	"strconv"

	"matchreel/internal/record"
)

// Geometry contract, as fractions of the video height H:
//
//	scoreboard bar    0.15·H, flush to the bottom edge
//	accent stripe     max(2, 0.006·H), atop the bar's top edge
//	score boxes       height 0.5·bar, width 1.2·height, centered in the bar,
//	                  abutting the horizontal center line
//	team name text    0.2·box width outward from each box
//	progress line     from y=0.05·H, spanning the space left above the bar
//	progress ticks    slot min(available/total, 0.05·H), gap 0.1·slot
type metrics struct {
	sbHeight   int
	sbY        int
	accent     int
	boxHeight  int
	boxWidth   int
	boxY       int
	t1BoxX     int
	t2BoxX     int
	fontScore  int
	fontTeam   int
	teamOffset int
	lineTop    int
	availH     int
	lineX      int
	lineW      int
	slotH      float64
	gap        int
	tickDim    float64
}

func computeMetrics(width, height, total int) metrics {
	m := metrics{}
	m.sbHeight = int(float64(height) * 0.15)
	m.sbY = height - m.sbHeight
	m.accent = maxInt(2, int(float64(height)*0.006))
	m.boxHeight = int(float64(m.sbHeight) * 0.5)
	m.boxWidth = int(float64(m.boxHeight) * 1.2)
	m.boxY = m.sbY + (m.sbHeight-m.boxHeight)/2
	centerX := width / 2
	m.t1BoxX = centerX - m.boxWidth
	m.t2BoxX = centerX
	m.fontScore = int(float64(m.boxHeight) * 0.8)
	m.fontTeam = int(float64(m.sbHeight) * 0.25)
	m.teamOffset = int(float64(m.boxWidth) * 0.2)
	m.lineTop = int(float64(height) * 0.05)
	m.availH = height - m.lineTop - m.sbHeight - int(float64(height)*0.02)
	m.lineX = int(float64(height)*0.05) + 14
	m.lineW = maxInt(2, int(float64(height)*0.003))
	m.slotH = math.Min(float64(m.availH)/float64(total), float64(height)*0.05)
	m.gap = maxInt(1, int(m.slotH*0.1))
	m.tickDim = m.slotH - float64(m.gap)
	return m
}

// Plan computes the ordered draw primitives for the clip at index. segments
// must be the full derived list; only entries up to and including index
// influence the output, along with the total count which sizes the progress
// ticks.
func Plan(width, height, index int, segments []record.DerivedSegment, style Style) []Primitive {
	total := len(segments)
	if total == 0 || index < 0 || index >= total {
		return nil
	}
	m := computeMetrics(width, height, total)
	seg := segments[index]
	trigger := seg.Duration()

	prims := make([]Primitive, 0, 12+index)

	// Progress line, then one tick per decided segment so far. The current
	// segment's tick stays hidden until its scoring moment has played.
	prims = append(prims, Box{
		X: m.lineX, Y: m.lineTop, Width: m.lineW, Height: m.availH,
		Color: style.LineColor,
	})
	for k := 0; k <= index; k++ {
		winner := segments[k].Winner
		if winner == record.WinnerNone {
			continue
		}
		tick := Box{
			Y:      int(float64(m.lineTop) + float64(k)*m.slotH),
			Width:  int(m.tickDim),
			Height: int(m.tickDim),
		}
		if winner == record.WinnerTeam1 {
			tick.X = int(float64(m.lineX) - float64(m.gap) - m.tickDim)
			tick.Color = style.Team1Color
		} else {
			tick.X = m.lineX + m.lineW + m.gap
			tick.Color = style.Team2Color
		}
		if k == index {
			tick.Enable = gateAfter(trigger)
		}
		prims = append(prims, tick)
	}

	// Scoreboard bar, accent stripe, score boxes.
	prims = append(prims,
		Box{X: 0, Y: m.sbY, Width: width, Height: m.sbHeight, Color: style.BarColor},
		Box{X: 0, Y: m.sbY, Width: width, Height: m.accent, Color: style.AccentColor},
		Box{X: m.t1BoxX, Y: m.boxY, Width: m.boxWidth, Height: m.boxHeight, Color: style.Team1Color},
		Box{X: m.t2BoxX, Y: m.boxY, Width: m.boxWidth, Height: m.boxHeight, Color: style.Team2Color},
	)

	// Team names sit outside their boxes; team1 is right-aligned against its
	// offset so the pair mirrors around the center line.
	textY := fmt.Sprintf("%d+((%d-text_h)/2)", m.boxY, m.boxHeight)
	prims = append(prims,
		Text{
			Content: seg.Team1Name, FontFile: style.FontFile, FontSize: m.fontTeam, Color: "white",
			X: fmt.Sprintf("%d-text_w", m.t1BoxX-m.teamOffset), Y: textY,
		},
		Text{
			Content: seg.Team2Name, FontFile: style.FontFile, FontSize: m.fontTeam, Color: "white",
			X: strconv.Itoa(m.t2BoxX + m.boxWidth + m.teamOffset), Y: textY,
		},
	)

	// Scores swap from the previous snapshot to the new one at the trigger
	// time, animating the change mid-clip instead of showing it from frame
	// zero.
	prims = append(prims,
		scoreText(seg.PrevScore.T1, m.t1BoxX, m, style, gateUpTo(trigger)),
		scoreText(seg.Score.T1, m.t1BoxX, m, style, gateAfter(trigger)),
		scoreText(seg.PrevScore.T2, m.t2BoxX, m, style, gateUpTo(trigger)),
		scoreText(seg.Score.T2, m.t2BoxX, m, style, gateAfter(trigger)),
	)

	return prims
}

func scoreText(score, boxX int, m metrics, style Style, enable string) Text {
	return Text{
		Content:  strconv.Itoa(score),
		FontFile: style.FontFile,
		FontSize: m.fontScore,
		Color:    "white",
		X:        fmt.Sprintf("%d+((%d-text_w)/2)", boxX, m.boxWidth),
		Y:        fmt.Sprintf("%d+((%d-text_h)/2)", m.boxY, m.boxHeight),
		Enable:   enable,
	}
}

func gateAfter(trigger float64) string {
	return fmt.Sprintf("gt(t,%s)", formatSeconds(trigger))
}

func gateUpTo(trigger float64) string {
	return fmt.Sprintf("lte(t,%s)", formatSeconds(trigger))
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
