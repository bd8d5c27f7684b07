package record

// Winner identifies whose score increased during a segment, if either.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerTeam1
	WinnerTeam2
)

func (w Winner) String() string {
	switch w {
	case WinnerTeam1:
		return "team1"
	case WinnerTeam2:
		return "team2"
	default:
		return "none"
	}
}

// DerivedSegment is a RawSegment plus the display state computed from the
// segments before it. Immutable after derivation.
type DerivedSegment struct {
	RawSegment

	Index     int
	Winner    Winner
	PrevScore Score

	// Team names sanitized for embedding in the overlay filter language.
	Team1Name string
	Team2Name string
}

// Duration is the segment length in seconds, clamped at zero. It doubles as
// the trigger time: the elapsed-time threshold that reveals the segment's
// score change and progress tick.
func (d DerivedSegment) Duration() float64 {
	if d.End <= d.Start {
		return 0
	}
	return d.End - d.Start
}

// Derive computes the ordered derived segments for a record.
//
// The winner flag is a fold over the ordered segments carrying the running
// maximum score per team: a segment is won by team1 when its t1 score
// strictly exceeds every earlier t1 score, otherwise by team2 under the same
// rule, otherwise by nobody. Team1 takes precedence when both scores jump in
// the same segment, and only the winning team's running maximum advances.
func Derive(rec *GameRecord) []DerivedSegment {
	team1 := SanitizeName(rec.Team1)
	team2 := SanitizeName(rec.Team2)

	derived := make([]DerivedSegment, 0, len(rec.Segments))
	maxT1, maxT2 := 0, 0
	for i, seg := range rec.Segments {
		winner := WinnerNone
		if seg.Score.T1 > maxT1 {
			winner = WinnerTeam1
			maxT1 = seg.Score.T1
		} else if seg.Score.T2 > maxT2 {
			winner = WinnerTeam2
			maxT2 = seg.Score.T2
		}

		prev := Score{}
		if i > 0 {
			prev = rec.Segments[i-1].Score
		}

		derived = append(derived, DerivedSegment{
			RawSegment: seg,
			Index:      i,
			Winner:     winner,
			PrevScore:  prev,
			Team1Name:  team1,
			Team2Name:  team2,
		})
	}
	return derived
}
