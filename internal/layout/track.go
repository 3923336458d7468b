package layout

// TrackKind specifies how a grid track is sized.
type TrackKind uint8

const (
	TrackAuto       TrackKind = iota // Sized as one fraction unit
	TrackFixed                       // Absolute terminal cells
	TrackFr                          // Proportional share of remaining space
	TrackMinContent                  // Sized as one fraction unit (no measurement pass)
	TrackMaxContent                  // Sized as one fraction unit (no measurement pass)
)

// GridTrack defines a single column or row of a grid template.
//
// Auto, MinContent and MaxContent are approximated as Fr(1): there is
// no intrinsic content measurement in this engine, so every
// content-driven track degrades to an equal fraction of free space.
type GridTrack struct {
	Kind   TrackKind
	Amount float64
}

// FixedTrack returns a track with an absolute cell size.
func FixedTrack(n int) GridTrack {
	return GridTrack{Kind: TrackFixed, Amount: float64(n)}
}

// FrTrack returns a track sized as a weighted fraction of free space.
func FrTrack(weight float64) GridTrack {
	return GridTrack{Kind: TrackFr, Amount: weight}
}

// AutoTrack returns a content-sized track (approximated as FrTrack(1)).
func AutoTrack() GridTrack {
	return GridTrack{Kind: TrackAuto}
}

// MinContentTrack returns a min-content track (approximated as FrTrack(1)).
func MinContentTrack() GridTrack {
	return GridTrack{Kind: TrackMinContent}
}

// MaxContentTrack returns a max-content track (approximated as FrTrack(1)).
func MaxContentTrack() GridTrack {
	return GridTrack{Kind: TrackMaxContent}
}

// frWeight returns the track's proportional weight, or 0 for tracks
// that consume space directly. Non-positive Fr weights count as 0.
func (t GridTrack) frWeight() float64 {
	switch t.Kind {
	case TrackFixed:
		return 0
	case TrackFr:
		if t.Amount <= 0 {
			return 0
		}
		return t.Amount
	default:
		return 1
	}
}

// GridPlacement positions a grid child on one axis. Start and End are
// 1-indexed track lines; zero means unset. A negative End means "span
// that many tracks"; a positive End greater than Start spans End-Start
// tracks. Spans never go below 1.
type GridPlacement struct {
	Start int
	End   int
}
