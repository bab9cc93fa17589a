// Package game contains the pure Stroop game core: round generation,
// the session state machine, and scoring. It has no UI dependencies;
// the platform layer drives it with discrete events and renders from
// its snapshots.
package game

// ColorName is one of the fixed color labels used both as the displayed
// word and as the ink color the player must identify.
type ColorName int

const (
	Red ColorName = iota
	Green
	Blue
	Yellow
)

// Palette lists all playable colors in a stable order.
var Palette = [...]ColorName{Red, Green, Blue, Yellow}

// String returns the label shown to the player.
func (c ColorName) String() string {
	switch c {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	case Yellow:
		return "YELLOW"
	default:
		return "UNKNOWN"
	}
}
