package game

import (
	"math/rand"
	"time"
)

// Round is a single trial: a color word drawn in some ink color.
// The player must name the ink, not the word. Immutable once generated.
type Round struct {
	Word      ColorName
	Ink       ColorName
	StartedAt time.Time
}

// Congruent reports whether the word and its ink coincide.
func (r Round) Congruent() bool {
	return r.Word == r.Ink
}

// Generator produces rounds with a soft bias toward incongruent trials.
type Generator struct {
	rng   *rand.Rand
	clock func() time.Time
}

// NewGenerator creates a generator with the given seed. A zero clock
// defaults to time.Now.
func NewGenerator(seed int64, clock func() time.Time) *Generator {
	if clock == nil {
		clock = time.Now
	}
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		clock: clock,
	}
}

// Next draws a new round. Word and ink are drawn uniformly and
// independently; when they collide, the ink is redrawn while a coin
// flip exceeds 0.5 and the collision persists. Congruent trials are
// suppressed roughly half the time but never eliminated, so the
// interference effect stays mixed with occasional easy trials.
func (g *Generator) Next() Round {
	word := Palette[g.rng.Intn(len(Palette))]
	ink := Palette[g.rng.Intn(len(Palette))]
	for ink == word && g.rng.Float64() > 0.5 {
		ink = Palette[g.rng.Intn(len(Palette))]
	}
	return Round{
		Word:      word,
		Ink:       ink,
		StartedAt: g.clock(),
	}
}
