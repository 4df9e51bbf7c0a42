// Package dice provides the randomness seam used by towns, terrain generation
// and the game driver. Production code rolls integer dice on a d20.Roller;
// tests inject a seeded or scripted source.
package dice

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jwebster45206/d20"
)

// Source is the randomness provider for every roll in the game.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a pseudo-random int in [0, n). n must be > 0.
	Intn(n int) int
}

// rollerSource rolls dice on a d20.Roller. Threshold draws use a PCG
// generator seeded from the same value, since d20 only deals in whole faces.
type rollerSource struct {
	roller *d20.Roller
	r      *rand.Rand
}

// NewSource returns a Source seeded from the wall clock.
func NewSource() Source {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}

// NewSeededSource returns a deterministic Source. The same seed always
// produces the same sequence of rolls.
func NewSeededSource(seed uint64) Source {
	return &rollerSource{
		roller: d20.NewRoller(int64(seed)),
		r:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *rollerSource) Float64() float64 {
	return s.r.Float64()
}

// Intn rolls 1dn and shifts it to [0, n).
func (s *rollerSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("dice: invalid die size %d", n))
	}
	out, err := s.roller.Dice(1, uint(n)).Roll()
	if err != nil {
		panic(fmt.Sprintf("dice: rolling 1d%d: %v", n, err))
	}
	return out.Value - 1
}

// Roll returns a uniform integer in [1, sides].
func Roll(src Source, sides int) int {
	return src.Intn(sides) + 1
}

// Chance reports whether a roll lands under p. p <= 0 never hits, p >= 1 always does.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
