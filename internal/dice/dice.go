// Package dice provides six-sided die values and the roll sources used by
// the turn engine.
package dice

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
)

// Die is the face value of a single six-sided die.
type Die int

const (
	MinFace Die = 1
	MaxFace Die = 6
)

// Valid reports whether d is a face of a six-sided die.
func (d Die) Valid() bool {
	return d >= MinFace && d <= MaxFace
}

// Roller produces n independent die values in [1,6].
type Roller interface {
	Roll(n int) []Die
}

// RandRoller rolls uniformly distributed dice from a *rand.Rand.
type RandRoller struct {
	rng *rand.Rand
}

// NewRandRoller returns a Roller backed by rng. Use randutil.New for a
// reproducible source.
func NewRandRoller(rng *rand.Rand) *RandRoller {
	return &RandRoller{rng: rng}
}

func (r *RandRoller) Roll(n int) []Die {
	out := make([]Die, n)
	for i := range out {
		out[i] = Die(r.rng.IntN(int(MaxFace))) + MinFace
	}
	return out
}

// Sum returns the total of all pips.
func Sum(dice []Die) int {
	total := 0
	for _, d := range dice {
		total += int(d)
	}
	return total
}

// Counts returns the multiplicity of every face present in dice.
func Counts(dice []Die) map[Die]int {
	counts := make(map[Die]int, len(dice))
	for _, d := range dice {
		counts[d]++
	}
	return counts
}

// Combine returns the multiset union of the given groups as a new slice.
func Combine(groups ...[]Die) []Die {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]Die, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Format renders dice as "[2, 2, 5]".
func Format(dice []Die) string {
	parts := make([]string, len(dice))
	for i, d := range dice {
		parts[i] = fmt.Sprint(int(d))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
