package problem

import (
	"fmt"
	"math/rand"
)

// Generator builds random problems. It is not safe for concurrent use
// because the underlying rand.Rand is not.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing operands from rng.
// Pass a seeded source for reproducible matches.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns a fresh problem for the given difficulty.
//
//	EASY:   a + b       a,b in [1,50]
//	MEDIUM: a * b       a in [1,100], b in [1,9]
//	HARD:   a * b + c   a in [1,100], b in [1,5], c in [1,10]
//
// Unknown difficulties fall back to a + b with operands in [1,10].
// No tier produces a negative answer.
func (g *Generator) Generate(d Difficulty) Problem {
	switch d {
	case Easy:
		a, b := g.between(1, 50), g.between(1, 50)
		return Problem{Question: fmt.Sprintf("%d + %d", a, b), Answer: a + b}
	case Medium:
		// Single multiplication. Mixed multi-term expressions were planned
		// for this tier but were never the shipped behavior.
		a, b := g.between(1, 100), g.between(1, 9)
		return Problem{Question: fmt.Sprintf("%d * %d", a, b), Answer: a * b}
	case Hard:
		a, b, c := g.between(1, 100), g.between(1, 5), g.between(1, 10)
		return Problem{Question: fmt.Sprintf("%d * %d + %d", a, b, c), Answer: a*b + c}
	default:
		a, b := g.between(1, 10), g.between(1, 10)
		return Problem{Question: fmt.Sprintf("%d + %d", a, b), Answer: a + b}
	}
}

// between returns a random integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
