package anim

import (
	"github.com/matzehuels/drift/pkg/canvas"
	"github.com/matzehuels/drift/pkg/prng"
)

// facings is the cyclic list of direction pairs the flow rotates through.
var facings = [4][]canvas.Direction{
	{canvas.Right, canvas.Up},
	{canvas.Right, canvas.Down},
	{canvas.Left, canvas.Down},
	{canvas.Left, canvas.Up},
}

// flowWaits are the spawn counts between rotation steps.
var flowWaits = []int{8, 16, 32}

const flipOneIn = 7

// Flow picks the direction of each spawned element. It rotates slowly through
// the facings, occasionally flipping its sense or opening up to all four
// directions. A cross flow keeps all four directions active and never rotates.
type Flow struct {
	cross  bool
	all    bool
	facing int
	sense  int
	wait   int
	count  int
}

// NewFlow returns a flow starting at facing start (wrapped to the cycle).
func NewFlow(start int, cross bool, r *prng.Rand) *Flow {
	f := &Flow{
		cross:  cross,
		facing: ((start % len(facings)) + len(facings)) % len(facings),
		sense:  1,
	}
	if !cross {
		f.wait = prng.Choice(r, flowWaits)
	}
	return f
}

// Active returns the directions new elements are drawn from.
func (f *Flow) Active() []canvas.Direction {
	if f.cross || f.all {
		return canvas.Directions
	}
	return facings[f.facing]
}

// Facing returns the current index into the facing cycle.
func (f *Flow) Facing() int { return f.facing }

// Next draws the direction of one spawned element and advances the rotation.
func (f *Flow) Next(r *prng.Rand) canvas.Direction {
	d := prng.Choice(r, f.Active())
	f.advance(r)
	return d
}

func (f *Flow) advance(r *prng.Rand) {
	if f.cross {
		return
	}
	f.count++
	if f.count < f.wait {
		return
	}
	f.count = 0
	if r.Int(flipOneIn) == 0 {
		f.sense = -f.sense
	}
	n := len(facings)
	f.facing = ((f.facing+f.sense)%n + n) % n
	f.all = r.Int(flipOneIn) == 0
	f.wait = prng.Choice(r, flowWaits)
}
