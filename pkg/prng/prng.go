package prng

import (
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Rand is a deterministic generator seeded from a hash string.
type Rand struct {
	hash   string
	digest uint64
	src    *rand.Rand
	draws  int
}

// New returns a generator seeded from hash.
func New(hash string) *Rand {
	r := &Rand{}
	r.Seed(hash)
	return r
}

// Seed reinitializes the generator from hash, discarding all prior state.
func (r *Rand) Seed(hash string) {
	r.hash = hash
	r.digest = xxhash.Sum64String(hash)
	r.src = rand.New(rand.NewPCG(r.digest, r.digest^0xdeadbeef))
	r.draws = 0
}

// Hash returns the string the generator was seeded with.
func (r *Rand) Hash() string {
	return r.hash
}

// Fingerprint returns a short, stable hex digest of the seed string,
// suitable for file names.
func (r *Rand) Fingerprint() string {
	return Fingerprint(r.hash)
}

// Fingerprint returns the short hex digest of hash used in file names.
func Fingerprint(hash string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(hash))[:10]
}

// Next returns a float64 in [0,1).
func (r *Rand) Next() float64 {
	r.draws++
	return r.src.Float64()
}

// Int returns floor(Next()*bound), an int in [0,bound).
// A non-positive bound returns 0 without consuming a draw.
func (r *Rand) Int(bound int) int {
	if bound <= 0 {
		return 0
	}
	return int(r.Next() * float64(bound))
}

// Bool returns Int(2) == 0.
func (r *Rand) Bool() bool {
	return r.Int(2) == 0
}

// Skip advances the generator by discarding n draws.
func (r *Rand) Skip(n int) {
	for range n {
		r.Next()
	}
}

// Draws returns the number of values drawn since the generator was last seeded.
func (r *Rand) Draws() int {
	return r.draws
}

// Choice returns a uniformly chosen element of list.
// An empty list returns the zero value without consuming a draw.
func Choice[T any](r *Rand, list []T) T {
	var zero T
	if len(list) == 0 {
		return zero
	}
	return list[r.Int(len(list))]
}

// WeightedChoice returns an element of list chosen with the given integer
// weights. Missing weights default to 1 and negative weights count as 0.
// The pick is a linear scan for the first cumulative bucket exceeding a drawn
// integer in [0,total). If every weight is zero the choice falls back to
// [Choice].
func WeightedChoice[T any](r *Rand, list []T, weights []int) T {
	var zero T
	if len(list) == 0 {
		return zero
	}

	cumulative := make([]int, len(list))
	total := 0
	for i := range list {
		w := 1
		if i < len(weights) {
			w = max(weights[i], 0)
		}
		total += w
		cumulative[i] = total
	}
	if total == 0 {
		return Choice(r, list)
	}

	pick := r.Int(total)
	for i, c := range cumulative {
		if c > pick {
			return list[i]
		}
	}
	return list[len(list)-1]
}
