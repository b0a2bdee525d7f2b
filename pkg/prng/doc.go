// Package prng provides the seeded pseudo-random number generator that every
// randomized decision in drift routes through.
//
// # Seeding
//
// A generator is seeded from an opaque hash string (the fingerprint supplied by
// the hosting platform). The string is hashed with xxhash64 and the digest
// feeds a PCG source from math/rand/v2, so the same string yields the same
// sequence on every platform and every run:
//
//	r := prng.New("ooLwW3nvtFpgyRDf2ZYcqVfGkBwFpHrsqTq6j8TwwAHe2gyKEbc")
//	x := r.Next()          // float64 in [0,1)
//	i := r.Int(10)         // int in [0,10)
//	c := prng.Choice(r, []string{"a", "b", "c"})
//
// Re-seeding discards all previous state, including the draw counter.
//
// # Resynchronisation
//
// [Rand.Draws] reports how many values were drawn since the last seed and
// [Rand.Skip] discards draws. Together they let a caller reseed for an
// independent derivation and then restore its own position in the stream:
//
//	n := r.Draws()
//	r.Seed(hash)
//	set := derive(r)
//	r.Seed(hash)
//	r.Skip(n)
//
// A Rand is not safe for concurrent use.
package prng
