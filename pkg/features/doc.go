// Package features derives the concrete visual parameters of a drift
// combination.
//
// The combination space is the slot tree returned by [Slots]: palette, sort
// order, reference colour, flow, block size, shape, density, travel distances,
// tempo and tone, decoded in that order as a mixed-radix number. [Total] is the
// product of their cardinalities.
//
// [Derive] decodes a combination, resolves its palette (curated, or generated
// from the seeded PRNG), assigns the colour roles and builds the labels used
// for display and file naming:
//
//	r := prng.New(seed)
//	set, err := features.Derive(42, r, features.WithLogger(logger))
//	fmt.Println(set.Label, set.Filename())
//
// Derivation is reproducible: the same combination with a freshly seeded PRNG
// yields an identical [Set], and combination c and c+Total are equivalent.
package features
