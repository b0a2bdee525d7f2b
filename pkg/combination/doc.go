// Package combination implements a mixed-radix combinatorial codec that maps a
// single integer "combination" to a tree of named feature variations.
//
// # Slots
//
// A [Slot] is one named, independently enumerable feature dimension. Four
// constructors describe the tree:
//
//   - [Number]: decodes combination mod k directly as the value
//   - [Set]: decodes combination mod k as an index into a fixed list
//   - [Collection]: concatenates sibling slots with integer weights; the
//     residual index selects the first child whose cumulative weighted
//     cardinality exceeds it
//   - [Features]: decodes independent children in sequence, each consuming
//     combination mod its own cardinality and passing the quotient on
//
// The total number of combinations of a tree is the cardinality of its root,
// computed once at construction.
//
// # Decoding
//
// Decoding is a pure, total function of the combination: it never consults a
// random source, and every int (including negative ones) wraps into [0,N):
//
//	block, _ := combination.Set("block", []int{4, 8, 16}, combination.Labels("small", "medium", "large"))
//	shape, _ := combination.Set("shape", []string{"rect", "circle"})
//	root, _ := combination.Features("features", block, shape)
//
//	v := root.Decode(4)
//	size, _ := combination.ValueAs[int](v.MustChild("block")) // 8
//
// # Errors
//
// Construction fails with an INVALID_CONFIGURATION error for empty slots,
// non-positive weights, duplicate child names and cardinality overflow.
package combination
