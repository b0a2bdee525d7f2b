// Package slotgraph renders a combination slot tree as a Graphviz diagram.
//
// # Overview
//
// The slot tree behind a piece is small but easy to get wrong: a weight
// that starves a palette family or a feature whose cardinality dominates
// the combination space is hard to see from numbers alone. This package
// draws the tree top to bottom, one box per slot, with collection edges
// labelled by their weight and every node annotated with its cardinality.
//
// # Usage
//
//	root, _ := features.Slots()
//	dot := slotgraph.ToDOT(root, slotgraph.Options{Detailed: true})
//	svg, err := slotgraph.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: leaf nodes list the labels of their variations
//   - MaxLabels: how many leaf labels are listed before eliding the rest
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. The DOT source can also be piped into the dot command.
package slotgraph
