package slotgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/drift/pkg/combination"
)

// defaultMaxLabels is used when Options.MaxLabels is zero.
const defaultMaxLabels = 6

// Options configures slot tree rendering.
type Options struct {
	// Detailed lists the variation labels of leaf slots.
	// When false, only the slot name, kind and cardinality are shown.
	Detailed bool

	// MaxLabels bounds the labels listed per leaf. Zero uses a default of 6.
	MaxLabels int
}

// weighted is implemented by collection slots.
type weighted interface {
	Weights() []int
}

// ToDOT converts a slot tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Node ids are slash-separated slot paths, so two slots with the same name
// under different parents stay distinct. Collection nodes are drawn with a
// dashed outline and their edges carry the child's weight.
func ToDOT(root combination.Slot, opts Options) string {
	if opts.MaxLabels <= 0 {
		opts.MaxLabels = defaultMaxLabels
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if root != nil {
		var edges []string
		writeNode(&buf, &edges, root, root.Name(), opts)
		if len(edges) > 0 {
			buf.WriteString("\n")
			for _, e := range edges {
				buf.WriteString(e)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, edges *[]string, s combination.Slot, id string, opts Options) {
	fmt.Fprintf(buf, "  %q [%s];\n", id, strings.Join(fmtAttrs(s, opts), ", "))

	var weights []int
	if w, ok := s.(weighted); ok {
		weights = w.Weights()
	}
	for i, child := range s.Children() {
		childID := id + "/" + child.Name()
		if i < len(weights) {
			*edges = append(*edges, fmt.Sprintf("  %q -> %q [label=\"w=%d\"];\n", id, childID, weights[i]))
		} else {
			*edges = append(*edges, fmt.Sprintf("  %q -> %q;\n", id, childID))
		}
		writeNode(buf, edges, child, childID, opts)
	}
}

func fmtLabel(s combination.Slot, opts Options) string {
	label := fmt.Sprintf("%s\n%s × %d", s.Name(), s.Kind(), s.Cardinality())
	if !opts.Detailed || len(s.Children()) > 0 {
		return label
	}

	n := min(s.Cardinality(), opts.MaxLabels)
	parts := make([]string, 0, n+1)
	for i := range n {
		parts = append(parts, s.Decode(i).Label)
	}
	if s.Cardinality() > n {
		parts = append(parts, fmt.Sprintf("… %d more", s.Cardinality()-n))
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(s combination.Slot, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(s, opts))}
	switch s.Kind() {
	case combination.KindCollection:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	case combination.KindFeatures:
		attrs = append(attrs, "fillcolor=\"#e8eef7\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a plain
// viewBox so browsers scale the diagram.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
