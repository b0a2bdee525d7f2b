package slotgraph

import (
	"strings"
	"testing"

	"github.com/matzehuels/drift/pkg/combination"
)

func testTree(t *testing.T) combination.Slot {
	t.Helper()
	must := func(s combination.Slot, err error) combination.Slot {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
	a := must(combination.Number("a", 3))
	b := must(combination.Set("b", []string{"x", "y", "z", "w"}))
	pick := must(combination.Collection("pick", []combination.Slot{a, b}, 1, 2))
	order := must(combination.Set("order", []string{"up", "down"}))
	return must(combination.Features("root", pick, order))
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testTree(t), Options{})

	for _, want := range []string{
		"digraph G {",
		`"root" [label="root\nfeatures × 22"`,
		`"root/pick" [label="pick\ncollection × 11", style="rounded,filled,dashed"`,
		`"root/pick/b" [label="b\nset × 4"]`,
		`"root" -> "root/pick";`,
		`"root/pick" -> "root/pick/a" [label="w=1"];`,
		`"root/pick" -> "root/pick/b" [label="w=2"];`,
		`"root" -> "root/order";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `\nx\n`) {
		t.Error("labels listed without Detailed")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testTree(t), Options{Detailed: true, MaxLabels: 2})

	if !strings.Contains(dot, `"root/pick/b" [label="b\nset × 4\nx\ny\n… 2 more"]`) {
		t.Errorf("leaf labels not elided:\n%s", dot)
	}
	if !strings.Contains(dot, `"root/order" [label="order\nset × 2\nup\ndown"]`) {
		t.Errorf("short leaf not listed in full:\n%s", dot)
	}
}

func TestToDOTNil(t *testing.T) {
	if got := ToDOT(nil, Options{}); !strings.HasSuffix(got, "}\n") || strings.Contains(got, "->") {
		t.Errorf("nil tree: %q", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewritten",
			in:   `<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44"><g/></svg>`,
		},
		{
			name: "no viewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "zero size",
			in:   `<svg viewBox="0 0 0 10"></svg>`,
			want: `<svg viewBox="0 0 0 10"></svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
