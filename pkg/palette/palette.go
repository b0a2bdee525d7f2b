package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of colours a palette needs to fill every role.
const Size = 5

// Palette is a named, ordered list of colours.
type Palette struct {
	Name   string
	Colors []colorful.Color
}

// FromHex builds a palette from hex strings such as "#1b2a41".
func FromHex(name string, hexes ...string) (Palette, error) {
	p := Palette{Name: name, Colors: make([]colorful.Color, len(hexes))}
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: colour %d: %w", name, i, err)
		}
		p.Colors[i] = c
	}
	return p, nil
}

func mustHex(name string, hexes ...string) Palette {
	p, err := FromHex(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Hexes returns the palette colours as lowercase hex strings.
func (p Palette) Hexes() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Hex()
	}
	return out
}

var curated = []Palette{
	mustHex("dusk", "#1b2a41", "#324a5f", "#ccc9dc", "#e4b363", "#e97f5b"),
	mustHex("moss", "#2f3e2e", "#59704b", "#a3b18a", "#dad7cd", "#f1ece2"),
	mustHex("harbor", "#0b3954", "#087e8b", "#bfd7ea", "#ff5a5f", "#c81d25"),
	mustHex("ember", "#231a1a", "#5e1f1c", "#a4372b", "#e2773b", "#f6c77b", "#fff3d6"),
	mustHex("lichen", "#e9edc9", "#ccd5ae", "#fefae0", "#faedcd", "#d4a373"),
	mustHex("tide", "#03045e", "#0077b6", "#00b4d8", "#90e0ef", "#caf0f8"),
	mustHex("orchard", "#3d405b", "#81b29a", "#f2cc8f", "#e07a5f", "#f4f1de"),
	mustHex("ash", "#111111", "#3a3a3a", "#7a7a7a", "#bdbdbd", "#efefef", "#d94f30"),
}

// Curated returns the built-in palettes. The slice is shared; do not modify it.
func Curated() []Palette {
	return curated
}

// Lookup returns the curated palette with the given name.
func Lookup(name string) (Palette, bool) {
	for _, p := range curated {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}
