package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/drift/pkg/prng"
)

// Families is the number of hue families a generated palette can anchor in.
const Families = 6

// FamilyNames labels the hue families in order.
var FamilyNames = [Families]string{"red", "amber", "green", "cyan", "blue", "violet"}

const (
	minHueDiff   = 0.3
	maxHueDiff   = 0.6
	hueAttempts  = 64
	fallbackTurn = 0.45
)

// Generate draws a palette of [Size] colours anchored in hue family
// family (wrapped modulo [Families]).
//
// A candidate hue is rejected when it is closer than 0.3 turns or further than
// 0.6 turns from the anchor. After 64 rejected draws the anchor hue shifted by
// 0.45 turns is used instead, so generation always terminates.
func Generate(family int, r *prng.Rand) Palette {
	family = ((family % Families) + Families) % Families
	anchor := (float64(family) + r.Next()) / Families

	colors := make([]colorful.Color, Size)
	colors[0] = hsv(anchor, r)
	for i := 1; i < Size; i++ {
		colors[i] = hsv(companionHue(anchor, r), r)
	}
	return Palette{
		Name:   fmt.Sprintf("generated-%s", FamilyNames[family]),
		Colors: colors,
	}
}

// companionHue draws a hue whose linear distance to anchor lies within
// [minHueDiff, maxHueDiff]. The distance is linear, not circular: hues near 0
// and near 1 count as far apart.
func companionHue(anchor float64, r *prng.Rand) float64 {
	for range hueAttempts {
		h := r.Next()
		diff := math.Abs(h - anchor)
		if diff < minHueDiff || diff > maxHueDiff {
			continue
		}
		return h
	}
	return math.Mod(anchor+fallbackTurn, 1)
}

// hsv draws saturation and value from fixed ranges; hue is in turns.
func hsv(hue float64, r *prng.Rand) colorful.Color {
	s := 0.35 + 0.5*r.Next()
	v := 0.3 + 0.65*r.Next()
	return colorful.Hsv(hue*360, s, v)
}
