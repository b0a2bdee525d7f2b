package canvas

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Tone bumps the HSV value of a colour by Step, wrapping inside [Min, Max].
// Hue and saturation are left unchanged.
type Tone struct {
	Step float64
	Min  float64
	Max  float64
}

// DefaultTone returns a tone with the given step over the full value range.
func DefaultTone(step float64) Tone {
	return Tone{Step: step, Min: 0.12, Max: 0.98}
}

// Apply recolours an opaque pixel.
func (t Tone) Apply(px color.RGBA) color.RGBA {
	if t.Step == 0 || t.Max <= t.Min {
		return px
	}
	c := colorful.Color{R: float64(px.R) / 255, G: float64(px.G) / 255, B: float64(px.B) / 255}
	h, s, v := c.Hsv()
	v = t.wrap(v + t.Step)
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: px.A}
}

func (t Tone) wrap(v float64) float64 {
	span := t.Max - t.Min
	for v > t.Max {
		v -= span
	}
	for v < t.Min {
		v += span
	}
	return v
}
