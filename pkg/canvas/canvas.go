package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is a fixed-size opaque pixel buffer.
type Canvas struct {
	img *image.RGBA
}

// New returns a black canvas of w by h pixels. Sizes below 1 are raised to 1.
func New(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	c.Fill(color.Black)
	return c
}

// Bounds returns the canvas rectangle, always anchored at the origin.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Width returns the width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image exposes the underlying buffer. Render adapters read it between ticks.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	img := image.NewRGBA(c.img.Bounds())
	copy(img.Pix, c.img.Pix)
	return &Canvas{img: img}
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// At returns the colour at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Shift moves the pixels covered by s one pixel along d and recolours them
// with t. Pixels left behind keep their colour, which produces the trailing
// smear. It reports false, leaving the canvas untouched, when the moved shape
// would leave the canvas.
func (c *Canvas) Shift(s Shape, d Direction, t Tone) bool {
	dst := s.Moved(d)
	if dst.Rect.Empty() || !dst.Rect.In(c.img.Bounds()) {
		return false
	}

	r := s.Rect
	buf := make([]color.RGBA, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			buf = append(buf, c.img.RGBAAt(x, y))
		}
	}

	dx, dy := d.Delta()
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px := buf[i]
			i++
			if !s.Contains(image.Pt(x, y)) {
				continue
			}
			c.img.SetRGBA(x+dx, y+dy, t.Apply(px))
		}
	}
	return true
}
