package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/matzehuels/drift/pkg/prng"
)

var (
	red   = color.RGBA{R: 200, A: 255}
	black = color.RGBA{A: 255}
)

func TestNew(t *testing.T) {
	c := New(0, -4)
	if c.Width() != 1 || c.Height() != 1 {
		t.Errorf("New(0,-4) = %dx%d, want 1x1", c.Width(), c.Height())
	}
	if got := c.At(0, 0); got != black {
		t.Errorf("At(0,0) = %v, want black", got)
	}
}

func TestShiftRect(t *testing.T) {
	c := New(10, 10)
	s := Shape{Kind: KindRect, Rect: image.Rect(2, 2, 4, 4)}
	fillShape(c, s, red)

	if !c.Shift(s, Right, Tone{}) {
		t.Fatal("Shift reported out of bounds")
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{2, 2, red}, // trailing smear keeps the old colour
		{3, 2, red},
		{4, 2, red},
		{5, 2, black},
		{4, 4, black},
	}
	for _, tt := range tests {
		if got := c.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestShiftOutOfBounds(t *testing.T) {
	c := New(10, 10)
	before := c.Clone()
	tests := []struct {
		name string
		rect image.Rectangle
		dir  Direction
	}{
		{"right edge", image.Rect(8, 0, 10, 2), Right},
		{"top edge", image.Rect(0, 0, 2, 2), Up},
		{"left edge", image.Rect(0, 5, 2, 7), Left},
		{"bottom edge", image.Rect(5, 8, 7, 10), Down},
		{"empty", image.Rectangle{}, Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c.Shift(Shape{Rect: tt.rect}, tt.dir, DefaultTone(0.1)) {
				t.Error("Shift should refuse to leave the canvas")
			}
		})
	}
	for i := range c.img.Pix {
		if c.img.Pix[i] != before.img.Pix[i] {
			t.Fatal("refused shift mutated the canvas")
		}
	}
}

func TestShiftRecolours(t *testing.T) {
	c := New(4, 4)
	s := Shape{Rect: image.Rect(0, 0, 1, 1)}
	c.img.SetRGBA(0, 0, color.RGBA{R: 100, G: 100, B: 100, A: 255})

	c.Shift(s, Down, Tone{Step: 0.1, Min: 0, Max: 1})
	got := c.At(0, 1)
	if got.R <= 100 || got.R != got.G || got.G != got.B {
		t.Errorf("recoloured grey = %v, want a lighter grey", got)
	}
}

func TestCircleContains(t *testing.T) {
	s := Shape{Kind: KindCircle, Rect: image.Rect(0, 0, 8, 8)}
	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(4, 4), true},
		{image.Pt(0, 4), true},
		{image.Pt(0, 0), false},
		{image.Pt(7, 7), false},
		{image.Pt(8, 4), false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestToneWraps(t *testing.T) {
	tone := Tone{Step: 0.3, Min: 0.2, Max: 0.8}
	tests := []struct{ in, want float64 }{
		{0.4, 0.7},
		{0.7, 0.4},
		{0.8, 0.5},
		{0.1, 0.4},
	}
	for _, tt := range tests {
		if got := tone.wrap(tt.in + tone.Step); abs(got-tt.want) > 1e-9 {
			t.Errorf("wrap(%v+step) = %v, want %v", tt.in, got, tt.want)
		}
	}
	px := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got := (Tone{}).Apply(px); got != px {
		t.Errorf("zero tone changed %v to %v", px, got)
	}
}

func TestDirections(t *testing.T) {
	sum := image.Point{}
	for _, d := range Directions {
		dx, dy := d.Delta()
		if abs(float64(dx))+abs(float64(dy)) != 1 {
			t.Errorf("%s: delta (%d,%d) is not a unit step", d, dx, dy)
		}
		sum = sum.Add(image.Pt(dx, dy))
	}
	if sum != (image.Point{}) {
		t.Errorf("deltas do not cancel: %v", sum)
	}
}

func TestPaintDeterministic(t *testing.T) {
	scene := Scene{
		Background: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		Bottom:     color.RGBA{R: 200, G: 80, B: 40, A: 255},
		Top:        color.RGBA{R: 40, G: 80, B: 200, A: 255},
		Even:       color.RGBA{R: 240, G: 240, B: 200, A: 255},
		Odd:        color.RGBA{R: 10, G: 160, B: 90, A: 255},
		Block:      8,
		Kind:       KindRect,
	}
	a, b := New(64, 48), New(64, 48)
	Paint(a, scene, prng.New("paint"))
	Paint(b, scene, prng.New("paint"))
	for i := range a.img.Pix {
		if a.img.Pix[i] != b.img.Pix[i] {
			t.Fatal("Paint is not deterministic for a fixed seed")
		}
	}
	for i := 3; i < len(a.img.Pix); i += 4 {
		if a.img.Pix[i] != 255 {
			t.Fatal("Paint produced a transparent pixel")
		}
	}
}

func TestOverlayLeavesSource(t *testing.T) {
	c := New(120, 80)
	before := c.Clone()
	out := Overlay(c.Image(), Annotations{
		Lines:    []string{"drift", "frame 1"},
		Boxes:    []image.Rectangle{image.Rect(10, 10, 20, 20)},
		Swatches: []color.Color{red, black},
		Arrows:   []Direction{Right, Up},
	})
	if out.Bounds() != c.Bounds() {
		t.Errorf("overlay bounds = %v, want %v", out.Bounds(), c.Bounds())
	}
	for i := range c.img.Pix {
		if c.img.Pix[i] != before.img.Pix[i] {
			t.Fatal("Overlay modified the source image")
		}
	}
}

func fillShape(c *Canvas, s Shape, col color.RGBA) {
	for y := s.Rect.Min.Y; y < s.Rect.Max.Y; y++ {
		for x := s.Rect.Min.X; x < s.Rect.Max.X; x++ {
			if s.Contains(image.Pt(x, y)) {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
