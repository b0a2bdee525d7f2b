package canvas

import (
	"fmt"
	"image"
)

// Kind tags the geometry of a [Shape].
type Kind int

const (
	KindRect Kind = iota
	KindCircle
)

// String returns "rect" or "circle".
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Shape is a region of the canvas. Circles are the ellipse inscribed in Rect.
type Shape struct {
	Kind Kind
	Rect image.Rectangle
}

// Contains reports whether p lies inside the shape.
func (s Shape) Contains(p image.Point) bool {
	if !p.In(s.Rect) {
		return false
	}
	if s.Kind != KindCircle {
		return true
	}
	// Compare pixel centres against the inscribed ellipse in doubled
	// coordinates to stay in integers.
	w, h := s.Rect.Dx(), s.Rect.Dy()
	cx := 2*(p.X-s.Rect.Min.X) + 1 - w
	cy := 2*(p.Y-s.Rect.Min.Y) + 1 - h
	return cx*cx*h*h+cy*cy*w*w <= w*w*h*h
}

// Moved returns the shape translated one pixel along d.
func (s Shape) Moved(d Direction) Shape {
	dx, dy := d.Delta()
	s.Rect = s.Rect.Add(image.Pt(dx, dy))
	return s
}

// Direction is one of the four axis-aligned movement directions.
type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
)

// Directions lists all four directions.
var Directions = []Direction{Right, Up, Left, Down}

// Delta returns the one-pixel offset of d in image coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Left:
		return -1, 0
	case Down:
		return 0, 1
	}
	return 0, 0
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}
