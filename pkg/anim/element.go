package anim

import "github.com/matzehuels/drift/pkg/canvas"

// Element is a moving region of the canvas.
type Element struct {
	Shape     canvas.Shape
	Direction canvas.Direction
	Distance  int // remaining travel in pixels
	done      bool
}

// Step moves the element one pixel and recolours the pixels it carries.
// It reports false, without touching the canvas, once the distance budget is
// spent or when the move would leave the canvas.
func (e *Element) Step(c *canvas.Canvas, tone canvas.Tone) bool {
	if e.Distance <= 0 {
		return false
	}
	if !c.Shift(e.Shape, e.Direction, tone) {
		e.Distance = 0
		return false
	}
	e.Shape = e.Shape.Moved(e.Direction)
	e.Distance--
	return true
}

// Done reports whether the last step finished the element.
func (e *Element) Done() bool { return e.done }
