// Package canvas holds the pixel buffer a drift scene is drawn into, the
// tagged shapes that moving elements occupy, and the shift-and-recolour
// operation that advances them.
//
// The buffer is an *image.RGBA so fogleman/gg can paint straight into it.
// Every pixel is opaque; [Tone] relies on that when it converts colours.
//
//	c := canvas.New(320, 200)
//	canvas.Paint(c, scene, r)
//	ok := c.Shift(canvas.Shape{Kind: canvas.KindRect, Rect: image.Rect(0, 0, 8, 8)}, canvas.Right, tone)
package canvas
