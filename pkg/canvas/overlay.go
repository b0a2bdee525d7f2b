package canvas

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Annotations are drawn on top of a frame by [Overlay].
type Annotations struct {
	Lines    []string          // text lines, top left
	Boxes    []image.Rectangle // outlined regions (element debug view)
	Swatches []color.Color     // colour chips, top right (palette debug view)
	Arrows   []Direction       // active flow directions, bottom left
}

const (
	lineHeight = 14
	padding    = 8
	swatchSize = 18
)

// Overlay returns a copy of img with the annotations drawn over it. The source
// image is not modified.
func Overlay(img image.Image, a Annotations) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(basicfont.Face7x13)
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	dc.SetLineWidth(1)
	for _, b := range a.Boxes {
		dc.DrawRectangle(float64(b.Min.X)+0.5, float64(b.Min.Y)+0.5, float64(b.Dx())-1, float64(b.Dy())-1)
		dc.SetRGBA(1, 0.2, 0.6, 0.9)
		dc.Stroke()
	}

	if len(a.Lines) > 0 {
		width := 0.0
		for _, line := range a.Lines {
			lw, _ := dc.MeasureString(line)
			width = max(width, lw)
		}
		dc.SetRGBA(0, 0, 0, 0.6)
		dc.DrawRectangle(padding/2, padding/2, width+padding, float64(len(a.Lines))*lineHeight+padding)
		dc.Fill()
		dc.SetRGB(1, 1, 1)
		for i, line := range a.Lines {
			dc.DrawString(line, padding, padding+float64(i+1)*lineHeight-2)
		}
	}

	for i, sw := range a.Swatches {
		x := w - padding - float64(len(a.Swatches)-i)*(swatchSize+2)
		dc.SetColor(sw)
		dc.DrawRectangle(x, padding, swatchSize, swatchSize)
		dc.FillPreserve()
		dc.SetRGB(1, 1, 1)
		dc.Stroke()
	}

	for i, d := range a.Arrows {
		drawArrow(dc, padding+12+float64(i)*28, h-padding-12, d)
	}
	return dc.Image()
}

func drawArrow(dc *gg.Context, cx, cy float64, d Direction) {
	dx, dy := d.Delta()
	const l = 10.0
	x0, y0 := cx-float64(dx)*l, cy-float64(dy)*l
	x1, y1 := cx+float64(dx)*l, cy+float64(dy)*l
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	dc.DrawLine(x0, y0, x1, y1)
	dc.Stroke()
	// head
	px, py := float64(-dy)*4, float64(dx)*4
	dc.MoveTo(x1, y1)
	dc.LineTo(x1-float64(dx)*5+px, y1-float64(dy)*5+py)
	dc.LineTo(x1-float64(dx)*5-px, y1-float64(dy)*5-py)
	dc.ClosePath()
	dc.Fill()
}
