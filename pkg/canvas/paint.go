package canvas

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/matzehuels/drift/pkg/prng"
)

// Scene describes the initial picture of a combination.
type Scene struct {
	Background color.Color
	Bottom     color.Color
	Top        color.Color
	Even       color.Color
	Odd        color.Color
	Block      int
	Kind       Kind
}

const (
	accentOneIn = 9
	gapOneIn    = 13
)

// Paint draws the initial scene: a background, a grid of Block-sized cells
// coloured Top above the horizon and Bottom below it, sparse Even/Odd accents
// in a checkerboard and occasional gaps. Accents and gaps draw from r.
func Paint(c *Canvas, s Scene, r *prng.Rand) {
	dc := gg.NewContextForRGBA(c.img)
	dc.SetColor(s.Background)
	dc.Clear()

	block := max(s.Block, 1)
	w, h := c.Width(), c.Height()
	horizon := h / 2

	for y := 0; y < h; y += block {
		for x := 0; x < w; x += block {
			if r.Int(gapOneIn) == 0 {
				continue
			}
			col := s.Top
			if y >= horizon {
				col = s.Bottom
			}
			if r.Int(accentOneIn) == 0 {
				if (x/block+y/block)%2 == 0 {
					col = s.Even
				} else {
					col = s.Odd
				}
			}
			dc.SetColor(col)
			fillCell(dc, s.Kind, float64(x), float64(y), float64(block))
		}
	}
}

func fillCell(dc *gg.Context, kind Kind, x, y, size float64) {
	switch kind {
	case KindCircle:
		dc.DrawCircle(x+size/2, y+size/2, size/2)
	default:
		dc.DrawRectangle(x, y, size, size)
	}
	dc.Fill()
}
