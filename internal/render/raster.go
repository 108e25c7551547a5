package render

import (
	"image"
	"image/color"
	"math"
)

// Line walks from (x1, y1) to (x2, y2) with a DDA and calls plot for every
// step, endpoints included.
func Line(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		plot(x1, y1)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		plot(int(math.Round(x)), int(math.Round(y)))
		x += xInc
		y += yInc
	}
}

// Canvas is a software Surface backed by an RGBA image.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a width x height canvas with all pixels transparent.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image. It is overwritten by the next frame.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills every pixel with col.
func (c *Canvas) Clear(col color.RGBA) {
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// DrawLine rasterizes the segment, clipping pixels outside the image.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.RGBA) {
	b := c.img.Bounds()
	Line(x1, y1, x2, y2, func(x, y int) {
		if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
			return
		}
		offset := c.img.PixOffset(x, y)
		c.img.Pix[offset] = col.R
		c.img.Pix[offset+1] = col.G
		c.img.Pix[offset+2] = col.B
		c.img.Pix[offset+3] = col.A
	})
}

// Present is a no-op; the image is readable as soon as it is drawn.
func (c *Canvas) Present() {}

// Destroy is a no-op; the image is left to the garbage collector.
func (c *Canvas) Destroy() {}
