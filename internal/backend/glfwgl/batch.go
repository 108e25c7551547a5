package glfwgl

import "image/color"

// floatsPerVertex is x, y, r, g, b, a.
const floatsPerVertex = 6

// lineBatch accumulates GL_LINES vertex data for one frame.
type lineBatch struct {
	data []float32
}

// add appends a segment. Coordinates are shifted to pixel centers.
func (b *lineBatch) add(x1, y1, x2, y2 int, c color.RGBA) {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	bl := float32(c.B) / 255
	a := float32(c.A) / 255
	b.data = append(b.data,
		float32(x1)+0.5, float32(y1)+0.5, r, g, bl, a,
		float32(x2)+0.5, float32(y2)+0.5, r, g, bl, a,
	)
}

func (b *lineBatch) reset() { b.data = b.data[:0] }

func (b *lineBatch) vertices() int32 { return int32(len(b.data) / floatsPerVertex) }
