// Package render turns cube vertices into line draws on a drawing surface.
package render

import (
	"image/color"
	"math"

	"wirecube/internal/geom"
)

const (
	// Width and Height are the fixed dimensions of the drawing surface in pixels.
	Width  = 800
	Height = 800

	// Scale maps one model unit to pixels.
	Scale = 300
)

// Frame colors: opaque black background, opaque white edges.
var (
	Background = color.RGBA{0, 0, 0, 255}
	Foreground = color.RGBA{255, 255, 255, 255}
)

// Vertex2D is a projected point in surface pixel coordinates.
type Vertex2D struct {
	X, Y int
}

// Project drops z and maps x/y onto the surface, with y growing downwards.
func Project(v geom.Vertex3D) Vertex2D {
	return Vertex2D{
		X: int(math.Round(v.X()*Scale + Width/2)),
		Y: int(math.Round(-v.Y()*Scale + Height/2)),
	}
}
