// Package shape holds the rotating cube.
package shape

import (
	"wirecube/internal/geom"
	"wirecube/internal/render"
)

// RotationSpeed is the base angular rate in radians per second.
const RotationSpeed = 0.5

// Per-axis multipliers of RotationSpeed.
const (
	RateX = 1.0
	RateY = 0.6
	RateZ = 0.2
)

// Cube is a unit cube centered at the origin. Rotations are applied to the
// live vertices, so orientation accumulates frame over frame.
type Cube struct {
	points [8]geom.Vertex3D
	angle  float64
}

// NewCube returns a cube in its initial orientation.
func NewCube() *Cube {
	return &Cube{
		points: [8]geom.Vertex3D{
			{-0.5, -0.5, -0.5},
			{0.5, -0.5, -0.5},
			{0.5, 0.5, -0.5},
			{-0.5, 0.5, -0.5},
			{-0.5, -0.5, 0.5},
			{0.5, -0.5, 0.5},
			{0.5, 0.5, 0.5},
			{-0.5, 0.5, 0.5},
		},
	}
}

// Update advances the rotation by elapsed seconds. Negative values are
// treated as zero.
func (c *Cube) Update(elapsed float64) {
	if elapsed <= 0 {
		return
	}
	rad := RotationSpeed * elapsed
	c.angle += rad
	c.Rotate(rad*RateX, rad*RateY, rad*RateZ)
}

// Rotate applies X, Y then Z rotations by the given angles.
func (c *Cube) Rotate(x, y, z float64) {
	geom.RotateX(c.points[:], x)
	geom.RotateY(c.points[:], y)
	geom.RotateZ(c.points[:], z)
}

// Render draws the twelve edges. It does not clear or present.
func (c *Cube) Render(dst render.LineDrawer) {
	render.DrawEdges(dst, &c.points)
}

// Vertices returns a copy of the current vertices.
func (c *Cube) Vertices() [8]geom.Vertex3D { return c.points }

// Angle is the total rotation applied so far, in radians of the base rate.
func (c *Cube) Angle() float64 { return c.angle }
