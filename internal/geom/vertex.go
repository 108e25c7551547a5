// Package geom holds the vertex type and the axis rotations applied to it.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex3D is a point in model space.
type Vertex3D = mgl64.Vec3

// RotateX rotates every vertex in place around the X axis.
func RotateX(vs []Vertex3D, rad float64) {
	apply(vs, mgl64.Rotate3DX(rad))
}

// RotateY rotates every vertex in place around the Y axis.
func RotateY(vs []Vertex3D, rad float64) {
	apply(vs, mgl64.Rotate3DY(rad))
}

// RotateZ rotates every vertex in place around the Z axis.
func RotateZ(vs []Vertex3D, rad float64) {
	apply(vs, mgl64.Rotate3DZ(rad))
}

func apply(vs []Vertex3D, m mgl64.Mat3) {
	for i := range vs {
		vs[i] = m.Mul3x1(vs[i])
	}
}

// Radius returns the distance of v from the origin.
func Radius(v Vertex3D) float64 {
	return v.Len()
}

// ApproxEqual reports whether a and b agree component-wise within eps.
func ApproxEqual(a, b Vertex3D, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
