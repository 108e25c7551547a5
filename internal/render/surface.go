package render

import "image/color"

// LineDrawer is the single primitive the edge renderer needs.
type LineDrawer interface {
	DrawLine(x1, y1, x2, y2 int, c color.RGBA)
}

// Surface is a frame buffer owned by a window.
type Surface interface {
	LineDrawer
	Clear(c color.RGBA)
	// Present makes the frame visible. Drawing after Present starts a new frame.
	Present()
	// Destroy releases the surface. The owning window must outlive it.
	Destroy()
}
