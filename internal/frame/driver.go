// Package frame drives the per-frame update, draw and present cycle.
package frame

import (
	"fmt"
	"log/slog"

	"wirecube/internal/render"
)

// Title is the window title requested on Start.
const Title = "3D Shape Demo"

// State is the lifecycle state of a Driver.
type State int

const (
	Uninitialized State = iota
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Shape is anything that can advance in time and draw itself as lines.
type Shape interface {
	Update(elapsed float64)
	Render(dst render.LineDrawer)
}

// Window is a platform window handle.
type Window interface {
	Destroy()
}

// WindowProvider acquires a window and the drawing surface attached to it.
type WindowProvider interface {
	CreateWindow(title string, width, height int) (Window, error)
	CreateSurface(w Window) (render.Surface, error)
}

// Driver owns the window, the surface and the frame timing. It never runs a
// loop of its own: the host scheduler calls OnFrame once per display frame.
type Driver struct {
	shape  Shape
	clock  Clock
	logger *slog.Logger

	state   State
	window  Window
	surface render.Surface

	last    int64
	started bool
	frames  uint64
}

// NewDriver returns an Uninitialized driver for shape timed by clock.
// A nil logger discards output.
func NewDriver(shape Shape, clock Clock, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Driver{shape: shape, clock: clock, logger: logger}
}

// Start acquires the window and its surface and enters Running.
func (d *Driver) Start(p WindowProvider) error {
	if d.state != Uninitialized {
		return fmt.Errorf("start: driver is %s", d.state)
	}

	w, err := p.CreateWindow(Title, render.Width, render.Height)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	s, err := p.CreateSurface(w)
	if err != nil {
		w.Destroy()
		return fmt.Errorf("failed to create drawing surface: %w", err)
	}

	d.window = w
	d.surface = s
	d.state = Running
	d.logger.Info("frame driver running", "width", render.Width, "height", render.Height)
	return nil
}

// OnFrame advances the shape by the time since the previous frame and draws
// one complete frame. The first frame has zero elapsed time.
func (d *Driver) OnFrame() {
	if d.state != Running {
		return
	}

	d.shape.Update(d.elapsed())

	d.surface.Clear(render.Background)
	d.shape.Render(d.surface)
	d.surface.Present()
	d.frames++
}

func (d *Driver) elapsed() float64 {
	now := d.clock.NowMillis()
	if !d.started {
		d.started = true
		d.last = now
		return 0
	}
	delta := now - d.last
	if delta < 0 {
		d.logger.Warn("clock went backwards", "last", d.last, "now", now)
		delta = 0
	} else {
		d.last = now
	}
	return float64(delta) / 1000
}

// Stop releases the surface and then the window.
func (d *Driver) Stop() {
	if d.state != Running {
		return
	}
	d.surface.Destroy()
	d.window.Destroy()
	d.surface = nil
	d.window = nil
	d.state = Terminated
	d.logger.Info("frame driver terminated", "frames", d.frames)
}

func (d *Driver) State() State { return d.state }

// Frames is the number of frames presented so far.
func (d *Driver) Frames() uint64 { return d.frames }
