// Package headless renders frames off-screen with gg and saves the last one
// as a PNG. Frame timing comes from a fixed-step clock, so output is
// reproducible.
package headless

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"

	"wirecube/internal/frame"
	"wirecube/internal/render"
)

// Host is a window provider, clock and scheduler without a display.
type Host struct {
	frames int
	output string
	clock  *frame.StepClock
	logger *slog.Logger

	surface *Surface
}

func New(frames, fps int, output string, logger *slog.Logger) *Host {
	return &Host{
		frames: frames,
		output: output,
		clock:  frame.NewStepClock(fps),
		logger: logger,
	}
}

func (h *Host) Clock() frame.Clock { return h.clock }

type window struct {
	title         string
	width, height int
}

func (w *window) Destroy() {}

func (h *Host) CreateWindow(title string, width, height int) (frame.Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", width, height)
	}
	return &window{title: title, width: width, height: height}, nil
}

func (h *Host) CreateSurface(w frame.Window) (render.Surface, error) {
	win, ok := w.(*window)
	if !ok {
		return nil, fmt.Errorf("unsupported window %T", w)
	}
	h.surface = NewSurface(win.width, win.height)
	return h.surface, nil
}

// Run calls onFrame for the configured number of frames, advancing the
// clock one step after each, then writes the final frame to the output path.
func (h *Host) Run(ctx context.Context, onFrame func()) error {
	if h.surface == nil {
		return errors.New("headless: no surface")
	}
	for i := 0; i < h.frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		onFrame()
		h.clock.Tick()
	}
	if err := h.surface.Err(); err != nil {
		return fmt.Errorf("headless: drawing failed: %w", err)
	}
	if err := h.surface.SavePNG(h.output); err != nil {
		return fmt.Errorf("headless: failed to save snapshot: %w", err)
	}
	h.logger.Info("snapshot written", "path", h.output, "frames", h.frames)
	return nil
}

// Surface draws with a software gg context.
type Surface struct {
	dc       *gg.Context
	err      error
	presents int
}

func NewSurface(width, height int) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	return &Surface{dc: dc}
}

func (s *Surface) Clear(c color.RGBA) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

// DrawLine strokes through pixel centers so one-pixel lines stay sharp.
func (s *Surface) DrawLine(x1, y1, x2, y2 int, c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.DrawLine(float64(x1)+0.5, float64(y1)+0.5, float64(x2)+0.5, float64(y2)+0.5)
	if err := s.dc.Stroke(); err != nil && s.err == nil {
		s.err = err
	}
}

func (s *Surface) Present() { s.presents++ }

func (s *Surface) Destroy() {
	_ = s.dc.Close()
}

// Presents is the number of completed frames.
func (s *Surface) Presents() int { return s.presents }

// Err returns the first drawing error, if any.
func (s *Surface) Err() error { return s.err }

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) SavePNG(path string) error { return s.dc.SavePNG(path) }
