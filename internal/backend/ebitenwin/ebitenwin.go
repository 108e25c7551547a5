// Package ebitenwin shows the cube in an Ebitengine window. Lines are
// rasterized on the CPU into a render.Canvas and uploaded once per frame.
package ebitenwin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"wirecube/internal/frame"
	"wirecube/internal/render"
)

type Host struct {
	logger  *slog.Logger
	surface *Surface
}

func New(logger *slog.Logger) *Host {
	return &Host{logger: logger}
}

func (h *Host) Clock() frame.Clock { return frame.NewSystemClock() }

type window struct {
	width, height int
}

// Destroy is a no-op: the window goes away when the game loop returns.
func (w *window) Destroy() {}

// CreateWindow configures the window. Ebitengine opens it when Run starts.
func (h *Host) CreateWindow(title string, width, height int) (frame.Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", width, height)
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetVsyncEnabled(true)
	return &window{width: width, height: height}, nil
}

func (h *Host) CreateSurface(w frame.Window) (render.Surface, error) {
	win, ok := w.(*window)
	if !ok {
		return nil, fmt.Errorf("unsupported window %T", w)
	}
	h.surface = &Surface{Canvas: render.NewCanvas(win.width, win.height)}
	return h.surface, nil
}

// Run blocks in the Ebitengine loop, calling onFrame from every Draw, until
// the window is closed or ctx is done.
func (h *Host) Run(ctx context.Context, onFrame func()) error {
	if h.surface == nil {
		return errors.New("ebitenwin: no surface")
	}
	g := &game{ctx: ctx, surface: h.surface, onFrame: onFrame}
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	h.logger.Debug("ebiten loop finished")
	return ctx.Err()
}

type game struct {
	ctx     context.Context
	surface *Surface
	onFrame func()
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.onFrame()
	if g.surface.img != nil {
		screen.DrawImage(g.surface.img, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.surface.Image().Bounds()
	return b.Dx(), b.Dy()
}

// Surface is a software canvas mirrored into a GPU image on Present.
type Surface struct {
	*render.Canvas
	img *ebiten.Image
}

func (s *Surface) Present() {
	src := s.Image()
	if s.img == nil {
		s.img = ebiten.NewImage(src.Bounds().Dx(), src.Bounds().Dy())
	}
	s.img.WritePixels(src.Pix)
}

func (s *Surface) Destroy() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}
