// Package term shows the cube in a terminal. The fixed pixel space of the
// surface is scaled down onto the character grid.
package term

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"wirecube/internal/frame"
	"wirecube/internal/render"
)

const cell = '█'

// Host uses a tcell screen as its window and ticks at a fixed rate.
type Host struct {
	fps       int
	logger    *slog.Logger
	newScreen func() (tcell.Screen, error)

	screen tcell.Screen
}

// New returns a host ticking fps times a second, clamped to 1..1000.
func New(fps int, logger *slog.Logger) *Host {
	fps = min(max(fps, 1), 1000)
	return &Host{fps: fps, logger: logger, newScreen: tcell.NewScreen}
}

// NewWithScreen uses s instead of the controlling terminal.
func NewWithScreen(s tcell.Screen, fps int, logger *slog.Logger) *Host {
	h := New(fps, logger)
	h.newScreen = func() (tcell.Screen, error) { return s, nil }
	return h
}

func (h *Host) Clock() frame.Clock { return frame.NewSystemClock() }

type window struct {
	screen tcell.Screen
	once   sync.Once
}

func (w *window) Destroy() {
	w.once.Do(w.screen.Fini)
}

// CreateWindow takes over the terminal. Title and size are ignored; the
// surface adapts to whatever the terminal offers.
func (h *Host) CreateWindow(title string, width, height int) (frame.Window, error) {
	s, err := h.newScreen()
	if err != nil {
		return nil, fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("screen start failed: %w", err)
	}
	s.HideCursor()
	h.screen = s
	h.logger.Debug("terminal acquired", "title", title)
	return &window{screen: s}, nil
}

func (h *Host) CreateSurface(w frame.Window) (render.Surface, error) {
	win, ok := w.(*window)
	if !ok {
		return nil, fmt.Errorf("unsupported window %T", w)
	}
	return NewSurface(win.screen, render.Width, render.Height), nil
}

// Run ticks onFrame until Esc, Ctrl-C or q is pressed or ctx is done.
func (h *Host) Run(ctx context.Context, onFrame func()) error {
	if h.screen == nil {
		return fmt.Errorf("term: no screen")
	}
	quit := make(chan struct{})
	go h.pollEvents(quit)

	ticker := time.NewTicker(time.Second / time.Duration(h.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			return nil
		case <-ticker.C:
			onFrame()
		}
	}
}

func (h *Host) pollEvents(quit chan<- struct{}) {
	defer close(quit)
	for {
		switch ev := h.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return
				}
			}
		case *tcell.EventResize:
			h.screen.Sync()
		}
	}
}

// Surface draws lines as runs of block characters.
type Surface struct {
	screen        tcell.Screen
	width, height int
	style         tcell.Style
}

// NewSurface maps a width x height pixel space onto the screen.
func NewSurface(s tcell.Screen, width, height int) *Surface {
	return &Surface{screen: s, width: width, height: height, style: tcell.StyleDefault}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *Surface) Clear(c color.RGBA) {
	s.style = tcell.StyleDefault.Background(toColor(c))
	s.screen.SetStyle(s.style)
	s.screen.Clear()
}

// DrawLine scales the endpoints to cells and rasterizes between them.
func (s *Surface) DrawLine(x1, y1, x2, y2 int, c color.RGBA) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	st := s.style.Foreground(toColor(c))
	render.Line(x1*cols/s.width, y1*rows/s.height, x2*cols/s.width, y2*rows/s.height, func(x, y int) {
		if x < 0 || x >= cols || y < 0 || y >= rows {
			return
		}
		s.screen.SetContent(x, y, cell, nil, st)
	})
}

func (s *Surface) Present() { s.screen.Show() }

func (s *Surface) Destroy() {}
