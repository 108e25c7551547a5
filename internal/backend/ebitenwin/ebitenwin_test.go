package ebitenwin

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wirecube/internal/logging"
	"wirecube/internal/render"
)

type otherWindow struct{}

func (otherWindow) Destroy() {}

func TestCreateSurface_RejectsForeignWindow(t *testing.T) {
	h := New(logging.Discard())
	_, err := h.CreateSurface(otherWindow{})
	assert.Error(t, err)
}

func TestRun_RequiresSurface(t *testing.T) {
	h := New(logging.Discard())
	assert.Error(t, h.Run(context.Background(), func() {}))
}

func TestGame_UpdateTerminatesOnCancel(t *testing.T) {
	h := New(logging.Discard())
	s, err := h.CreateSurface(&window{width: render.Width, height: render.Height})
	require.NoError(t, err)
	require.Same(t, h.surface, s)

	ctx, cancel := context.WithCancel(context.Background())
	g := &game{ctx: ctx, surface: h.surface, onFrame: func() {}}

	assert.NoError(t, g.Update())
	cancel()
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}

func TestGame_LayoutIsFixed(t *testing.T) {
	g := &game{surface: &Surface{Canvas: render.NewCanvas(render.Width, render.Height)}}
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, render.Width, w)
	assert.Equal(t, render.Height, h)
}
