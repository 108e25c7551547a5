package frame

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wirecube/internal/render"
	"wirecube/internal/shape"
)

type manualClock struct{ now int64 }

func (c *manualClock) NowMillis() int64 { return c.now }

type fakeWindow struct {
	log *[]string
}

func (w *fakeWindow) Destroy() { *w.log = append(*w.log, "destroy window") }

type fakeSurface struct {
	log   *[]string
	lines int
}

func (s *fakeSurface) Clear(c color.RGBA) {
	*s.log = append(*s.log, "clear")
	s.lines = 0
}

func (s *fakeSurface) DrawLine(_, _, _, _ int, _ color.RGBA) { s.lines++ }

func (s *fakeSurface) Present() {
	*s.log = append(*s.log, "present")
}

func (s *fakeSurface) Destroy() { *s.log = append(*s.log, "destroy surface") }

type fakeProvider struct {
	log        []string
	windowErr  error
	surfaceErr error
	title      string
	w, h       int
	surface    *fakeSurface
}

func (p *fakeProvider) CreateWindow(title string, width, height int) (Window, error) {
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	p.title, p.w, p.h = title, width, height
	p.log = append(p.log, "create window")
	return &fakeWindow{log: &p.log}, nil
}

func (p *fakeProvider) CreateSurface(Window) (render.Surface, error) {
	if p.surfaceErr != nil {
		return nil, p.surfaceErr
	}
	p.log = append(p.log, "create surface")
	p.surface = &fakeSurface{log: &p.log}
	return p.surface, nil
}

type spyShape struct {
	elapsed []float64
}

func (s *spyShape) Update(e float64) { s.elapsed = append(s.elapsed, e) }

func (s *spyShape) Render(dst render.LineDrawer) {
	dst.DrawLine(0, 0, 1, 1, render.Foreground)
}

func TestDriver_Lifecycle(t *testing.T) {
	p := &fakeProvider{}
	d := NewDriver(shape.NewCube(), &manualClock{}, nil)
	assert.Equal(t, Uninitialized, d.State())

	require.NoError(t, d.Start(p))
	assert.Equal(t, Running, d.State())
	assert.Equal(t, Title, p.title)
	assert.Equal(t, 800, p.w)
	assert.Equal(t, 800, p.h)

	d.OnFrame()
	assert.Equal(t, 12, p.surface.lines)

	d.Stop()
	assert.Equal(t, Terminated, d.State())
	assert.Equal(t, []string{
		"create window", "create surface",
		"clear", "present",
		"destroy surface", "destroy window",
	}, p.log)

	// no-ops once terminated
	d.OnFrame()
	d.Stop()
	assert.Len(t, p.log, 6)
	assert.Equal(t, uint64(1), d.Frames())
	assert.Error(t, d.Start(p))
}

func TestDriver_WindowFailure(t *testing.T) {
	boom := errors.New("no display")
	p := &fakeProvider{windowErr: boom}
	d := NewDriver(shape.NewCube(), &manualClock{}, nil)

	err := d.Start(p)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, Uninitialized, d.State())
	assert.Empty(t, p.log)

	d.OnFrame()
	assert.Zero(t, d.Frames())
}

func TestDriver_SurfaceFailureReleasesWindow(t *testing.T) {
	boom := errors.New("no renderer")
	p := &fakeProvider{surfaceErr: boom}
	d := NewDriver(shape.NewCube(), &manualClock{}, nil)

	err := d.Start(p)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "drawing surface")
	assert.Equal(t, Uninitialized, d.State())
	assert.Equal(t, []string{"create window", "destroy window"}, p.log)
}

func TestDriver_ElapsedFromClock(t *testing.T) {
	clock := &manualClock{now: 5000}
	s := &spyShape{}
	d := NewDriver(s, clock, nil)
	require.NoError(t, d.Start(&fakeProvider{}))

	d.OnFrame()
	clock.now += 16
	d.OnFrame()
	d.OnFrame()
	clock.now += 1000
	d.OnFrame()

	assert.Equal(t, []float64{0, 0.016, 0, 1}, s.elapsed)
	assert.Equal(t, uint64(4), d.Frames())
}

func TestDriver_ClockGoingBackwardsIsZero(t *testing.T) {
	clock := &manualClock{now: 100}
	s := &spyShape{}
	d := NewDriver(s, clock, nil)
	require.NoError(t, d.Start(&fakeProvider{}))

	d.OnFrame()
	clock.now = 50
	d.OnFrame()
	clock.now = 150
	d.OnFrame()

	assert.Equal(t, []float64{0, 0, 0.05}, s.elapsed)
}

func TestDriver_FrameOrder(t *testing.T) {
	p := &fakeProvider{}
	d := NewDriver(&spyShape{}, &manualClock{}, nil)
	require.NoError(t, d.Start(p))
	p.log = nil

	d.OnFrame()
	d.OnFrame()

	assert.Equal(t, []string{"clear", "present", "clear", "present"}, p.log)
	assert.Equal(t, 1, p.surface.lines)
}

func TestStepClock(t *testing.T) {
	c := NewStepClock(60)
	assert.Zero(t, c.NowMillis())
	c.Tick()
	c.Tick()
	assert.Equal(t, int64(33), c.NowMillis())
	for i := 0; i < 58; i++ {
		c.Tick()
	}
	assert.Equal(t, int64(1000), c.NowMillis())
}

func TestStepClock_UnevenRateKeepsRealTime(t *testing.T) {
	c := NewStepClock(700)
	var got []int64
	for i := 0; i < 7; i++ {
		c.Tick()
		got = append(got, c.NowMillis())
	}
	assert.Equal(t, []int64{1, 2, 4, 5, 7, 8, 10}, got)

	for i := 7; i < 700; i++ {
		c.Tick()
	}
	assert.Equal(t, int64(1000), c.NowMillis())
}

func TestStepClock_DriverSpeedMatchesRate(t *testing.T) {
	c := NewStepClock(700)
	s := &spyShape{}
	d := NewDriver(s, c, nil)
	require.NoError(t, d.Start(&fakeProvider{}))

	for i := 0; i < 701; i++ {
		d.OnFrame()
		c.Tick()
	}

	total := 0.0
	for _, e := range s.elapsed {
		total += e
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestSystemClock_Monotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.NowMillis()
	b := c.NowMillis()
	assert.GreaterOrEqual(t, b, a)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "State(9)", State(9).String())
}
