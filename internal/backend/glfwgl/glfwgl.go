// Package glfwgl shows the cube in a GLFW window, drawing lines with an
// OpenGL 4.1 core profile context. All calls must come from the thread that
// runs main; the caller locks it with runtime.LockOSThread.
package glfwgl

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"wirecube/internal/frame"
	"wirecube/internal/render"
)

type Host struct {
	logger *slog.Logger
	window *window
}

func New(logger *slog.Logger) *Host {
	return &Host{logger: logger}
}

type clock struct{}

func (clock) NowMillis() int64 { return int64(glfw.GetTime() * 1000) }

// Clock reads the GLFW timer. It is only valid after CreateWindow.
func (h *Host) Clock() frame.Clock { return clock{} }

type window struct {
	w      *glfw.Window
	title  string
	width  int
	height int
}

func (w *window) Destroy() {
	w.w.Destroy()
	glfw.Terminate()
}

func (h *Host) CreateWindow(title string, width, height int) (frame.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create glfw window: %w", err)
	}

	h.window = &window{w: w, title: title, width: width, height: height}
	return h.window, nil
}

func (h *Host) CreateSurface(fw frame.Window) (render.Surface, error) {
	win, ok := fw.(*window)
	if !ok {
		return nil, fmt.Errorf("unsupported window %T", fw)
	}
	win.w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize gl: %w", err)
	}
	h.logger.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	// Present once per display refresh.
	glfw.SwapInterval(1)

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	gl.UseProgram(program)

	// Pixel coordinates with the origin at the top left.
	projection := mgl32.Ortho2D(0, float32(win.width), float32(win.height), 0)
	projectionUniform := gl.GetUniformLocation(program, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projectionUniform, 1, false, &projection[0])

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(floatsPerVertex * 4)
	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))

	colAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vc\x00")))
	gl.EnableVertexAttribArray(colAttrib)
	gl.VertexAttribPointer(colAttrib, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.Disable(gl.DEPTH_TEST)

	return &surface{win: win.w, program: program, vao: vao, vbo: vbo}, nil
}

// Run polls events and calls onFrame once per buffer swap until the window
// is closed or ctx is done. The window title shows the frame rate.
func (h *Host) Run(ctx context.Context, onFrame func()) error {
	if h.window == nil {
		return errors.New("glfwgl: no window")
	}
	w := h.window.w

	lastFpsTime := glfw.GetTime()
	frameCount := 0

	for !w.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}

		onFrame()
		glfw.PollEvents()

		frameCount++
		if now := glfw.GetTime(); now-lastFpsTime >= 1.0 {
			w.SetTitle(fmt.Sprintf("%s | FPS: %d", h.window.title, frameCount))
			h.logger.Debug("frame rate", "fps", frameCount)
			frameCount = 0
			lastFpsTime = now
		}
	}
	h.logger.Info("window closed")
	return nil
}

type surface struct {
	win     *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32
	batch   lineBatch
}

func (s *surface) Clear(c color.RGBA) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	s.batch.reset()
}

func (s *surface) DrawLine(x1, y1, x2, y2 int, c color.RGBA) {
	s.batch.add(x1, y1, x2, y2, c)
}

// Present uploads the queued lines, draws them and swaps buffers.
func (s *surface) Present() {
	if n := s.batch.vertices(); n > 0 {
		gl.UseProgram(s.program)
		gl.BindVertexArray(s.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(s.batch.data)*4, gl.Ptr(s.batch.data), gl.STREAM_DRAW)
		gl.DrawArrays(gl.LINES, 0, n)
	}
	s.batch.reset()
	s.win.SwapBuffers()
}

func (s *surface) Destroy() {
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)
}
