package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/pflag"

	"wirecube/internal/backend/ebitenwin"
	"wirecube/internal/backend/glfwgl"
	"wirecube/internal/backend/headless"
	"wirecube/internal/backend/term"
	"wirecube/internal/config"
	"wirecube/internal/frame"
	"wirecube/internal/logging"
	"wirecube/internal/shape"
)

// host provides the window, the clock and the frame scheduling.
type host interface {
	frame.WindowProvider
	Clock() frame.Clock
	Run(ctx context.Context, onFrame func()) error
}

func main() {
	// GLFW and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func newHost(cfg *config.Config, logger *slog.Logger) (host, *slog.Logger) {
	switch cfg.Backend {
	case config.BackendEbiten:
		return ebitenwin.New(logger), logger
	case config.BackendTerminal:
		// stderr shares the terminal with the screen
		quiet := logging.Discard()
		return term.New(cfg.Terminal.FPS, quiet), quiet
	case config.BackendHeadless:
		return headless.New(cfg.Headless.Frames, cfg.Headless.FPS, cfg.Headless.Output, logger), logger
	default:
		return glfwgl.New(logger), logger
	}
}

// run starts the driver on the configured backend and blocks until the host
// shuts down.
func run(cfg *config.Config, logger *slog.Logger) error {
	h, logger := newHost(cfg, logger)
	logger.Info("starting", "backend", cfg.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := frame.NewDriver(shape.NewCube(), h.Clock(), logger)
	if err := d.Start(h); err != nil {
		return err
	}
	defer d.Stop()

	err := h.Run(ctx, d.OnFrame)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}
