// Package config loads the runtime options. Geometry, window size and
// rotation rates are compile-time constants and are not configurable.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Backend names.
const (
	BackendGLFW     = "glfw"
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

// MaxFPS bounds the configurable frame rates so a frame interval is at least
// one millisecond.
const MaxFPS = 1000

// HeadlessConfig controls off-screen rendering.
type HeadlessConfig struct {
	Frames int    `mapstructure:"frames"`
	FPS    int    `mapstructure:"fps"`
	Output string `mapstructure:"output"`
}

// TerminalConfig controls the terminal backend.
type TerminalConfig struct {
	FPS int `mapstructure:"fps"`
}

type Config struct {
	Backend  string         `mapstructure:"backend"`
	LogLevel string         `mapstructure:"logLevel"`
	Headless HeadlessConfig `mapstructure:"headless"`
	Terminal TerminalConfig `mapstructure:"terminal"`
}

// Load reads options from args, then WIRECUBE_* environment variables, then
// defaults, in that order of precedence.
func Load(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("backend", BackendGLFW)
	v.SetDefault("logLevel", "info")
	v.SetDefault("headless.frames", 600)
	v.SetDefault("headless.fps", 60)
	v.SetDefault("headless.output", "wirecube.png")
	v.SetDefault("terminal.fps", 30)

	v.SetEnvPrefix("wirecube")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fs := pflag.NewFlagSet("wirecube", pflag.ContinueOnError)
	fs.String("backend", BackendGLFW, "window backend: glfw, ebiten, terminal or headless")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.Int("frames", 600, "frames to render in headless mode")
	fs.Int("fps", 60, "simulated frame rate in headless mode")
	fs.String("output", "wirecube.png", "PNG snapshot path in headless mode")
	fs.Int("terminal-fps", 30, "tick rate of the terminal backend")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	for key, flag := range map[string]string{
		"backend":         "backend",
		"logLevel":        "log-level",
		"headless.frames": "frames",
		"headless.fps":    "fps",
		"headless.output": "output",
		"terminal.fps":    "terminal-fps",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(c.Backend)
	switch c.Backend {
	case BackendGLFW, BackendEbiten, BackendTerminal, BackendHeadless:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Headless.Frames < 1 {
		return fmt.Errorf("headless frames must be positive, got %d", c.Headless.Frames)
	}
	if c.Headless.FPS < 1 || c.Headless.FPS > MaxFPS {
		return fmt.Errorf("headless fps must be in 1..%d, got %d", MaxFPS, c.Headless.FPS)
	}
	if c.Headless.Output == "" {
		return fmt.Errorf("headless output path is empty")
	}
	if c.Terminal.FPS < 1 || c.Terminal.FPS > MaxFPS {
		return fmt.Errorf("terminal fps must be in 1..%d, got %d", MaxFPS, c.Terminal.FPS)
	}
	return nil
}
