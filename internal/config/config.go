package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Settings holds the process configuration. Values come from command line
// flags and some of them can be changed at runtime.
type Settings struct {
	mu sync.RWMutex

	windowWidth  int
	windowHeight int
	fullscreen   bool
	vsync        bool
	fpsLimit     int
	msaaSamples  int
	anisotropy   int

	ForceTier2 bool
	Seed       int64
	TextureDir string
	LogLevel   slog.Level
}

// Default returns the settings used when no flags are given.
func Default() *Settings {
	return &Settings{
		windowWidth:  900,
		windowHeight: 600,
		vsync:        true,
		fpsLimit:     0,
		msaaSamples:  4,
		anisotropy:   16,
		TextureDir:   "assets/textures",
		LogLevel:     slog.LevelInfo,
	}
}

// Parse builds Settings from command line arguments (without the program name).
func Parse(args []string, output io.Writer) (*Settings, error) {
	s := Default()

	fs := flag.NewFlagSet("multilight", flag.ContinueOnError)
	fs.SetOutput(output)

	width := fs.Int("width", s.windowWidth, "initial window width in pixels")
	height := fs.Int("height", s.windowHeight, "initial window height in pixels")
	fullscreen := fs.Bool("fullscreen", false, "start in full screen mode")
	vsync := fs.Bool("vsync", s.vsync, "synchronise buffer swaps with the display refresh")
	fpsLimit := fs.Int("fps-limit", s.fpsLimit, "frame rate cap when vsync is off (0 = unlimited)")
	msaa := fs.Int("msaa", s.msaaSamples, "multisample anti-aliasing samples (0 disables)")
	aniso := fs.Int("anisotropy", s.anisotropy, "maximum anisotropic filtering level")
	fs.BoolVar(&s.ForceTier2, "force-tier2", false, "pretend the hardware only supports tier-2 shading")
	fs.Int64Var(&s.Seed, "seed", 0, "random seed for light launch velocities (0 = time based)")
	fs.StringVar(&s.TextureDir, "textures", s.TextureDir, "directory holding the room color maps")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	level, err := parseLevel(*logLevel)
	if err != nil {
		return nil, err
	}
	s.LogLevel = level

	s.SetWindowSize(*width, *height)
	s.SetFullscreen(*fullscreen)
	s.SetVSync(*vsync)
	s.SetFPSLimit(*fpsLimit)
	s.SetMSAASamples(*msaa)
	s.SetAnisotropy(*aniso)

	return s, nil
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// WindowSize returns the windowed-mode client size
func (s *Settings) WindowSize() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windowWidth, s.windowHeight
}

// SetWindowSize sets the windowed-mode client size
func (s *Settings) SetWindowSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clamp to something a window manager will accept
	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}

	s.windowWidth = width
	s.windowHeight = height
}

// Fullscreen returns whether full screen mode is requested
func (s *Settings) Fullscreen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fullscreen
}

// SetFullscreen sets full screen mode
func (s *Settings) SetFullscreen(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullscreen = enabled
}

// VSync returns whether buffer swaps wait for vertical sync
func (s *Settings) VSync() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vsync
}

// SetVSync sets vertical sync
func (s *Settings) SetVSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vsync = enabled
}

// FPSLimit returns the frame cap; 0 means unlimited
func (s *Settings) FPSLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fpsLimit
}

// SetFPSLimit sets the frame cap
func (s *Settings) SetFPSLimit(limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	s.fpsLimit = limit
}

// MSAASamples returns the requested multisample count
func (s *Settings) MSAASamples() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.msaaSamples
}

// SetMSAASamples sets the multisample count, rounded down to a power of two
func (s *Settings) SetMSAASamples(samples int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if samples > 16 {
		samples = 16
	}
	p := 1
	for p*2 <= samples {
		p *= 2
	}
	if samples <= 1 {
		p = 0
	}

	s.msaaSamples = p
}

// Anisotropy returns the maximum anisotropic filtering level
func (s *Settings) Anisotropy() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.anisotropy
}

// SetAnisotropy sets the anisotropic filtering level
func (s *Settings) SetAnisotropy(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < 1 {
		level = 1
	}
	if level > 16 {
		level = 16
	}

	s.anisotropy = level
}
