package game

import (
	"errors"
	"fmt"

	"multilight/internal/config"
	"multilight/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const windowTitle = "Multiple Lights"

// SetupWindow creates the window and makes its GL context current.
func SetupWindow(settings *config.Settings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, settings.MSAASamples())

	width, height := settings.WindowSize()
	var monitor *glfw.Monitor
	if settings.Fullscreen() {
		monitor = glfw.GetPrimaryMonitor()
		if monitor != nil {
			mode := monitor.GetVideoMode()
			width, height = mode.Width, mode.Height
		}
	}

	window, err := glfw.CreateWindow(width, height, windowTitle, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	if settings.VSync() {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	return window, nil
}

// windowSurface exposes a glfw window to the graphics device.
type windowSurface struct {
	window *glfw.Window

	// windowed placement restored when leaving fullscreen
	x, y          int
	width, height int
}

var _ graphics.Surface = (*windowSurface)(nil)

func newWindowSurface(window *glfw.Window, settings *config.Settings) *windowSurface {
	s := &windowSurface{window: window}
	s.x, s.y = window.GetPos()
	s.width, s.height = settings.WindowSize()
	return s
}

func (s *windowSurface) FramebufferSize() (int, int) {
	return s.window.GetFramebufferSize()
}

func (s *windowSurface) Iconified() bool {
	return s.window.GetAttrib(glfw.Iconified) == glfw.True
}

func (s *windowSurface) SetFullscreen(enabled bool) error {
	if !enabled {
		s.window.SetMonitor(nil, s.x, s.y, s.width, s.height, 0)
		return nil
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return errors.New("no primary monitor")
	}
	if s.window.GetMonitor() == nil {
		s.x, s.y = s.window.GetPos()
		s.width, s.height = s.window.GetSize()
	}
	mode := monitor.GetVideoMode()
	s.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	return nil
}

func (s *windowSurface) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (s *windowSurface) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
