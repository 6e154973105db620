// Package scene holds the simulation state of the room: the camera, the
// lights, the technique selector and the display toggles. The frame loop owns
// one Scene and passes it to whoever needs it.
package scene

import (
	"math/rand"

	"multilight/internal/camera"
	"multilight/internal/config"
	"multilight/internal/light"
	"multilight/internal/logging"
	"multilight/internal/profiling"
	"multilight/internal/shading"
	"multilight/internal/technique"

	"github.com/go-gl/mathgl/mgl32"
)

// Command is a discrete user command.
type Command int

const (
	ToggleAnimation Command = iota
	IncreaseRadius
	DecreaseRadius
	ToggleHelp
	ToggleMarkers
	TogglePassMode
	ToggleTier
	ToggleTexturing
	ToggleFullscreen
	ToggleVSync
	Quit
	CommandCount
)

var commandNames = [CommandCount]string{
	ToggleAnimation:  "toggle animation",
	IncreaseRadius:   "increase radius",
	DecreaseRadius:   "decrease radius",
	ToggleHelp:       "toggle help",
	ToggleMarkers:    "toggle markers",
	TogglePassMode:   "toggle pass mode",
	ToggleTier:       "toggle tier",
	ToggleTexturing:  "toggle texturing",
	ToggleFullscreen: "toggle fullscreen",
	ToggleVSync:      "toggle vsync",
	Quit:             "quit",
}

func (c Command) String() string {
	if c < 0 || c >= CommandCount {
		return "unknown command"
	}
	return commandNames[c]
}

// Options configures a new Scene.
type Options struct {
	Capabilities technique.Capabilities
	Rand         *rand.Rand
}

// Scene is the explicit simulation context.
type Scene struct {
	Camera   *camera.Camera
	Lights   *light.Simulator
	Selector *technique.Selector

	WallMaterial    shading.Material
	CeilingMaterial shading.Material
	FloorMaterial   shading.Material
	GlobalAmbient   mgl32.Vec4

	Animate   bool
	Markers   bool
	Help      bool
	Texturing bool

	fullscreen bool
	vsync      bool
	quit       bool
}

// New creates a scene with every light launched from the room centre.
func New(opts Options) *Scene {
	s := &Scene{
		Camera:          camera.New(),
		Lights:          light.NewSimulator(light.SimulatorOptions{Rand: opts.Rand}),
		Selector:        technique.NewSelector(opts.Capabilities),
		WallMaterial:    shading.Dull,
		CeilingMaterial: shading.Shiny,
		FloorMaterial:   shading.Shiny,
		GlobalAmbient:   shading.GlobalAmbient,
		Animate:         true,
		Markers:         true,
		Texturing:       true,
	}
	s.Lights.SpawnAll()
	return s
}

// Apply executes a command. Commands that cannot apply in the current state
// are ignored.
func (s *Scene) Apply(cmd Command) {
	switch cmd {
	case ToggleAnimation:
		s.Animate = !s.Animate
	case IncreaseRadius:
		s.Lights.AdjustRadius(config.LightRadiusStep)
	case DecreaseRadius:
		s.Lights.AdjustRadius(-config.LightRadiusStep)
	case ToggleHelp:
		s.Help = !s.Help
	case ToggleMarkers:
		s.Markers = !s.Markers
	case TogglePassMode:
		s.Selector.TogglePassMode()
	case ToggleTier:
		s.Selector.ToggleTier()
	case ToggleTexturing:
		s.Texturing = !s.Texturing
	case ToggleFullscreen:
		s.fullscreen = true
	case ToggleVSync:
		s.vsync = true
	case Quit:
		s.quit = true
	default:
		return
	}
	logging.Logger().Debug("command", "cmd", cmd)
}

// Update advances the lights, when animated, and recomputes the camera for
// the given viewport aspect ratio.
func (s *Scene) Update(dt, aspect float32) {
	defer profiling.Track("scene.Update")()

	if s.Animate {
		s.Lights.Update(dt)
	}
	s.Camera.Update(aspect)
}

// ActiveLights returns the lights the current technique binds and draws.
func (s *Scene) ActiveLights() []light.PointLight {
	return s.Lights.Lights(s.Selector.ActiveLightCount())
}

// Technique returns the technique resolved for the current state.
func (s *Scene) Technique() technique.Handle {
	return s.Selector.Technique()
}

// LightRadius is the attenuation radius shared by every light.
func (s *Scene) LightRadius() float32 {
	return s.Lights.Light(0).Radius
}

// Frame assembles the per-frame shading parameters. Call after Update.
func (s *Scene) Frame() shading.Frame {
	return shading.Frame{
		ViewProjection:  s.Camera.ViewProjection,
		CameraPos:       s.Camera.Position,
		GlobalAmbient:   s.GlobalAmbient,
		Lights:          s.ActiveLights(),
		LightCountParam: s.Selector.Technique().LightCountParam,
	}
}

// TakeFullscreenRequest reports whether a fullscreen toggle was requested
// since the last call and clears the request.
func (s *Scene) TakeFullscreenRequest() bool {
	req := s.fullscreen
	s.fullscreen = false
	return req
}

// TakeVSyncRequest reports whether a vsync toggle was requested since the
// last call and clears the request.
func (s *Scene) TakeVSyncRequest() bool {
	req := s.vsync
	s.vsync = false
	return req
}

// QuitRequested reports whether Quit was applied.
func (s *Scene) QuitRequested() bool {
	return s.quit
}
