// Package game runs the window loop: timing, input, simulation and drawing.
package game

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"multilight/internal/config"
	"multilight/internal/device"
	"multilight/internal/graphics"
	"multilight/internal/graphics/renderer"
	"multilight/internal/hud"
	"multilight/internal/input"
	"multilight/internal/logging"
	"multilight/internal/profiling"
	"multilight/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	slowFrame = 16 * time.Millisecond
	// Longest an unfocused window blocks before checking for a stop request.
	idleWait = 100 * time.Millisecond
)

type App struct {
	window   *glfw.Window
	settings *config.Settings
	input    *input.InputManager

	scene    *scene.Scene
	renderer *renderer.Renderer
	device   *graphics.Device
	guard    *device.Guard

	timer   FrameTimer
	fps     FPSCounter
	limiter *FPSLimiter

	anisotropy int
	focused    bool

	viewWidth, viewHeight int

	stop atomic.Bool
}

// NewApp queries the context, builds the scene and the renderer and installs
// the window callbacks. The window's GL context must be current.
func NewApp(window *glfw.Window, settings *config.Settings) (*App, error) {
	log := logging.Logger()

	info := graphics.QueryDeviceInfo()
	caps, err := graphics.Capabilities(info)
	if err != nil {
		return nil, err
	}
	if settings.ForceTier2 {
		caps.Tier3 = false
	}
	log.Info("graphics device",
		"renderer", info.Renderer,
		"glsl", info.GLSLVersion,
		"fragment_uniform_vectors", info.FragmentUniformVecs,
		"tier3", caps.Tier3)

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("light seed", "seed", seed)

	anisotropy := min(settings.Anisotropy(), int(info.MaxAnisotropy))

	s := scene.New(scene.Options{
		Capabilities: caps,
		Rand:         rand.New(rand.NewSource(seed)),
	})

	room := renderer.NewRoom(caps, settings.TextureDir, float32(anisotropy))
	markers := renderer.NewMarkers(s.Lights.BodyRadius())
	overlay := renderer.NewOverlay()
	r, err := renderer.NewRenderer(settings.MSAASamples() > 1, room, markers, overlay)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	surface := newWindowSurface(window, settings)
	dev := graphics.NewDevice(surface, settings.Fullscreen(), settings.VSync())
	guard := device.NewGuard(dev)
	// Lighting programs are released before the font, the renderer's own
	// GL state is restored last.
	guard.Register(r.Owners()...)
	guard.Register(r)

	w, h := dev.FramebufferSize()
	surface.SetViewport(w, h)

	app := &App{
		window:     window,
		settings:   settings,
		input:      input.NewInputManager(),
		scene:      s,
		renderer:   r,
		device:     dev,
		guard:      guard,
		limiter:    NewFPSLimiter(settings),
		anisotropy: anisotropy,
		focused:    true,
	}
	SetupInputHandlers(app)
	return app, nil
}

func (a *App) Run() {
	for a.running() {
		a.tick()
	}
	logging.Logger().Info("stopped",
		"reset_failures", a.guard.Failures())
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()

	glfw.PollEvents()
	if !a.focused {
		a.input.PostUpdate()
		glfw.WaitEventsTimeout(idleWait.Seconds())
		return
	}

	dt := a.timer.Tick(time.Now())
	a.fps.Update(dt)

	for _, cmd := range Commands(a.input) {
		a.scene.Apply(cmd)
	}
	a.input.PostUpdate()

	if a.scene.QuitRequested() {
		a.window.SetShouldClose(true)
		return
	}
	if a.scene.TakeFullscreenRequest() {
		a.toggleFullscreen()
	}
	if a.scene.TakeVSyncRequest() {
		a.toggleVSync()
	}

	a.scene.Update(dt, a.aspect())

	if a.guard.BeginFrame() {
		a.syncViewport()
		a.renderer.Render(a.scene, a.status())
		a.window.SwapBuffers()
	}

	if d := time.Since(startTick); d > slowFrame {
		logging.Logger().Debug("slow frame", "duration", d, "top", profiling.TopN(5))
	}

	a.limiter.Wait()
}

// Stop asks Run to return after the current frame. Safe to call from any
// goroutine.
func (a *App) Stop() {
	a.stop.Store(true)
}

func (a *App) running() bool {
	return !a.stop.Load() && !a.window.ShouldClose()
}

// toggleFullscreen switches mode and resets the device right away. A failed
// reset leaves the change pending for the next frame.
func (a *App) toggleFullscreen() {
	fullscreen := a.device.ToggleFullscreen()
	a.settings.SetFullscreen(fullscreen)
	if err := a.guard.Reset(); err != nil {
		logging.Logger().Warn("fullscreen toggle", "fullscreen", fullscreen, "err", err)
	}
}

// syncViewport forwards a size applied by a device reset to the renderer.
func (a *App) syncViewport() {
	w, h := a.device.FramebufferSize()
	if w == a.viewWidth && h == a.viewHeight {
		return
	}
	a.viewWidth, a.viewHeight = w, h
	a.renderer.UpdateViewport(w, h)
}

// toggleVSync schedules a swap interval change; the guard applies it through
// a device reset on the next frame.
func (a *App) toggleVSync() {
	vsync := !a.settings.VSync()
	a.settings.SetVSync(vsync)
	a.device.SetVSync(vsync)
	logging.Logger().Info("vsync", "enabled", vsync)
}

func (a *App) aspect() float32 {
	w, h := a.device.FramebufferSize()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

func (a *App) status() hud.Status {
	return hud.Status{
		FPS:         a.fps.FPS(),
		MSAASamples: a.settings.MSAASamples(),
		Anisotropy:  a.anisotropy,
		State:       a.scene.Selector.State(),
		LightRadius: a.scene.LightRadius(),
	}
}

// Dispose releases GL resources. The context must still be current.
func (a *App) Dispose() {
	a.renderer.Dispose()
}
