// Package renderer draws a frame through a list of renderable features.
package renderer

import (
	"fmt"

	"multilight/internal/device"
	"multilight/internal/hud"
	"multilight/internal/profiling"
	"multilight/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	width       int
	height      int
	multisample bool
}

// NewRenderer configures GL and initialises every renderable in order.
func NewRenderer(multisample bool, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	// Room and marker triangles are wound clockwise, see the room package.
	gl.FrontFace(gl.CW)
	if multisample {
		gl.Enable(gl.MULTISAMPLE)
	}

	r := &Renderer{renderables: rs, multisample: multisample}
	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}
	return r, nil
}

// Render clears the framebuffer and draws every feature.
func (r *Renderer) Render(s *scene.Scene, status hud.Status) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Scene:     s,
		Frame:     s.Frame(),
		Technique: s.Technique(),
		Status:    status,
		Width:     r.width,
		Height:    r.height,
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Owners returns the renderables that hold device-dependent state, in
// release order.
func (r *Renderer) Owners() []device.ResourceOwner {
	var owners []device.ResourceOwner
	for _, rb := range r.renderables {
		if o, ok := rb.(device.ResourceOwner); ok {
			owners = append(owners, o)
		}
	}
	return owners
}

// OnLostDevice has nothing to release; the renderer itself only holds
// global GL state.
func (r *Renderer) OnLostDevice() error {
	return nil
}

// OnResetDevice restores the global GL state.
func (r *Renderer) OnResetDevice() error {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CW)
	if r.multisample {
		gl.Enable(gl.MULTISAMPLE)
	}
	return nil
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport propagates the framebuffer size to every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
