package renderer

import (
	"fmt"

	"multilight/internal/config"
	"multilight/internal/graphics"
	"multilight/internal/profiling"
	"multilight/internal/room"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Markers draws a small sphere at each active light in the light's colour.
type Markers struct {
	shader     *graphics.Shader
	mesh       room.Mesh
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewMarkers creates the marker renderable with spheres of the given radius.
func NewMarkers(radius float32) *Markers {
	return &Markers{
		mesh: room.Sphere(radius, config.LightObjectSlices, config.LightObjectStacks),
	}
}

func (m *Markers) Init() error {
	sh, err := graphics.NewBuiltinShader(graphics.AmbientVertShader, graphics.AmbientFragShader)
	if err != nil {
		return fmt.Errorf("marker shader: %w", err)
	}
	m.shader = sh
	m.createBuffers()
	return nil
}

func (m *Markers) createBuffers() {
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.mesh.Positions)*4, gl.Ptr(m.mesh.Positions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.mesh.Indices)*2, gl.Ptr(m.mesh.Indices), gl.STATIC_DRAW)
	m.indexCount = int32(len(m.mesh.Indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

func (m *Markers) deleteBuffers() {
	for _, buf := range []*uint32{&m.vbo, &m.ebo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

func (m *Markers) Render(ctx RenderContext) {
	if !ctx.Scene.Markers {
		return
	}
	defer profiling.Track("renderer.Markers")()

	m.shader.Use()
	m.shader.SetFloat("ambientIntensity", 1)
	gl.BindVertexArray(m.vao)
	for i := range ctx.Frame.Lights {
		l := &ctx.Frame.Lights[i]
		world := mgl32.Translate3D(l.Position[0], l.Position[1], l.Position[2])
		m.shader.SetMatrix("worldViewProjectionMatrix", ctx.Frame.ViewProjection.Mul4(world))
		m.shader.SetVec4("ambientColor", l.Ambient)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	}
	gl.BindVertexArray(0)
}

// OnLostDevice releases the sphere buffers.
func (m *Markers) OnLostDevice() error {
	m.deleteBuffers()
	return m.shader.OnLostDevice()
}

// OnResetDevice recreates the sphere buffers.
func (m *Markers) OnResetDevice() error {
	if err := m.shader.OnResetDevice(); err != nil {
		return err
	}
	m.createBuffers()
	return nil
}

func (m *Markers) Dispose() {
	m.deleteBuffers()
	if m.shader != nil {
		m.shader.Delete()
	}
}

func (m *Markers) SetViewport(width, height int) {}
