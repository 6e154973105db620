package renderer

import (
	"errors"
	"fmt"

	"multilight/internal/graphics"
	"multilight/internal/profiling"
	"multilight/internal/room"
	"multilight/internal/scene"
	"multilight/internal/shading"
	"multilight/internal/technique"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ParamLightIndex selects the light a multi-pass draw shades; -1 shades all
// lights in one pass.
const ParamLightIndex = "lightIndex"

// Room draws the room with the Blinn-Phong technique chosen by the scene.
type Room struct {
	caps       technique.Capabilities
	textureDir string
	anisotropy float32

	programs [technique.ProgramCount]*graphics.Shader
	textures *graphics.TextureSet
	binder   shading.Binder

	vao uint32
	vbo uint32
}

// NewRoom creates the room renderable. The tier-3 program is only built
// when caps allows it.
func NewRoom(caps technique.Capabilities, textureDir string, anisotropy float32) *Room {
	return &Room{caps: caps, textureDir: textureDir, anisotropy: anisotropy}
}

var programSources = [technique.ProgramCount]string{
	technique.ProgramTier2: graphics.BlinnPhongTier2FragShader,
	technique.ProgramTier3: graphics.BlinnPhongTier3FragShader,
}

func (r *Room) Init() error {
	for p := technique.Program(0); p < technique.ProgramCount; p++ {
		if p == technique.ProgramTier3 && !r.caps.Tier3 {
			continue
		}
		sh, err := graphics.NewBuiltinShader(graphics.BlinnPhongVertShader, programSources[p])
		if err != nil {
			r.Dispose()
			return fmt.Errorf("room shader: %w", err)
		}
		r.programs[p] = sh
	}

	textures, err := graphics.LoadTextureSet(r.textureDir, r.anisotropy)
	if err != nil {
		r.Dispose()
		return err
	}
	r.textures = textures

	r.createBuffers()
	return nil
}

func (r *Room) createBuffers() {
	vertices := room.Vertices()
	data := room.Flatten(vertices[:])

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	const stride = room.FloatsPerVertex * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (r *Room) deleteBuffers() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

func (r *Room) Render(ctx RenderContext) {
	defer profiling.Track("renderer.Room")()

	prog := r.programs[ctx.Technique.Program]
	if prog == nil {
		return
	}
	prog.Use()
	r.binder.Bind(prog, ctx.Frame)

	gl.BindVertexArray(r.vao)
	for s := room.Walls; s < room.SurfaceCount; s++ {
		r.binder.BindMaterial(prog, material(ctx.Scene, s))
		r.binder.BindColorMap(prog, r.textures.ColorMaps[s], r.textures.Null, ctx.Scene.Texturing)

		rng := room.DrawRange(s)
		if ctx.Technique.MultiPass {
			r.drawPerLight(prog, rng, len(ctx.Frame.Lights))
			continue
		}
		prog.SetInt(ParamLightIndex, -1)
		gl.DrawArrays(gl.TRIANGLES, int32(rng.First), int32(rng.Count))
	}
	gl.BindVertexArray(0)
}

// drawPerLight issues one draw per light. Passes after the first add onto
// the framebuffer.
func (r *Room) drawPerLight(prog *graphics.Shader, rng room.Range, lights int) {
	for i := 0; i < lights; i++ {
		if i == 1 {
			gl.Enable(gl.BLEND)
			gl.BlendFunc(gl.ONE, gl.ONE)
			gl.DepthFunc(gl.LEQUAL)
			gl.DepthMask(false)
		}
		prog.SetInt(ParamLightIndex, int32(i))
		gl.DrawArrays(gl.TRIANGLES, int32(rng.First), int32(rng.Count))
	}
	if lights > 1 {
		gl.DepthMask(true)
		gl.DepthFunc(gl.LESS)
		gl.Disable(gl.BLEND)
	}
}

func material(s *scene.Scene, surface room.Surface) shading.Material {
	switch surface {
	case room.Walls:
		return s.WallMaterial
	case room.Ceiling:
		return s.CeilingMaterial
	default:
		return s.FloorMaterial
	}
}

// OnLostDevice releases the vertex buffers and the cached uniform locations.
func (r *Room) OnLostDevice() error {
	r.deleteBuffers()
	var errs []error
	for _, p := range r.programs {
		if p != nil {
			errs = append(errs, p.OnLostDevice())
		}
	}
	return errors.Join(errs...)
}

// OnResetDevice validates the programs and recreates the vertex buffers.
func (r *Room) OnResetDevice() error {
	for _, p := range r.programs {
		if p == nil {
			continue
		}
		if err := p.OnResetDevice(); err != nil {
			return err
		}
	}
	r.createBuffers()
	return nil
}

func (r *Room) Dispose() {
	r.deleteBuffers()
	for i, p := range r.programs {
		if p != nil {
			p.Delete()
			r.programs[i] = nil
		}
	}
	if r.textures != nil {
		r.textures.Delete()
		r.textures = nil
	}
}

func (r *Room) SetViewport(width, height int) {}
