package graphics

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"multilight/internal/shading"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFiles embed.FS

// Shader sources bundled with the binary.
const (
	BlinnPhongVertShader      = "shaders/blinn_phong.vert"
	BlinnPhongTier2FragShader = "shaders/blinn_phong_tier2.frag"
	BlinnPhongTier3FragShader = "shaders/blinn_phong_tier3.frag"
	AmbientVertShader         = "shaders/ambient.vert"
	AmbientFragShader         = "shaders/ambient.frag"
	FontVertShader            = "shaders/font.vert"
	FontFragShader            = "shaders/font.frag"
)

// Shader is a linked GL program. Uniform locations are looked up once per
// name and cached until the device is reset.
type Shader struct {
	ID        uint32
	Name      string
	locations map[string]int32
}

var _ shading.Program = (*Shader)(nil)

// NewShader compiles and links a program from two files in fsys.
func NewShader(fsys fs.FS, vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return nil, fmt.Errorf("read vertex shader: %w", err)
	}
	fragmentSource, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("read fragment shader: %w", err)
	}

	program, err := compileProgram(string(vertexSource), string(fragmentSource))
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertexPath, fragmentPath, err)
	}
	return &Shader{ID: program, Name: fragmentPath, locations: make(map[string]int32)}, nil
}

// NewBuiltinShader builds a program from the bundled shader sources.
func NewBuiltinShader(vertexPath, fragmentPath string) (*Shader, error) {
	return NewShader(shaderFiles, vertexPath, fragmentPath)
}

// Use activates the shader program.
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the GL program.
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
	clear(s.locations)
}

// OnLostDevice drops the cached uniform locations.
func (s *Shader) OnLostDevice() error {
	clear(s.locations)
	return nil
}

// OnResetDevice checks that the program survived the reset.
func (s *Shader) OnResetDevice() error {
	if !gl.IsProgram(s.ID) {
		return fmt.Errorf("program %s was lost", s.Name)
	}
	var status int32
	gl.GetProgramiv(s.ID, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return fmt.Errorf("program %s is no longer linked", s.Name)
	}
	return nil
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

// SetInt sets an integer uniform. Unknown names are ignored.
func (s *Shader) SetInt(name string, value int32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1i(loc, value)
	}
}

// SetFloat sets a float uniform.
func (s *Shader) SetFloat(name string, value float32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1f(loc, value)
	}
}

// SetVec3 sets a vec3 uniform.
func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

// SetVec4 sets a vec4 uniform.
func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

// SetMatrix sets a mat4 uniform.
func (s *Shader) SetMatrix(name string, m mgl32.Mat4) {
	if loc := s.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// SetTexture binds tex to the given unit and points the sampler at it.
func (s *Shader) SetTexture(name string, unit int32, tex shading.TextureID) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	s.SetInt(name, unit)
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
