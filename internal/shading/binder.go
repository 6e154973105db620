// Package shading binds per-frame lighting parameters to a shading program.
package shading

import (
	"fmt"

	"multilight/internal/light"

	"github.com/go-gl/mathgl/mgl32"
)

// TextureID names a texture owned by the graphics backend.
type TextureID uint32

// Program is a sink for named shading parameters. Implementations resolve
// names to their own handles; unknown names are ignored.
type Program interface {
	SetMatrix(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetTexture(name string, unit int32, tex TextureID)
}

// Parameter names shared by every lighting program.
const (
	ParamWorld                 = "worldMatrix"
	ParamWorldInverseTranspose = "worldInverseTransposeMatrix"
	ParamWorldViewProjection   = "worldViewProjectionMatrix"
	ParamCameraPos             = "cameraPos"
	ParamGlobalAmbient         = "globalAmbient"
	ParamNumLights             = "numLights"
	ParamColorMap              = "colorMapTexture"

	ParamMaterialAmbient   = "material.ambient"
	ParamMaterialDiffuse   = "material.diffuse"
	ParamMaterialEmissive  = "material.emissive"
	ParamMaterialSpecular  = "material.specular"
	ParamMaterialShininess = "material.shininess"
)

// ColorMapUnit is the texture unit the colour map is bound to.
const ColorMapUnit = 0

type lightParams struct {
	pos, ambient, diffuse, specular, radius string
}

// lightNames[i] holds the member names of lights[i].
var lightNames = func() (names [light.MaxLights]lightParams) {
	for i := range names {
		prefix := fmt.Sprintf("lights[%d].", i)
		names[i] = lightParams{
			pos:      prefix + "pos",
			ambient:  prefix + "ambient",
			diffuse:  prefix + "diffuse",
			specular: prefix + "specular",
			radius:   prefix + "radius",
		}
	}
	return names
}()

// LightParamNames returns the member names for lights[i] in the order
// pos, ambient, diffuse, specular, radius.
func LightParamNames(i int) [5]string {
	n := lightNames[i]
	return [5]string{n.pos, n.ambient, n.diffuse, n.specular, n.radius}
}

// Frame is everything bound once per frame.
type Frame struct {
	ViewProjection mgl32.Mat4
	CameraPos      mgl32.Vec3
	GlobalAmbient  mgl32.Vec4
	// Lights are the active lights only.
	Lights []light.PointLight
	// LightCountParam selects programs that loop over a light count uniform.
	LightCountParam bool
}

// Binder writes the frame parameter contract to a program. It keeps no state
// between calls, so every frame rewrites the full contract.
type Binder struct{}

// Bind writes the transforms, camera, ambient and per-light parameters.
func (Binder) Bind(p Program, f Frame) {
	identity := mgl32.Ident4()
	p.SetMatrix(ParamWorld, identity)
	p.SetMatrix(ParamWorldInverseTranspose, identity)
	p.SetMatrix(ParamWorldViewProjection, f.ViewProjection)
	p.SetVec3(ParamCameraPos, f.CameraPos)
	p.SetVec4(ParamGlobalAmbient, f.GlobalAmbient)

	n := len(f.Lights)
	if n > light.MaxLights {
		n = light.MaxLights
	}
	if f.LightCountParam {
		p.SetInt(ParamNumLights, int32(n))
	}
	for i := 0; i < n; i++ {
		l := &f.Lights[i]
		names := &lightNames[i]
		p.SetVec3(names.pos, l.Position)
		p.SetVec4(names.ambient, l.Ambient)
		p.SetVec4(names.diffuse, l.Diffuse)
		p.SetVec4(names.specular, l.Specular)
		p.SetFloat(names.radius, l.Radius)
	}
}

// BindMaterial writes the surface material.
func (Binder) BindMaterial(p Program, m Material) {
	p.SetVec4(ParamMaterialAmbient, m.Ambient)
	p.SetVec4(ParamMaterialDiffuse, m.Diffuse)
	p.SetVec4(ParamMaterialEmissive, m.Emissive)
	p.SetVec4(ParamMaterialSpecular, m.Specular)
	p.SetFloat(ParamMaterialShininess, m.Shininess)
}

// BindColorMap binds tex as the colour map, or the null texture when
// texturing is off.
func (Binder) BindColorMap(p Program, tex, null TextureID, texturing bool) {
	if !texturing {
		tex = null
	}
	p.SetTexture(ParamColorMap, ColorMapUnit, tex)
}
