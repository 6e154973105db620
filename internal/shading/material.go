package shading

import "github.com/go-gl/mathgl/mgl32"

// Material is a Blinn-Phong surface description.
type Material struct {
	Ambient   mgl32.Vec4
	Diffuse   mgl32.Vec4
	Emissive  mgl32.Vec4
	Specular  mgl32.Vec4
	Shininess float32
}

// Dull is used for the walls. It has no specular highlight.
var Dull = Material{
	Ambient:  mgl32.Vec4{0.2, 0.2, 0.2, 1},
	Diffuse:  mgl32.Vec4{0.8, 0.8, 0.8, 1},
	Emissive: mgl32.Vec4{0, 0, 0, 1},
	Specular: mgl32.Vec4{0, 0, 0, 1},
}

// Shiny is used for the ceiling and the floor.
var Shiny = Material{
	Ambient:   mgl32.Vec4{0.2, 0.2, 0.2, 1},
	Diffuse:   mgl32.Vec4{0.8, 0.8, 0.8, 1},
	Emissive:  mgl32.Vec4{0, 0, 0, 1},
	Specular:  mgl32.Vec4{1, 1, 1, 1},
	Shininess: 32,
}

// GlobalAmbient is the scene-wide ambient term.
var GlobalAmbient = mgl32.Vec4{0, 0, 0, 1}
