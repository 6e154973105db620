// Package camera implements the orbiting room camera: a target point, an
// orientation and a distance (offset) from the target along the view axis.
package camera

import (
	"multilight/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	worldRight = mgl32.Vec3{1, 0, 0}
	worldUp    = mgl32.Vec3{0, 1, 0}
)

// Camera holds the orbit state and the values derived from it once per frame.
type Camera struct {
	Pitch       float32 // degrees, within [-90, 90]
	Offset      float32 // distance from Target, within [DollyMin, DollyMax]
	Target      mgl32.Vec3
	Orientation mgl32.Quat

	// Derived by Update
	Right    mgl32.Vec3
	Up       mgl32.Vec3
	Forward  mgl32.Vec3
	Position mgl32.Vec3

	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProjection mgl32.Mat4

	mode    Mode
	held    [buttonCount]bool
	pointer mgl32.Vec2
}

// New returns a camera looking at the origin from the default distance.
func New() *Camera {
	c := &Camera{
		Offset:      config.CameraInitialOffset,
		Orientation: mgl32.QuatIdent(),
	}
	c.Update(1)
	return c
}

// Update renormalises the orientation and recomputes the basis vectors,
// world position and matrices. Call once per frame before reading them.
//
// The view space is left handed: x right, y up, z forward. The projection
// flips z so the result lands in GL clip space.
func (c *Camera) Update(aspect float32) {
	c.Orientation = c.Orientation.Normalize()
	rot := c.Orientation.Mat4()

	c.Right = rot.Row(0).Vec3()
	c.Up = rot.Row(1).Vec3()
	c.Forward = rot.Row(2).Vec3()

	c.Position = c.Target.Sub(c.Forward.Mul(c.Offset))

	c.View = mgl32.Mat4FromRows(
		c.Right.Vec4(-c.Right.Dot(c.Position)),
		c.Up.Vec4(-c.Up.Dot(c.Position)),
		c.Forward.Vec4(-c.Forward.Dot(c.Position)),
		mgl32.Vec4{0, 0, 0, 1},
	)

	if aspect <= 0 {
		aspect = 1
	}
	c.Projection = mgl32.Perspective(mgl32.DegToRad(config.CameraFovY), aspect, config.CameraZNear, config.CameraZFar).
		Mul4(mgl32.Scale3D(1, 1, -1))

	c.ViewProjection = c.Projection.Mul4(c.View)
}

// Track pans the target along the camera right and up axes.
func (c *Camera) Track(dx, dy float32) {
	c.Target = c.Target.Sub(c.Right.Mul(dx))
	c.Target = c.Target.Add(c.Up.Mul(dy))
}

// Dolly moves the camera toward the target by amount, keeping the offset in
// [DollyMin, DollyMax].
func (c *Camera) Dolly(amount float32) {
	c.Offset = clampOffset(c.Offset - amount)
}

// Orbit yaws the camera about the world up axis and pitches it about its own
// right axis. Both deltas are in degrees. Pitch is kept within [-90, 90]; a
// pitch delta that would cross a limit is cut short to land on it.
func (c *Camera) Orbit(yaw, pitch float32) {
	c.Pitch += pitch

	if c.Pitch > 90 {
		pitch = 90 - (c.Pitch - pitch)
		c.Pitch = 90
	}
	if c.Pitch < -90 {
		pitch = -90 - (c.Pitch - pitch)
		c.Pitch = -90
	}

	if yaw != 0 {
		// world space
		c.Orientation = c.Orientation.Mul(mgl32.QuatRotate(mgl32.DegToRad(yaw), worldUp))
	}
	if pitch != 0 {
		// camera space
		c.Orientation = mgl32.QuatRotate(mgl32.DegToRad(pitch), worldRight).Mul(c.Orientation)
	}
}

func clampOffset(offset float32) float32 {
	if offset > config.DollyMax {
		offset = config.DollyMax
	}
	if offset < config.DollyMin {
		offset = config.DollyMin
	}
	return offset
}
