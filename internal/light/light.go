// Package light simulates the point lights that bounce around the room.
package light

import (
	"math"
	"math/rand"

	"multilight/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the capacity of the light array. It matches the highest
// capability tier so the array never has to grow.
const MaxLights = config.MaxLightsTier3

// PointLight is a point light with attenuation radius and a launch velocity.
// Colours are fixed after construction.
type PointLight struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Radius   float32

	Ambient  mgl32.Vec4
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4
}

// Colors are the light colours in array order.
var Colors = [MaxLights]mgl32.Vec4{
	{1, 1, 1, 1},                               // white
	{1, 0, 0, 1},                               // red
	{0, 1, 0, 1},                               // green
	{0, 0, 1, 1},                               // blue
	{1, 1, 0, 1},                               // yellow
	{0, 1, 1, 1},                               // cyan
	{1, 0, 1, 1},                               // magenta
	{100.0 / 255, 149.0 / 255, 237.0 / 255, 1}, // cornflower blue
}

// SimulatorOptions configures a Simulator. Zero values fall back to the
// defaults from the config package.
type SimulatorOptions struct {
	HalfExtents mgl32.Vec3
	BodyRadius  float32
	BaseSpeed   float32
	LaunchAngle float32 // degrees
	Rand        *rand.Rand
}

// Simulator owns the fixed light array and advances it every frame.
type Simulator struct {
	lights [MaxLights]PointLight

	halfExtents mgl32.Vec3
	bodyRadius  float32
	baseSpeed   float32
	launchAngle float32
	rng         *rand.Rand
}

// NewSimulator creates a simulator with every light at the room centre, at
// rest, coloured per Colors.
func NewSimulator(opts SimulatorOptions) *Simulator {
	s := &Simulator{
		halfExtents: opts.HalfExtents,
		bodyRadius:  opts.BodyRadius,
		baseSpeed:   opts.BaseSpeed,
		launchAngle: opts.LaunchAngle,
		rng:         opts.Rand,
	}
	if s.halfExtents == (mgl32.Vec3{}) {
		s.halfExtents = config.RoomHalfExtents()
	}
	if s.bodyRadius == 0 {
		s.bodyRadius = config.LightObjectRadius
	}
	if s.baseSpeed == 0 {
		s.baseSpeed = config.LightObjectSpeed
	}
	if s.launchAngle == 0 {
		s.launchAngle = config.LightObjectLaunchAngle
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}

	for i := range s.lights {
		c := Colors[i]
		s.lights[i] = PointLight{
			Radius:   config.LightRadiusInitial,
			Ambient:  c,
			Diffuse:  c,
			Specular: c,
		}
	}
	return s
}

// Lights returns the first n lights. n is clamped to [0, MaxLights]. The
// returned slice aliases the simulator's array.
func (s *Simulator) Lights(n int) []PointLight {
	if n < 0 {
		n = 0
	}
	if n > MaxLights {
		n = MaxLights
	}
	return s.lights[:n]
}

// Light returns a pointer to light i.
func (s *Simulator) Light(i int) *PointLight {
	return &s.lights[i]
}

// Spawn gives light i a random launch velocity. The direction has a random
// azimuth and a fixed upward elevation; the speed is in [base, 1.5*base).
func (s *Simulator) Spawn(i int) {
	rho := float64(s.baseSpeed) + 0.5*float64(s.baseSpeed)*s.rng.Float64()
	phi := float64(mgl32.DegToRad(s.launchAngle))
	theta := float64(mgl32.DegToRad(360 * float32(s.rng.Float64())))

	s.lights[i].Velocity = mgl32.Vec3{
		float32(rho * math.Cos(phi) * math.Cos(theta)),
		float32(rho * math.Sin(phi)),
		float32(rho * math.Cos(phi) * math.Sin(theta)),
	}
}

// SpawnAll launches every light in the array.
func (s *Simulator) SpawnAll() {
	for i := range s.lights {
		s.Spawn(i)
	}
}

// Update moves every light by its velocity and reflects the velocity off
// the room walls. A component is negated once the position has crossed
// half-extent minus twice the body radius; the position itself is left alone,
// so a light may sit past the threshold for a frame.
func (s *Simulator) Update(dt float32) {
	for i := range s.lights {
		l := &s.lights[i]
		l.Position = l.Position.Add(l.Velocity.Mul(dt))

		for axis := 0; axis < 3; axis++ {
			limit := s.Threshold(axis)
			if l.Position[axis] > limit {
				l.Velocity[axis] = -l.Velocity[axis]
			}
			if l.Position[axis] < -limit {
				l.Velocity[axis] = -l.Velocity[axis]
			}
		}
	}
}

// Threshold is the reflection threshold for the given axis.
func (s *Simulator) Threshold(axis int) float32 {
	return s.halfExtents[axis] - s.bodyRadius*2
}

// AdjustRadius changes the attenuation radius of every light by delta,
// clamped to the configured range.
func (s *Simulator) AdjustRadius(delta float32) {
	for i := range s.lights {
		r := s.lights[i].Radius + delta
		if r > config.LightRadiusMax {
			r = config.LightRadiusMax
		}
		if r < config.LightRadiusMin {
			r = config.LightRadiusMin
		}
		s.lights[i].Radius = r
	}
}

// BodyRadius returns the radius of the marker sphere used for reflection.
func (s *Simulator) BodyRadius() float32 {
	return s.bodyRadius
}
