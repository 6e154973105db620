package camera

import (
	"testing"

	"multilight/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

func TestButtonModes(t *testing.T) {
	type step struct {
		press  bool
		button Button
	}
	tests := []struct {
		name  string
		steps []step
		want  Mode
	}{
		{"left tracks", []step{{true, ButtonLeft}}, ModeTrack},
		{"right orbits", []step{{true, ButtonRight}}, ModeOrbit},
		{"middle dollies", []step{{true, ButtonMiddle}}, ModeDolly},
		{"release last", []step{{true, ButtonLeft}, {false, ButtonLeft}}, ModeNone},
		{"latest press wins", []step{{true, ButtonLeft}, {true, ButtonMiddle}}, ModeDolly},
		{"fallback to track", []step{{true, ButtonLeft}, {true, ButtonRight}, {false, ButtonRight}}, ModeTrack},
		{"track beats orbit", []step{{true, ButtonRight}, {true, ButtonLeft}, {true, ButtonMiddle}, {false, ButtonMiddle}}, ModeTrack},
		{"orbit beats dolly", []step{{true, ButtonMiddle}, {true, ButtonRight}, {true, ButtonLeft}, {false, ButtonLeft}}, ModeOrbit},
		{"fallback to dolly", []step{{true, ButtonMiddle}, {true, ButtonLeft}, {false, ButtonLeft}}, ModeDolly},
		{"release unheld", []step{{false, ButtonRight}}, ModeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for _, s := range tt.steps {
				if s.press {
					c.Press(s.button, 0, 0)
				} else {
					c.Release(s.button)
				}
			}
			if c.Mode() != tt.want {
				t.Errorf("mode = %v, want %v", c.Mode(), tt.want)
			}
		})
	}
}

func TestMoveTrack(t *testing.T) {
	c := New()
	c.Press(ButtonLeft, 100, 100)
	c.Move(110, 120)

	want := mgl32.Vec3{-10 * config.MouseTrackSpeed, 20 * config.MouseTrackSpeed, 0}
	if !vecNear(c.Target[:], want[:], eps) {
		t.Errorf("target = %v, want %v", c.Target, want)
	}
	if c.Offset != config.CameraInitialOffset || c.Pitch != 0 {
		t.Errorf("track changed offset or pitch: %v %v", c.Offset, c.Pitch)
	}
}

func TestMoveDolly(t *testing.T) {
	c := New()
	c.Press(ButtonMiddle, 0, 100)
	c.Move(50, 90)

	want := float32(config.CameraInitialOffset - 10*config.MouseDollySpeed)
	if c.Offset != want {
		t.Errorf("offset = %v, want %v", c.Offset, want)
	}
	if c.Target != (mgl32.Vec3{}) {
		t.Errorf("dolly moved the target: %v", c.Target)
	}
}

func TestMoveOrbitHorizontalOnly(t *testing.T) {
	c := New()
	c.Press(ButtonRight, 200, 200)
	c.Move(150, 200)
	c.Move(100, 200)
	c.Update(1)

	if c.Pitch != 0 {
		t.Errorf("pitch = %v, want 0 for horizontal drag", c.Pitch)
	}
	if c.Offset != config.CameraInitialOffset {
		t.Errorf("offset = %v, want unchanged", c.Offset)
	}
	if c.Forward.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-3) {
		t.Errorf("forward did not rotate: %v", c.Forward)
	}
}

func TestMoveOrbitVertical(t *testing.T) {
	c := New()
	c.Press(ButtonRight, 0, 500)
	c.Move(0, 400)

	want := float32(100 * config.MouseOrbitSpeed)
	if !mgl32.FloatEqualThreshold(c.Pitch, want, eps) {
		t.Errorf("pitch = %v, want %v", c.Pitch, want)
	}

	c.Move(0, -1000)
	if c.Pitch != 90 {
		t.Errorf("pitch = %v, want clamp at 90", c.Pitch)
	}
}

func TestMoveWithoutModeOnlyTracksPointer(t *testing.T) {
	c := New()
	before := *c
	c.Move(300, 300)

	if c.Target != before.Target || c.Offset != before.Offset || c.Orientation != before.Orientation {
		t.Errorf("move without a held button changed the camera")
	}

	// the next press starts from its own position, not the stale pointer
	c.Press(ButtonLeft, 10, 10)
	c.Move(10, 10)
	if c.Target != (mgl32.Vec3{}) {
		t.Errorf("target = %v, want unchanged", c.Target)
	}
}
