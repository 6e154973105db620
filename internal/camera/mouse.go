package camera

import "multilight/internal/config"

// Mode is the interaction the pointer is currently driving.
type Mode int

const (
	ModeNone Mode = iota
	ModeTrack
	ModeDolly
	ModeOrbit
)

func (m Mode) String() string {
	switch m {
	case ModeTrack:
		return "track"
	case ModeDolly:
		return "dolly"
	case ModeOrbit:
		return "orbit"
	}
	return "none"
}

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	buttonCount
)

// buttonModes lists the buttons in fallback priority order.
var buttonModes = [buttonCount]struct {
	button Button
	mode   Mode
}{
	{ButtonLeft, ModeTrack},
	{ButtonRight, ModeOrbit},
	{ButtonMiddle, ModeDolly},
}

// Mode returns the active interaction mode.
func (c *Camera) Mode() Mode {
	return c.mode
}

// Press starts the interaction bound to button at pointer position (x, y).
func (c *Camera) Press(b Button, x, y float32) {
	if b < 0 || b >= buttonCount {
		return
	}
	c.held[b] = true
	c.mode = buttonModes[b].mode
	c.pointer[0], c.pointer[1] = x, y
}

// Release ends the interaction bound to button. If other buttons are still
// held the mode falls back to the first of them in track, orbit, dolly order.
func (c *Camera) Release(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	c.held[b] = false
	c.mode = ModeNone
	for _, bm := range buttonModes {
		if c.held[bm.button] {
			c.mode = bm.mode
			return
		}
	}
}

// Move applies the pointer motion to (x, y) according to the active mode.
func (c *Camera) Move(x, y float32) {
	px, py := c.pointer[0], c.pointer[1]

	switch c.mode {
	case ModeTrack:
		c.Track((x-px)*config.MouseTrackSpeed, (y-py)*config.MouseTrackSpeed)
	case ModeDolly:
		c.Dolly((py - y) * config.MouseDollySpeed)
	case ModeOrbit:
		c.Orbit((px-x)*config.MouseOrbitSpeed, (py-y)*config.MouseOrbitSpeed)
	}

	c.pointer[0], c.pointer[1] = x, y
}

// Wheel dollies the camera by the given number of wheel notches.
func (c *Camera) Wheel(notches float32) {
	c.Dolly(notches * config.WheelDelta * config.MouseWheelDollySpeed)
}
