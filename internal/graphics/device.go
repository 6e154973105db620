package graphics

import (
	"multilight/internal/device"
	"multilight/internal/logging"
)

// Surface is the window the GL context draws to.
type Surface interface {
	FramebufferSize() (width, height int)
	Iconified() bool
	// SetFullscreen switches between windowed and fullscreen mode.
	SetFullscreen(enabled bool) error
	SetSwapInterval(interval int)
	SetViewport(width, height int)
}

// Device adapts a GL surface to the device lifecycle. GL contexts are not
// lost on resize or mode switches, so the reset state is raised by the
// window: framebuffer resizes, fullscreen toggles and swap interval changes
// are applied in Reset, between releasing and reacquiring resources.
type Device struct {
	surface Surface

	fullscreen bool
	vsync      bool

	resized       bool
	modeChanged   bool
	vsyncChanged  bool
	width, height int
}

var _ device.Device = (*Device)(nil)

// NewDevice creates a device for surface in the given initial mode.
func NewDevice(surface Surface, fullscreen, vsync bool) *Device {
	w, h := surface.FramebufferSize()
	return &Device{surface: surface, fullscreen: fullscreen, vsync: vsync, width: w, height: h}
}

// Probe reports the device status for the next frame.
func (d *Device) Probe() device.Status {
	w, h := d.surface.FramebufferSize()
	if d.surface.Iconified() || w <= 0 || h <= 0 {
		return device.Lost
	}
	if w != d.width || h != d.height {
		d.resized = true
	}
	if d.resized || d.modeChanged || d.vsyncChanged {
		return device.NeedsReset
	}
	return device.Valid
}

// Reset applies pending mode, swap interval and viewport changes.
func (d *Device) Reset() error {
	if d.modeChanged {
		if err := d.surface.SetFullscreen(d.fullscreen); err != nil {
			return err
		}
		d.modeChanged = false
		d.vsyncChanged = true
	}
	if d.vsyncChanged {
		interval := 0
		if d.vsync {
			interval = 1
		}
		d.surface.SetSwapInterval(interval)
		d.vsyncChanged = false
	}

	d.width, d.height = d.surface.FramebufferSize()
	d.surface.SetViewport(d.width, d.height)
	d.resized = false

	logging.Logger().Debug("device reset", "width", d.width, "height", d.height, "fullscreen", d.fullscreen, "vsync", d.vsync)
	return nil
}

// ToggleFullscreen schedules a mode switch for the next reset and returns
// the new mode.
func (d *Device) ToggleFullscreen() bool {
	d.fullscreen = !d.fullscreen
	d.modeChanged = true
	return d.fullscreen
}

// SetVSync schedules a swap interval change.
func (d *Device) SetVSync(enabled bool) {
	if d.vsync != enabled {
		d.vsync = enabled
		d.vsyncChanged = true
	}
}

// Fullscreen reports the current or pending mode.
func (d *Device) Fullscreen() bool {
	return d.fullscreen
}

// FramebufferSize is the size applied by the last reset.
func (d *Device) FramebufferSize() (int, int) {
	return d.width, d.height
}
