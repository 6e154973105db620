package game

import (
	"math"
	"time"
)

const (
	frameTimerSamples = 50
	// Deltas further than this from the running average are dropped.
	frameTimerSpike = 1.0
)

// FrameTimer turns wall clock ticks into a smoothed frame delta. It keeps the
// most recent deltas and returns their mean, ignoring spikes.
type FrameTimer struct {
	samples  [frameTimerSamples]float32 // most recent first
	count    int
	smoothed float32
	last     time.Time
	primed   bool
}

// Tick records now and returns the smoothed delta in seconds. The first call
// primes the timer and returns 0.
func (t *FrameTimer) Tick(now time.Time) float32 {
	if !t.primed {
		t.primed = true
		t.last = now
		return 0
	}
	elapsed := float32(now.Sub(t.last).Seconds())
	t.last = now

	if math.Abs(float64(elapsed-t.smoothed)) < frameTimerSpike {
		copy(t.samples[1:], t.samples[:len(t.samples)-1])
		t.samples[0] = elapsed
		if t.count < frameTimerSamples {
			t.count++
		}
	}

	var sum float32
	for _, s := range t.samples[:t.count] {
		sum += s
	}
	t.smoothed = 0
	if t.count > 0 {
		t.smoothed = sum / float32(t.count)
	}
	return t.smoothed
}

// FPSCounter counts frames over one-second windows.
type FPSCounter struct {
	accum  float32
	frames int
	fps    int
}

// Update adds a frame of length dt.
func (c *FPSCounter) Update(dt float32) {
	c.accum += dt
	if c.accum > 1 {
		c.fps = c.frames
		c.frames = 0
		c.accum = 0
		return
	}
	c.frames++
}

// FPS is the frame count of the last completed window.
func (c *FPSCounter) FPS() int {
	return c.fps
}
