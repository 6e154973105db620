package game

import (
	"time"

	"multilight/internal/config"
)

// FPSLimiter provides high-precision frame rate limiting when vsync is off.
type FPSLimiter struct {
	settings *config.Settings
	next     time.Time
}

// NewFPSLimiter creates a limiter that reads its cap from settings.
func NewFPSLimiter(settings *config.Settings) *FPSLimiter {
	return &FPSLimiter{settings: settings}
}

// Wait blocks until the next frame should start. Uses a hybrid sleep/spin
// approach for better precision on high caps.
func (f *FPSLimiter) Wait() {
	target := f.frameTime()
	if target <= 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// Resync after a hitch to avoid drift
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

// frameTime is the target frame duration, or 0 when no cap applies.
func (f *FPSLimiter) frameTime() time.Duration {
	if f.settings.VSync() {
		return 0
	}
	limit := f.settings.FPSLimit()
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}
