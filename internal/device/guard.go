// Package device keeps GPU resources valid across device loss and reset.
package device

import (
	"errors"
	"fmt"

	"multilight/internal/logging"
)

// Status is the result of probing the device before a frame.
type Status int

const (
	// Valid means rendering can proceed.
	Valid Status = iota
	// NeedsReset means the device was lost but can be reset now.
	NeedsReset
	// Lost means the device is unavailable and cannot be reset yet.
	Lost
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case NeedsReset:
		return "needs reset"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Device is the rendering device as seen by the guard.
type Device interface {
	Probe() Status
	Reset() error
}

// ResourceOwner holds device-dependent state that must be released before a
// reset and recreated after it.
type ResourceOwner interface {
	OnLostDevice() error
	OnResetDevice() error
}

// ErrResetFailed wraps every failure of the reset sequence.
var ErrResetFailed = errors.New("device reset failed")

// Guard probes the device each frame and runs the reset sequence when needed.
type Guard struct {
	dev    Device
	owners []ResourceOwner

	failures    int
	consecutive int
}

// NewGuard creates a guard for dev.
func NewGuard(dev Device) *Guard {
	return &Guard{dev: dev}
}

// Register adds owners. Owners release in registration order and reacquire
// in reverse order.
func (g *Guard) Register(owners ...ResourceOwner) {
	g.owners = append(g.owners, owners...)
}

// BeginFrame reports whether the frame can be rendered. A failed reset is
// logged and retried on the next call.
func (g *Guard) BeginFrame() bool {
	switch status := g.dev.Probe(); status {
	case Valid:
		return true
	case NeedsReset:
		if err := g.Reset(); err != nil {
			logging.Logger().Warn("skipping frame", "err", err, "consecutive", g.consecutive)
			return false
		}
		return true
	default:
		return false
	}
}

// Reset releases every owner, resets the device and reacquires the owners.
// The first failing step aborts the sequence.
func (g *Guard) Reset() error {
	if err := g.reset(); err != nil {
		g.failures++
		g.consecutive++
		return fmt.Errorf("%w: %w", ErrResetFailed, err)
	}
	g.consecutive = 0
	logging.Logger().Debug("device reset", "owners", len(g.owners))
	return nil
}

func (g *Guard) reset() error {
	for i, o := range g.owners {
		if err := o.OnLostDevice(); err != nil {
			return fmt.Errorf("release owner %d: %w", i, err)
		}
	}
	if err := g.dev.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	for i := len(g.owners) - 1; i >= 0; i-- {
		if err := g.owners[i].OnResetDevice(); err != nil {
			return fmt.Errorf("reacquire owner %d: %w", i, err)
		}
	}
	return nil
}

// Failures is the total number of failed resets.
func (g *Guard) Failures() int {
	return g.failures
}

// ConsecutiveFailures is the number of failed resets since the last success.
func (g *Guard) ConsecutiveFailures() int {
	return g.consecutive
}
