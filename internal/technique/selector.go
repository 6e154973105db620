package technique

import "multilight/internal/logging"

// Capabilities is the result of the startup capability query.
type Capabilities struct {
	Tier3 bool
}

// Selector is the technique state machine. Commands that would need an
// unsupported tier, or a multi-pass tier-3 state, are ignored.
type Selector struct {
	caps      Capabilities
	state     State
	multiPass bool // remembered pass mode for tier 2
	handle    Handle
}

// NewSelector starts in tier 3 when the hardware supports it, otherwise in
// tier-2 single pass.
func NewSelector(caps Capabilities) *Selector {
	s := &Selector{caps: caps}
	if caps.Tier3 {
		s.setState(Tier3SinglePass)
	} else {
		s.setState(Tier2SinglePass)
	}
	return s
}

// State returns the current state.
func (s *Selector) State() State {
	return s.state
}

// Technique returns the handle resolved for the current state.
func (s *Selector) Technique() Handle {
	return s.handle
}

// ActiveLightCount is the number of lights bound and drawn.
func (s *Selector) ActiveLightCount() int {
	return s.state.LightCount()
}

// ToggleTier swaps between tier 2 and tier 3. It does nothing on hardware
// without tier-3 support.
func (s *Selector) ToggleTier() {
	if !s.caps.Tier3 {
		return
	}
	if s.state.Tier() == Tier3 {
		if s.multiPass {
			s.setState(Tier2MultiPass)
		} else {
			s.setState(Tier2SinglePass)
		}
		return
	}
	s.setState(Tier3SinglePass)
}

// TogglePassMode swaps single and multi pass lighting. Only tier 2 has a
// multi-pass technique; in tier 3 it does nothing.
func (s *Selector) TogglePassMode() {
	switch s.state {
	case Tier2SinglePass:
		s.multiPass = true
		s.setState(Tier2MultiPass)
	case Tier2MultiPass:
		s.multiPass = false
		s.setState(Tier2SinglePass)
	}
}

func (s *Selector) setState(st State) {
	s.state = st
	s.handle = Resolve(st)
	logging.Logger().Debug("technique selected", "state", st, "technique", s.handle.Name, "lights", st.LightCount())
}
