package technique

import (
	"math/rand"
	"testing"
)

func TestInitialState(t *testing.T) {
	tests := []struct {
		name  string
		caps  Capabilities
		state State
		count int
	}{
		{"tier3 capable", Capabilities{Tier3: true}, Tier3SinglePass, 8},
		{"tier2 only", Capabilities{}, Tier2SinglePass, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(tt.caps)
			if s.State() != tt.state {
				t.Errorf("state = %v, want %v", s.State(), tt.state)
			}
			if s.ActiveLightCount() != tt.count {
				t.Errorf("light count = %d, want %d", s.ActiveLightCount(), tt.count)
			}
			if s.Technique().State != tt.state {
				t.Errorf("technique resolved for %v, want %v", s.Technique().State, tt.state)
			}
		})
	}
}

func TestTransitions(t *testing.T) {
	type command int
	const (
		toggleTier command = iota
		togglePass
	)

	tests := []struct {
		name     string
		caps     Capabilities
		commands []command
		want     State
	}{
		{"tier3 to tier2", Capabilities{Tier3: true}, []command{toggleTier}, Tier2SinglePass},
		{"tier3 ignores pass toggle", Capabilities{Tier3: true}, []command{togglePass}, Tier3SinglePass},
		{"tier2 only ignores tier toggle", Capabilities{}, []command{toggleTier}, Tier2SinglePass},
		{"tier2 only multi pass", Capabilities{}, []command{togglePass}, Tier2MultiPass},
		{"tier2 only multi pass ignores tier toggle", Capabilities{}, []command{togglePass, toggleTier}, Tier2MultiPass},
		{"pass toggle round trip", Capabilities{}, []command{togglePass, togglePass}, Tier2SinglePass},
		{"multi pass back to tier3", Capabilities{Tier3: true}, []command{toggleTier, togglePass, toggleTier}, Tier3SinglePass},
		{"pass mode remembered", Capabilities{Tier3: true}, []command{toggleTier, togglePass, toggleTier, toggleTier}, Tier2MultiPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(tt.caps)
			for _, c := range tt.commands {
				switch c {
				case toggleTier:
					s.ToggleTier()
				case togglePass:
					s.TogglePassMode()
				}
			}
			if s.State() != tt.want {
				t.Errorf("state = %v, want %v", s.State(), tt.want)
			}
		})
	}
}

func TestTierRoundTripScenario(t *testing.T) {
	s := NewSelector(Capabilities{Tier3: true})
	if s.State() != Tier3SinglePass || s.ActiveLightCount() != 8 {
		t.Fatalf("start: %v with %d lights", s.State(), s.ActiveLightCount())
	}

	s.ToggleTier()
	if s.State().Tier() != Tier2 || s.ActiveLightCount() != 2 {
		t.Fatalf("after tier toggle: %v with %d lights", s.State(), s.ActiveLightCount())
	}

	s.TogglePassMode()
	if s.State() != Tier2MultiPass || s.ActiveLightCount() != 2 {
		t.Fatalf("after pass toggle: %v with %d lights", s.State(), s.ActiveLightCount())
	}

	s.ToggleTier()
	if s.State() != Tier3SinglePass || s.ActiveLightCount() != 8 {
		t.Fatalf("end: %v with %d lights", s.State(), s.ActiveLightCount())
	}
}

func TestReachableStatesHoldInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, caps := range []Capabilities{{Tier3: true}, {}} {
		s := NewSelector(caps)
		for i := 0; i < 2000; i++ {
			if rng.Intn(2) == 0 {
				s.ToggleTier()
			} else {
				s.TogglePassMode()
			}

			st := s.State()
			if st == Tier3SinglePass && !caps.Tier3 {
				t.Fatalf("reached tier 3 without support")
			}
			want := 2
			if st.Tier() == Tier3 {
				want = 8
			}
			if s.ActiveLightCount() != want {
				t.Fatalf("%v binds %d lights, want %d", st, s.ActiveLightCount(), want)
			}
			h := s.Technique()
			if h.State != st {
				t.Fatalf("stale technique %v for state %v", h.State, st)
			}
			if h.MultiPass != st.MultiPass() {
				t.Fatalf("technique multi pass %v for %v", h.MultiPass, st)
			}
			if h.LightCountParam != (st.Tier() == Tier3) {
				t.Fatalf("light count parameter %v for %v", h.LightCountParam, st)
			}
		}
	}
}

func TestResolvePrograms(t *testing.T) {
	tests := []struct {
		state   State
		program Program
		name    string
	}{
		{Tier2SinglePass, ProgramTier2, "PerPixelPointLightingSinglePass"},
		{Tier2MultiPass, ProgramTier2, "PerPixelPointLightingMultiPass"},
		{Tier3SinglePass, ProgramTier3, "PerPixelPointLighting"},
	}
	for _, tt := range tests {
		h := Resolve(tt.state)
		if h.Program != tt.program || h.Name != tt.name {
			t.Errorf("Resolve(%v) = %+v", tt.state, h)
		}
	}
}
