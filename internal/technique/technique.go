// Package technique selects the shading technique: capability tier, pass
// mode and the number of lights the technique consumes.
package technique

import "multilight/internal/config"

// Tier is a shading capability level.
type Tier int

const (
	Tier2 Tier = 2
	Tier3 Tier = 3
)

func (t Tier) String() string {
	switch t {
	case Tier2:
		return "Shader Model 2.0"
	case Tier3:
		return "Shader Model 3.0"
	}
	return "unknown tier"
}

// State is a reachable combination of tier and pass mode.
type State int

const (
	Tier2SinglePass State = iota
	Tier2MultiPass
	Tier3SinglePass
)

func (s State) String() string {
	switch s {
	case Tier2SinglePass:
		return "Tier2_SinglePass"
	case Tier2MultiPass:
		return "Tier2_MultiPass"
	case Tier3SinglePass:
		return "Tier3_SinglePass"
	}
	return "unknown"
}

// Tier returns the capability tier of the state.
func (s State) Tier() Tier {
	if s == Tier3SinglePass {
		return Tier3
	}
	return Tier2
}

// MultiPass reports whether the state draws once per light.
func (s State) MultiPass() bool {
	return s == Tier2MultiPass
}

// LightCount is the number of lights the state binds and draws.
func (s State) LightCount() int {
	if s.Tier() == Tier3 {
		return config.MaxLightsTier3
	}
	return config.MaxLightsTier2
}

// Program identifies a compiled shading program.
type Program int

const (
	ProgramTier2 Program = iota
	ProgramTier3
	ProgramCount
)

// Handle is a technique resolved once per state change: which program to
// use, the technique entry point inside it and how draws are issued.
type Handle struct {
	State     State
	Program   Program
	Name      string
	MultiPass bool
	// LightCountParam is set when the program reads the light count from a
	// uniform instead of unrolling a fixed number of lights.
	LightCountParam bool
}

var handles = [...]Handle{
	Tier2SinglePass: {State: Tier2SinglePass, Program: ProgramTier2, Name: "PerPixelPointLightingSinglePass"},
	Tier2MultiPass:  {State: Tier2MultiPass, Program: ProgramTier2, Name: "PerPixelPointLightingMultiPass", MultiPass: true},
	Tier3SinglePass: {State: Tier3SinglePass, Program: ProgramTier3, Name: "PerPixelPointLighting", LightCountParam: true},
}

// Resolve returns the technique handle for a state.
func Resolve(s State) Handle {
	return handles[s]
}
