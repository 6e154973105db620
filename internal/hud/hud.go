// Package hud composes the overlay text shown in the corner of the window.
package hud

import (
	"strconv"

	"multilight/internal/technique"
)

// HelpLines is the help screen.
var HelpLines = []string{
	"Left mouse click and drag to track camera",
	"Middle mouse click and drag to dolly camera",
	"Right mouse click and drag to orbit camera",
	"Mouse wheel to dolly camera",
	"",
	"Press +/- to increase/decrease light radius",
	"Press SPACE to start/stop light animation",
	"Press L to enable/disable rendering of lights",
	"Press M to enable/disable multi pass lighting [Shader Model 2.0]",
	"Press S to toggle between Shader Model 2.0 and 3.0",
	"Press T to enable/disable textures",
	"Press V to enable/disable vertical sync",
	"Press ALT + ENTER to toggle full screen",
	"Press ESC to exit",
	"",
	"Press H to hide help",
}

// Status is the state shown on the status screen.
type Status struct {
	FPS         int
	MSAASamples int
	Anisotropy  int
	State       technique.State
	LightRadius float32
}

// Lines returns the overlay text: the help screen when help is set,
// otherwise the status screen.
func Lines(help bool, st Status) []string {
	if help {
		return HelpLines
	}
	return StatusLines(st)
}

// StatusLines formats the status screen.
func StatusLines(st Status) []string {
	lines := make([]string, 0, 8)
	lines = append(lines, "FPS: "+strconv.Itoa(st.FPS))
	if st.MSAASamples > 1 {
		lines = append(lines, "Multisample anti-aliasing: "+strconv.Itoa(st.MSAASamples)+"x")
	}
	lines = append(lines,
		"Anisotropic filtering: "+strconv.Itoa(st.Anisotropy)+"x",
		st.State.Tier().String(),
	)
	if st.State.MultiPass() {
		lines = append(lines, "Technique: Multi pass lighting")
	} else {
		lines = append(lines, "Technique: Single pass lighting")
	}
	lines = append(lines,
		"Light radius: "+strconv.FormatFloat(float64(st.LightRadius), 'g', -1, 32),
		"",
		"Press H to display help",
	)
	return lines
}
