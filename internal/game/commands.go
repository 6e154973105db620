package game

import (
	"multilight/internal/input"
	"multilight/internal/scene"
)

// actionCommands maps input actions to scene commands. Repeating commands
// fire once per key press or auto-repeat event.
var actionCommands = []struct {
	action  input.Action
	command scene.Command
	repeat  bool
}{
	{input.ActionQuit, scene.Quit, false},
	{input.ActionToggleAnimation, scene.ToggleAnimation, false},
	{input.ActionIncreaseRadius, scene.IncreaseRadius, true},
	{input.ActionDecreaseRadius, scene.DecreaseRadius, true},
	{input.ActionToggleHelp, scene.ToggleHelp, false},
	{input.ActionToggleMarkers, scene.ToggleMarkers, false},
	{input.ActionTogglePassMode, scene.TogglePassMode, false},
	{input.ActionToggleTier, scene.ToggleTier, false},
	{input.ActionToggleTexturing, scene.ToggleTexturing, false},
	{input.ActionToggleVSync, scene.ToggleVSync, false},
}

// Commands returns the scene commands triggered by this frame's input.
func Commands(im *input.InputManager) []scene.Command {
	var cmds []scene.Command
	for _, ac := range actionCommands {
		n := 0
		if ac.repeat {
			n = im.Presses(ac.action)
		} else if im.JustPressed(ac.action) {
			n = 1
		}
		for i := 0; i < n; i++ {
			cmds = append(cmds, ac.command)
		}
	}
	// Alt+Enter
	if im.JustPressed(input.ActionFullscreen) && im.IsActive(input.ActionModAlt) {
		cmds = append(cmds, scene.ToggleFullscreen)
	}
	return cmds
}
