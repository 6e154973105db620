// Package input maps physical keys to logical actions and tracks their state
// between frames.
package input

import "github.com/go-gl/glfw/v3.3/glfw"

// Action represents a logical action, not a physical key.
type Action int

const (
	ActionQuit Action = iota
	ActionToggleAnimation
	ActionIncreaseRadius
	ActionDecreaseRadius
	ActionToggleHelp
	ActionToggleMarkers
	ActionTogglePassMode
	ActionToggleTier
	ActionToggleTexturing
	ActionFullscreen
	ActionToggleVSync
	ActionModAlt
	ActionCount // Sentinel value for array sizing
)

// InputManager tracks key state and maps keys to actions. All methods must
// be called from the thread that polls window events.
type InputManager struct {
	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool

	// Edge flags and press counts, reset by PostUpdate
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
	presses      [ActionCount]int
}

// NewInputManager creates an InputManager with the default key bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeySpace, ActionToggleAnimation)
	im.BindKey(glfw.KeyEqual, ActionIncreaseRadius) // '+' without shift
	im.BindKey(glfw.KeyKPAdd, ActionIncreaseRadius)
	im.BindKey(glfw.KeyMinus, ActionDecreaseRadius)
	im.BindKey(glfw.KeyKPSubtract, ActionDecreaseRadius)
	im.BindKey(glfw.KeyH, ActionToggleHelp)
	im.BindKey(glfw.KeyL, ActionToggleMarkers)
	im.BindKey(glfw.KeyM, ActionTogglePassMode)
	im.BindKey(glfw.KeyS, ActionToggleTier)
	im.BindKey(glfw.KeyT, ActionToggleTexturing)
	im.BindKey(glfw.KeyV, ActionToggleVSync)
	im.BindKey(glfw.KeyEnter, ActionFullscreen)
	im.BindKey(glfw.KeyKPEnter, ActionFullscreen)

	im.BindKey(glfw.KeyLeftAlt, ActionModAlt)
	im.BindKey(glfw.KeyRightAlt, ActionModAlt)

	return im
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key.
func (im *InputManager) UnbindKey(key glfw.Key) {
	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key event. Auto-repeat events count as presses
// but do not raise JustPressed.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed {
			im.presses[act]++
			if !im.currentState[act] {
				im.justPressed[act] = true
			}
		} else if im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// SetKeyCallback installs the GLFW key callback for this input manager.
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate must be called at the end of each frame, after all input
// checks are done.
func (im *InputManager) PostUpdate() {
	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
		im.presses[i] = 0
	}
}

// Reset releases every action, e.g. when the window loses focus.
func (im *InputManager) Reset() {
	im.currentState = [ActionCount]bool{}
	im.PostUpdate()
}

// IsActive returns true if the action is currently being held down.
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame.
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame.
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justReleased[action]
}

// Presses returns the number of press and repeat events for the action in
// the current frame.
func (im *InputManager) Presses(action Action) int {
	if action < 0 || action >= ActionCount {
		return 0
	}
	return im.presses[action]
}
