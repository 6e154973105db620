package game

import (
	"multilight/internal/camera"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var mouseButtons = map[glfw.MouseButton]camera.Button{
	glfw.MouseButtonLeft:   camera.ButtonLeft,
	glfw.MouseButtonRight:  camera.ButtonRight,
	glfw.MouseButtonMiddle: camera.ButtonMiddle,
}

// SetupInputHandlers routes window events to the camera and input manager.
func SetupInputHandlers(app *App) {
	window := app.window
	im := app.input
	cam := app.scene.Camera

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		cam.Move(float32(xpos), float32(ypos))
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := mouseButtons[button]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			x, y := w.GetCursorPos()
			cam.Press(b, float32(x), float32(y))
		case glfw.Release:
			cam.Release(b)
		}
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cam.Wheel(float32(yoff))
	})

	// Handle keyboard actions
	im.SetKeyCallback(window)

	// Framebuffer resizes are picked up by the device probe on the next frame.

	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		app.focused = focused
		if !focused {
			im.Reset()
			for _, b := range mouseButtons {
				cam.Release(b)
			}
		}
	})
}
