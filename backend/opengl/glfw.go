package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/rgui"
)

// GLFWInputAdapter collects GLFW window events into a gui.InputState.
//
// Call Update at the start of a frame, then glfw.PollEvents, then hand the
// state to gui.GUI.Begin.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gui.InputState
}

// NewGLFWInputAdapter installs the window callbacks.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  gui.NewInputState(),
	}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Update clears last frame's events and samples pointer and modifiers.
func (a *GLFWInputAdapter) Update() *gui.InputState {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	// Command on macOS plays the role of Ctrl for copy and paste.
	a.input.ModCtrl = a.down(glfw.KeyLeftControl, glfw.KeyRightControl, glfw.KeyLeftSuper, glfw.KeyRightSuper)
	return a.input
}

func (a *GLFWInputAdapter) down(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Input returns the state being filled.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

// OS key repeat is ignored; text controls repeat on their own frame count.
func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := keyMap[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := buttonMap[button]
	if !ok {
		return
	}
	a.input.SetMouseButton(b, action == glfw.Press)
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// Clipboard implements gui.ClipboardProvider with the window's clipboard.
type Clipboard struct {
	Window *glfw.Window
}

var _ gui.ClipboardProvider = Clipboard{}

// GetText implements gui.ClipboardProvider.
func (c Clipboard) GetText() string {
	return c.Window.GetClipboardString()
}

// SetText implements gui.ClipboardProvider.
func (c Clipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}

var keyMap = map[glfw.Key]gui.Key{
	glfw.KeyLeft:      gui.KeyLeft,
	glfw.KeyRight:     gui.KeyRight,
	glfw.KeyUp:        gui.KeyUp,
	glfw.KeyDown:      gui.KeyDown,
	glfw.KeyHome:      gui.KeyHome,
	glfw.KeyEnd:       gui.KeyEnd,
	glfw.KeyDelete:    gui.KeyDelete,
	glfw.KeyBackspace: gui.KeyBackspace,
	glfw.KeyEnter:     gui.KeyEnter,
	glfw.KeyKPEnter:   gui.KeyEnter,
	glfw.KeyC:         gui.KeyC,
	glfw.KeyV:         gui.KeyV,
}

var buttonMap = map[glfw.MouseButton]gui.MouseButton{
	glfw.MouseButtonLeft:   gui.MouseButtonLeft,
	glfw.MouseButtonRight:  gui.MouseButtonRight,
	glfw.MouseButtonMiddle: gui.MouseButtonMiddle,
}
