package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key is one of the keys text controls react to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyC // Copy with ModCtrl
	KeyV // Paste with ModCtrl
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:      "--",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeyEnter:     "Enter",
	KeyC:         "C",
	KeyV:         "V",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// InputState is the pointer and keyboard input of one frame. A backend
// fills it from window events; controls only read it, except for typed
// codepoints which the focused text control consumes.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // Went down this frame
	mouseUp      [MouseButtonCount]bool // Went up this frame

	MouseWheelX float32
	MouseWheelY float32 // Notches, positive away from the user

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool
	keyUp      [KeyCount]bool

	// Typed codepoints, oldest first. Text controls consume them with NextChar.
	InputChars []rune
	charHead   int

	ModCtrl bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears the single-frame events: clicks, releases, key presses,
// typed text and the wheel. Held buttons and keys stay down.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
	s.InputChars = s.InputChars[:0]
	s.charHead = 0
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a button going down or up.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey records a key going down or up.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if !down && wasDown {
		s.keyUp[key] = true
	}
}

// SetMouseWheel sets this frame's wheel movement.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// AddInputChar queues a typed codepoint.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown reports whether a button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked reports whether a button went down this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased reports whether a button went up this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown reports whether a key is held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed reports whether a key went down this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased reports whether a key went up this frame.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// AnyKeyDown reports whether any of keys is held.
func (s *InputState) AnyKeyDown(keys ...Key) bool {
	for _, k := range keys {
		if s.KeyDown(k) {
			return true
		}
	}
	return false
}

// NextChar pops the oldest typed codepoint, or returns 0 when none is left.
func (s *InputState) NextChar() rune {
	if s.charHead >= len(s.InputChars) {
		return 0
	}
	r := s.InputChars[s.charHead]
	s.charHead++
	return r
}

// HasInputChars reports whether typed codepoints remain unconsumed.
func (s *InputState) HasInputChars() bool {
	return s.charHead < len(s.InputChars)
}
