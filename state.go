package gui

// ControlState is the interaction state a control is drawn in. It selects
// which color triple (border, base, text) of the style table is used.
type ControlState int

const (
	StateNormal ControlState = iota
	StateFocused
	StatePressed
	StateDisabled
)

func (s ControlState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateFocused:
		return "focused"
	case StatePressed:
		return "pressed"
	case StateDisabled:
		return "disabled"
	}
	return "unknown"
}

// colorProperty returns the slot of a color for this state. base is one of
// BorderColorNormal, BaseColorNormal or TextColorNormal.
func (s ControlState) colorProperty(base Property) Property {
	return base + Property(s)*3
}

// SetState sets the global state every control starts from.
func (ctx *Context) SetState(s ControlState) { ctx.state = s }

// GetState returns the global control state.
func (ctx *Context) GetState() ControlState { return ctx.state }

// Enable returns controls to the normal state.
func (ctx *Context) Enable() { ctx.state = StateNormal }

// Disable draws controls disabled and ignores their input.
func (ctx *Context) Disable() { ctx.state = StateDisabled }

// Lock ignores input for every control until Unlock.
func (ctx *Context) Lock() { ctx.locked = true }

// Unlock re-enables input.
func (ctx *Context) Unlock() { ctx.locked = false }

// IsLocked reports whether input is locked.
func (ctx *Context) IsLocked() bool { return ctx.locked }

// SetAlpha fades every color drawn by controls. alpha is clamped to [0, 1].
func (ctx *Context) SetAlpha(alpha float32) {
	ctx.alpha = clampf(alpha, 0, 1)
}

// Alpha returns the global fade.
func (ctx *Context) Alpha() float32 { return ctx.alpha }

// interactive reports whether controls may react to input this frame.
// A drag owned by another control blocks everyone else.
func (ctx *Context) interactive(id ID) bool {
	if ctx.state == StateDisabled || ctx.locked || ctx.Input == nil {
		return false
	}
	return !ctx.drag.Active() || ctx.drag.Owns(id)
}
