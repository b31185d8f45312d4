package gui

// ClipboardProvider abstracts system clipboard access.
//
// For GLFW:
//
//	type GLFWClipboard struct {
//	    window *glfw.Window
//	}
//
//	func (c *GLFWClipboard) GetText() string {
//	    return c.window.GetClipboardString()
//	}
//
//	func (c *GLFWClipboard) SetText(text string) {
//	    c.window.SetClipboardString(text)
//	}
type ClipboardProvider interface {
	// GetText returns the clipboard text, or "" when it holds none.
	GetText() string

	// SetText replaces the clipboard contents.
	SetText(text string)
}

// SetClipboard sets the clipboard used by text controls for Ctrl+V and
// Ctrl+C. Nil disables both.
//
//	ctx.SetClipboard(&GLFWClipboard{window: window})
func (ctx *Context) SetClipboard(cp ClipboardProvider) {
	ctx.clipboard = cp
}

// Clipboard returns the clipboard provider, or nil if not set.
func (ctx *Context) Clipboard() ClipboardProvider {
	return ctx.clipboard
}

func (ctx *Context) clipboardText() string {
	if ctx.clipboard == nil {
		return ""
	}
	return ctx.clipboard.GetText()
}

func (ctx *Context) setClipboardText(text string) {
	if ctx.clipboard != nil {
		ctx.clipboard.SetText(text)
	}
}
