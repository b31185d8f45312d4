package gui

import "fmt"

// Window and panel geometry.
const (
	WindowStatusBarHeight = 24
	windowCloseButtonSize = 18
	lineTextPadding       = 8
	tooltipPadding        = 16
)

// TextSplit splits text on delim and '\n'. rows[i] is the line item i was
// found on. At most MaxSplitItems items are returned and only the first
// MaxTextBufferSize bytes are read; the rest is dropped.
func (ctx *Context) TextSplit(text string, delim byte) (items []string, rows []int) {
	if len(text) > ctx.config.MaxTextBufferSize {
		text = text[:ctx.config.MaxTextBufferSize]
	}
	row, start := 0, 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != delim && text[i] != '\n' {
			continue
		}
		items = append(items, text[start:i])
		rows = append(rows, row)
		if len(items) == ctx.config.MaxSplitItems {
			break
		}
		if i < len(text) && text[i] == '\n' {
			row++
		}
		start = i + 1
	}
	return items, rows
}

// EnableTooltip turns control tooltips on.
func (ctx *Context) EnableTooltip() { ctx.tooltipEnabled = true }

// DisableTooltip turns control tooltips off.
func (ctx *Context) DisableTooltip() { ctx.tooltipEnabled = false }

// SetTooltip sets the tooltip shown by hovered controls that have none of
// their own. Empty clears it.
func (ctx *Context) SetTooltip(text string) { ctx.tooltip = text }

// drawTooltip shows a tooltip panel under a hovered control.
func (ctx *Context) drawTooltip(bounds Rect, text string) {
	if text == "" {
		text = ctx.tooltip
	}
	if !ctx.tooltipEnabled || ctx.locked || ctx.drag.Active() || text == "" {
		return
	}
	w := float32(ctx.GetTextWidth(text))
	if ctx.DisplaySize.X > 0 && bounds.X+w+tooltipPadding > ctx.DisplaySize.X {
		bounds.X -= w + tooltipPadding - bounds.W
	}
	r := Rect{X: bounds.X, Y: bounds.Y + bounds.H + 4, W: w + tooltipPadding, H: ctx.stylef(CtrlDefault, TextSize) + 8}
	ctx.drawPanel(r, StateNormal)
	ctx.DrawText(text, r, TextAlignCenter, ctx.color(CtrlLabel, TextColorNormal, StateNormal))
}

// WindowBox draws a panel with a title bar and close button. It returns
// true when the close button is clicked.
func (ctx *Context) WindowBox(bounds Rect, title string, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlDefault, o)

	if bounds.H < 2*WindowStatusBarHeight {
		bounds.H = 2 * WindowStatusBarHeight
	}
	bar := Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: WindowStatusBarHeight}
	panel := Rect{X: bounds.X, Y: bounds.Y + WindowStatusBarHeight - 1, W: bounds.W, H: bounds.H - WindowStatusBarHeight + 1}
	closeRec := Rect{
		X: bar.X + bar.W - ctx.stylef(CtrlStatusBar, BorderWidth) - 20,
		Y: bar.Y + WindowStatusBarHeight/2 - windowCloseButtonSize/2,
		W: windowCloseButtonSize,
		H: windowCloseButtonSize,
	}

	ctx.StatusBar(bar, title)
	ctx.drawPanel(panel, ctx.state)

	prevBorder := ctx.style.Get(CtrlButton, BorderWidth)
	prevAlign := ctx.style.Get(CtrlButton, TextAlignment)
	ctx.style.Set(CtrlButton, BorderWidth, 1)
	ctx.style.Set(CtrlButton, TextAlignment, uint32(TextAlignCenter))
	closed := ctx.button(id, closeRec, IconText(IconCrossSmall, ""))
	ctx.style.Set(CtrlButton, BorderWidth, prevBorder)
	ctx.style.Set(CtrlButton, TextAlignment, prevAlign)
	return closed
}

// GroupBox draws a frame with a title set into its top line.
func (ctx *Context) GroupBox(bounds Rect, text string) {
	color := ctx.lineColor()
	ctx.drawRect(Rect{X: bounds.X, Y: bounds.Y, W: 1, H: bounds.H}, 0, ColorTransparent, color)
	ctx.drawRect(Rect{X: bounds.X, Y: bounds.Y + bounds.H - 1, W: bounds.W, H: 1}, 0, ColorTransparent, color)
	ctx.drawRect(Rect{X: bounds.X + bounds.W - 1, Y: bounds.Y, W: 1, H: bounds.H}, 0, ColorTransparent, color)
	size := ctx.stylef(CtrlDefault, TextSize)
	ctx.Line(Rect{X: bounds.X, Y: bounds.Y - size/2, W: bounds.W, H: size}, text)
}

func (ctx *Context) lineColor() uint32 {
	if ctx.state == StateDisabled {
		return ctx.styleColor(CtrlDefault, BorderColorDisabled)
	}
	return ctx.styleColor(CtrlDefault, LineColor)
}

// Line draws a horizontal separator through the middle of bounds, with
// optional text set into it.
func (ctx *Context) Line(bounds Rect, text string) {
	color := ctx.lineColor()
	midY := bounds.Y + bounds.H/2
	if text == "" {
		ctx.drawRect(Rect{X: bounds.X, Y: midY, W: bounds.W, H: 1}, 0, ColorTransparent, color)
		return
	}
	tw := float32(ctx.GetTextWidth(text)) + 2
	tb := Rect{X: bounds.X + lineTextPadding, Y: bounds.Y, W: tw, H: bounds.H}
	ctx.drawRect(Rect{X: bounds.X, Y: midY, W: lineTextPadding - 2, H: 1}, 0, ColorTransparent, color)
	ctx.DrawText(text, tb, TextAlignLeft, color)
	ctx.drawRect(Rect{X: bounds.X + lineTextPadding + tw + 4, Y: midY, W: bounds.W - tw - lineTextPadding - 4, H: 1}, 0, ColorTransparent, color)
}

// drawPanel draws the background box used by panels and windows.
func (ctx *Context) drawPanel(bounds Rect, state ControlState) {
	border := ctx.styleColor(CtrlDefault, LineColor)
	fill := ctx.styleColor(CtrlDefault, BackgroundColor)
	if state == StateDisabled {
		border = ctx.styleColor(CtrlDefault, BorderColorDisabled)
		fill = ctx.styleColor(CtrlDefault, BaseColorDisabled)
	}
	ctx.drawRect(bounds, ctx.stylef(CtrlDefault, BorderWidth), border, fill)
}

// Panel draws a background box, with a title bar when text is not empty.
func (ctx *Context) Panel(bounds Rect, text string) {
	if text != "" {
		ctx.StatusBar(Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: WindowStatusBarHeight}, text)
		bounds.Y += WindowStatusBarHeight - 1
		bounds.H -= WindowStatusBarHeight - 1
	}
	ctx.drawPanel(bounds, ctx.state)
}

// StatusBar draws a bordered bar with text.
func (ctx *Context) StatusBar(bounds Rect, text string) {
	ctx.drawControlRect(CtrlStatusBar, bounds, ctx.state)
	ctx.drawControlText(CtrlStatusBar, text, bounds, ctx.state)
}

// DummyRec draws a placeholder box with centered text.
func (ctx *Context) DummyRec(bounds Rect, text string) {
	state := ctx.state
	if ctx.interactive(0) && bounds.Contains(ctx.mouse()) {
		state = StateFocused
		if ctx.Input.MouseDown(MouseButtonLeft) {
			state = StatePressed
		}
	}
	fill := ctx.styleColor(CtrlDefault, BaseColorNormal)
	textColor := ctx.color(CtrlButton, TextColorNormal, StateNormal)
	if state == StateDisabled {
		fill = ctx.styleColor(CtrlDefault, BaseColorDisabled)
		textColor = ctx.color(CtrlButton, TextColorNormal, StateDisabled)
	}
	ctx.drawRect(bounds, 0, ColorTransparent, fill)
	ctx.DrawText(text, ctx.GetTextBounds(CtrlDefault, bounds), TextAlignCenter, textColor)
}

// Label draws text inside bounds.
func (ctx *Context) Label(bounds Rect, text string) {
	ctx.drawControlText(CtrlLabel, text, bounds, ctx.state)
}

// button draws a button and reports whether it was clicked.
func (ctx *Context) button(id ID, bounds Rect, text string) bool {
	state, released := ctx.hover(id, bounds)
	ctx.drawControlRect(CtrlButton, bounds, state)
	ctx.drawControlText(CtrlButton, text, bounds, state)
	return released
}

// Button draws a push button. It returns true when the left button is
// released over it.
func (ctx *Context) Button(bounds Rect, text string, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlButton, o)
	state, released := ctx.hover(id, bounds)
	ctx.drawControlRect(CtrlButton, bounds, state)
	ctx.drawControlText(CtrlButton, text, bounds, state)
	if state == StateFocused {
		ctx.drawTooltip(bounds, GetOpt(o, OptTooltip))
	}
	return released
}

// LabelButton is a borderless button. bounds grow to fit the text.
func (ctx *Context) LabelButton(bounds Rect, text string, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlLabel, o)
	tw := float32(ctx.GetTextWidth(text))
	inset := 2*ctx.stylef(CtrlLabel, BorderWidth) + 2*ctx.stylef(CtrlLabel, TextPadding)
	if bounds.W-inset < tw {
		bounds.W = tw + inset
	}
	state, released := ctx.hover(id, bounds)
	ctx.drawControlText(CtrlLabel, text, bounds, state)
	return released
}

// Toggle is a button that flips *active on click. It returns true when
// the value changed.
func (ctx *Context) Toggle(bounds Rect, text string, active *bool, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlToggle, o)
	return ctx.toggle(id, bounds, text, active)
}

func (ctx *Context) toggle(id ID, bounds Rect, text string, active *bool) bool {
	state, released := ctx.hover(id, bounds)
	if released {
		*active = !*active
		state = StateNormal
	}

	if state == StateNormal {
		colorState := StateNormal
		if *active {
			colorState = StatePressed
		}
		ctx.drawControlRect(CtrlToggle, bounds, colorState)
		ctx.drawControlText(CtrlToggle, text, bounds, colorState)
	} else {
		ctx.drawControlRect(CtrlToggle, bounds, state)
		ctx.drawControlText(CtrlToggle, text, bounds, state)
	}
	return released
}

// ToggleGroup lays out one toggle per ';'-separated item, starting a new
// row at each '\n'. *active is the index of the selected toggle. It
// returns true when the selection changed.
func (ctx *Context) ToggleGroup(bounds Rect, text string, active *int, opts ...Option) bool {
	o := applyOptions(opts)
	ctx.PushID(fmt.Sprintf("togglegroup%d", GetOpt(o, OptID)))
	defer ctx.PopID()

	items, rows := ctx.TextSplit(text, ';')
	pad := ctx.stylef(CtrlToggle, GroupPadding)
	startX := bounds.X
	prevRow := 0
	changed := false
	for i, item := range items {
		if rows[i] != prevRow {
			bounds.X = startX
			bounds.Y += bounds.H + pad
			prevRow = rows[i]
		}
		on := i == *active
		if ctx.toggle(ctx.GetID(item), bounds, item, &on) && on && i != *active {
			*active = i
			changed = true
		}
		bounds.X += bounds.W + pad
	}
	return changed
}

// checkLabelBounds places a CheckBox label beside the box.
func (ctx *Context) checkLabelBounds(bounds Rect, text string) Rect {
	size := ctx.stylef(CtrlDefault, TextSize)
	pad := ctx.stylef(CtrlCheckBox, TextPadding)
	r := Rect{
		W: float32(ctx.GetTextWidth(text)) + 2,
		H: size,
		X: bounds.X + bounds.W + pad,
		Y: bounds.Y + bounds.H/2 - size/2,
	}
	if TextAlign(ctx.styleInt(CtrlCheckBox, TextAlignment)) == TextAlignLeft {
		r.X = bounds.X - r.W - pad
	}
	return r
}

// CheckBox flips *checked when the box or its label is clicked. It returns
// true when the value changed.
func (ctx *Context) CheckBox(bounds Rect, text string, checked *bool, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlCheckBox, o)

	tb := ctx.checkLabelBounds(bounds, text)
	hit := bounds
	if text != "" {
		pad := ctx.stylef(CtrlCheckBox, TextPadding)
		if tb.X < bounds.X {
			hit.X = tb.X
		}
		hit.W = bounds.W + tb.W + pad
	}
	state, released := ctx.hover(id, hit)
	if released {
		*checked = !*checked
	}

	bw := ctx.stylef(CtrlCheckBox, BorderWidth)
	ctx.drawRect(bounds, bw, ctx.color(CtrlCheckBox, BorderColorNormal, state), ColorTransparent)
	if *checked {
		inset := bw + ctx.stylef(CtrlCheckBox, CheckPadding)
		mark := Rect{X: bounds.X + inset, Y: bounds.Y + inset, W: bounds.W - 2*inset, H: bounds.H - 2*inset}
		ctx.drawRect(mark, 0, ColorTransparent, ctx.color(CtrlCheckBox, TextColorNormal, state))
	}
	align := TextAlignRight
	if TextAlign(ctx.styleInt(CtrlCheckBox, TextAlignment)) == TextAlignRight {
		align = TextAlignLeft
	}
	ctx.DrawText(text, tb, align, ctx.color(CtrlLabel, TextColorNormal, state))
	return released
}

// ComboBox cycles through ';'-separated items on click. *active is kept in
// range. It returns true when the selection changed.
func (ctx *Context) ComboBox(bounds Rect, text string, active *int, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlComboBox, o)

	bw := ctx.stylef(CtrlComboBox, ComboButtonWidth)
	gap := ctx.stylef(CtrlComboBox, ComboButtonSpacing)
	bounds.W -= bw + gap
	selector := Rect{X: bounds.X + bounds.W + gap, Y: bounds.Y, W: bw, H: bounds.H}

	items, _ := ctx.TextSplit(text, ';')
	if len(items) == 0 {
		return false
	}
	*active = clampInt(*active, 0, len(items)-1)

	state, released := ctx.hover(id, bounds)
	if !released {
		var selState ControlState
		selState, released = ctx.hover(id, selector)
		if selState != ctx.state {
			state = selState
		}
	}
	if released {
		*active++
		if *active >= len(items) {
			*active = 0
		}
	}

	ctx.drawControlRect(CtrlComboBox, bounds, state)
	ctx.drawControlText(CtrlComboBox, items[*active], bounds, state)

	prevBorder := ctx.style.Get(CtrlButton, BorderWidth)
	prevAlign := ctx.style.Get(CtrlButton, TextAlignment)
	ctx.style.Set(CtrlButton, BorderWidth, ctx.style.Get(CtrlComboBox, BorderWidth))
	ctx.style.Set(CtrlButton, TextAlignment, uint32(TextAlignCenter))
	ctx.drawControlRect(CtrlButton, selector, state)
	ctx.drawControlText(CtrlButton, fmt.Sprintf("%d/%d", *active+1, len(items)), selector, state)
	ctx.style.Set(CtrlButton, BorderWidth, prevBorder)
	ctx.style.Set(CtrlButton, TextAlignment, prevAlign)
	return released
}
