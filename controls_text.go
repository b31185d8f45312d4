package gui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// cstrlen returns the length of the NUL-terminated text in buf, or len(buf)
// when there is no terminator.
func cstrlen(buf []byte) int {
	for i, b := range buf {
		if b == 0 {
			return i
		}
	}
	return len(buf)
}

// editRequest describes how a control drives the shared edit controller.
type editRequest struct {
	ctrl      Control
	multiline bool
	readOnly  bool
	filter    CharFilter
	align     TextAlign
}

// editResult is what a control needs to draw after editing.
type editResult struct {
	signal     bool // Focus was taken or the edit was committed
	committed  bool // Enter or a click outside finished the edit
	editing    bool // The control still owns edit focus
	state      ControlState
	textBounds Rect
	offset     int     // First visible byte
	originX    float32 // X of the first visible glyph
	hoverX     float32 // X of the pointer caret, -1 when not over the text
}

// textEditable reports whether a text control may take edits this frame.
// Wrapped text is display-only.
func (ctx *Context) textEditable(id ID, readOnly bool) bool {
	return ctx.interactive(id) && !ctx.drag.Active() && !readOnly &&
		WrapMode(ctx.styleInt(CtrlDefault, TextWrapMode)) == WrapNone
}

// textOrigin returns where visible text starts inside tb for an alignment.
// Text wider than tb starts at the left edge.
func (ctx *Context) textOrigin(visible []byte, tb Rect, align TextAlign) float32 {
	w := ctx.measure(string(visible))
	x := tb.X
	if w <= tb.W {
		switch align {
		case TextAlignCenter:
			x = tb.X + tb.W/2 - w/2
		case TextAlignRight:
			x = tb.X + tb.W - w
		}
	}
	return math32.Floor(x)
}

// scrollOffset drops codepoints from the left until the text between the
// offset and the cursor fits in width.
func (ctx *Context) scrollOffset(buf []byte, length, cursor int, width float32) int {
	offset := 0
	for offset < cursor && ctx.measure(string(buf[offset:cursor])) >= width {
		_, size := DecodeNext(buf[:length], offset)
		offset += size
	}
	return offset
}

// insertCodepoint inserts cp at the cursor when it is printable (or an
// allowed newline), passes the filter and fits: length plus its encoded
// size must stay below the buffer capacity. It returns the new length and
// whether the codepoint was inserted.
func (ctx *Context) insertCodepoint(buf []byte, length int, cp rune, req editRequest) (int, bool) {
	if cp < 32 && !(req.multiline && cp == '\n') {
		return length, false
	}
	cur := ctx.edit.cursor
	if req.filter != nil && !req.filter(cp, buf[:length], cur) {
		return length, false
	}
	enc, size := Encode(cp)
	if length+size >= len(buf) {
		return length, false
	}
	copy(buf[cur+size:], buf[cur:length])
	copy(buf[cur:], enc[:size])
	length += size
	buf[length] = 0
	ctx.edit.cursor += size
	return length, true
}

// paste inserts clipboard text at the cursor until the buffer is full.
func (ctx *Context) paste(buf []byte, length int, req editRequest) int {
	text := []byte(ctx.clipboardText())
	for i := 0; i < len(text); {
		cp, size := DecodeNext(text, i)
		i += size
		if cp == '\r' {
			continue
		}
		if cp == '\n' && !req.multiline {
			break
		}
		var ok bool
		if length, ok = ctx.insertCodepoint(buf, length, cp, req); !ok {
			enc := EncodedLen(cp)
			if length+enc >= len(buf) {
				break
			}
		}
	}
	return length
}

// editText runs the text edit controller for one control.
//
// Viewing: a click inside bounds takes edit focus with the cursor at the
// end of the text and signals. Editing, in order: typed input, Home/End,
// Delete, Backspace, Left/Right, pointer placement, then Enter or a click
// outside bounds commits, drops focus and resets the cursor to 0.
func (ctx *Context) editText(id ID, bounds Rect, buf []byte, editMode bool, req editRequest) editResult {
	res := editResult{state: ctx.state, textBounds: ctx.GetTextBounds(req.ctrl, bounds), hoverX: -1}
	tb := res.textBounds
	length := cstrlen(buf)

	if !ctx.textEditable(id, req.readOnly) {
		res.originX = ctx.textOrigin(buf[:length], tb, req.align)
		return res
	}

	in := ctx.Input
	mouse := ctx.mouse()

	if !editMode {
		if bounds.Contains(mouse) {
			res.state = StateFocused
			ctx.WantCaptureMouse = true
			if in.MouseClicked(MouseButtonLeft) {
				ctx.edit.Begin(id, length)
				res.signal = true
			}
		}
		res.originX = ctx.textOrigin(buf[:length], tb, req.align)
		return res
	}

	if !ctx.edit.Owns(id) {
		ctx.edit.Begin(id, length)
	}
	ctx.WantCaptureKeyboard = true
	res.state = StatePressed
	e := &ctx.edit
	cfg := &ctx.config
	e.tick(in, ctx.FrameCount, cfg)
	e.clampCursor(length)
	res.offset = ctx.scrollOffset(buf, length, e.cursor, tb.W)

	for cp := in.NextChar(); cp != 0; cp = in.NextChar() {
		length, _ = ctx.insertCodepoint(buf, length, cp, req)
	}
	if req.multiline && in.KeyPressed(KeyEnter) {
		length, _ = ctx.insertCodepoint(buf, length, '\n', req)
	}
	if in.ModCtrl && in.KeyPressed(KeyV) {
		length = ctx.paste(buf, length, req)
	}
	if in.ModCtrl && in.KeyPressed(KeyC) {
		ctx.setClipboardText(string(buf[:length]))
	}

	if length > 0 && in.KeyPressed(KeyHome) {
		e.cursor = 0
	}
	if length > e.cursor && in.KeyPressed(KeyEnd) {
		e.cursor = length
	}

	if length > e.cursor && e.fire(in, KeyDelete, cfg) {
		_, size := DecodeNext(buf[:length], e.cursor)
		copy(buf[e.cursor:], buf[e.cursor+size:length])
		length -= size
		buf[length] = 0
	}

	if e.cursor > 0 && e.fire(in, KeyBackspace, cfg) {
		size := DecodePrev(buf[:length], e.cursor)
		copy(buf[e.cursor-size:], buf[e.cursor:length])
		length -= size
		e.cursor -= size
		buf[length] = 0
	}

	if e.fire(in, KeyLeft, cfg) {
		if e.cursor > 0 {
			e.cursor -= DecodePrev(buf[:length], e.cursor)
		}
	} else if e.fire(in, KeyRight, cfg) {
		if e.cursor < length {
			_, size := DecodeNext(buf[:length], e.cursor)
			e.cursor += size
		}
	}

	res.offset = ctx.scrollOffset(buf, length, e.cursor, tb.W)
	res.originX = ctx.textOrigin(buf[res.offset:length], tb, req.align)

	if tb.Contains(mouse) {
		if idx, x, ok := ctx.hitTest(buf[:length], res.offset, res.originX, mouse.X); ok {
			res.hoverX = x
			if in.MouseClicked(MouseButtonLeft) {
				e.cursor = idx
			}
		}
	}

	if (!req.multiline && in.KeyPressed(KeyEnter)) ||
		(!bounds.Contains(mouse) && in.MouseClicked(MouseButtonLeft)) {
		e.End()
		res.signal = true
		res.committed = true
		return res
	}
	res.editing = true
	return res
}

// hitTest maps a pointer x onto a cursor byte offset. It walks glyphs from
// offset and picks the first whose midpoint is at or right of x; past the
// last glyph's midpoint the cursor goes to the end of text.
func (ctx *Context) hitTest(text []byte, offset int, originX, x float32) (int, float32, bool) {
	ts := ctx.textStyle(CtrlDefault)
	scale := ts.scale(ctx.font)

	width, lastW := float32(0), float32(0)
	idx, caret := -1, float32(-1)
	for i := offset; i < len(text); {
		cp, size := DecodeNext(text, i)
		gw := ctx.font.GlyphWidth(cp) * scale
		lastW = gw
		if x <= originX+width+gw/2 {
			idx, caret = i, originX+width
			break
		}
		width += gw + ts.Spacing
		i += size
	}
	end := ctx.measure(string(text[offset:]))
	if idx < 0 && x >= originX+end-lastW/2 {
		idx, caret = len(text), originX+end
	}
	return idx, caret, idx >= 0
}

// drawEditable draws the box, the visible text and, while editing, the
// cursor and pointer caret.
func (ctx *Context) drawEditable(ctrl Control, bounds Rect, buf []byte, res editResult, align TextAlign) {
	length := cstrlen(buf)
	bw := ctx.stylef(ctrl, BorderWidth)
	border := ctx.color(ctrl, BorderColorNormal, res.state)
	switch res.state {
	case StatePressed:
		ctx.drawRect(bounds, bw, border, ctx.color(ctrl, BaseColorNormal, StatePressed))
	case StateDisabled:
		ctx.drawRect(bounds, bw, border, ctx.color(ctrl, BaseColorNormal, StateDisabled))
	default:
		ctx.drawRect(bounds, bw, border, ColorTransparent)
	}

	offset := res.offset
	if offset > length {
		offset = length
	}
	tb := res.textBounds
	ctx.DrawText(string(buf[offset:length]), tb, align, ctx.color(ctrl, TextColorNormal, res.state))

	if !res.editing {
		return
	}
	cursor := ctx.edit.cursor
	if cursor < offset {
		cursor = offset
	}
	size := ctx.stylef(CtrlDefault, TextSize)
	caret := Rect{
		X: res.originX + ctx.measure(string(buf[offset:cursor])),
		Y: tb.Y + tb.H/2 - size,
		W: 2,
		H: size * 2,
	}
	if caret.H >= bounds.H {
		caret.H = bounds.H - 2*bw
	}
	if caret.Y < bounds.Y+bw {
		caret.Y = bounds.Y + bw
	}
	color := ctx.color(ctrl, BorderColorNormal, StatePressed)
	ctx.drawRect(caret, 0, ColorTransparent, color)
	if res.hoverX >= 0 {
		ctx.drawRect(Rect{X: res.hoverX, Y: caret.Y, W: 1, H: caret.H}, 0, ColorTransparent, color)
	}
}

// TextBox shows and edits text, a NUL-terminated UTF-8 buffer whose length
// is its capacity. While editMode is set the box owns the shared edit
// focus. It returns true when a click takes focus and when the edit is
// committed; the host flips editMode in response.
func (ctx *Context) TextBox(bounds Rect, text []byte, editMode bool, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlTextBox, o)
	req := editRequest{
		ctrl:      CtrlTextBox,
		multiline: GetOpt(o, OptMultiline),
		readOnly:  GetOpt(o, OptReadOnly) || ctx.styleInt(CtrlTextBox, TextReadonly) != 0,
		filter:    GetOpt(o, OptFilter),
		align:     TextAlign(ctx.styleInt(CtrlTextBox, TextAlignment)),
	}
	res := ctx.editText(id, bounds, text, editMode, req)
	ctx.drawEditable(CtrlTextBox, bounds, text, res, req.align)
	if res.state == StateFocused {
		ctx.drawTooltip(bounds, GetOpt(o, OptTooltip))
	}
	return res.signal
}

// valueBoxState is the text typed into a numeric box while it is edited.
type valueBoxState struct {
	buf    []byte
	active bool
}

// intFilter accepts digits and, when negative values are allowed, a
// leading '-'.
func intFilter(allowNegative bool) CharFilter {
	return func(cp rune, text []byte, cursor int) bool {
		if cp >= '0' && cp <= '9' {
			return cursor > 0 || len(text) == 0 || text[0] != '-'
		}
		return cp == '-' && allowNegative && cursor == 0 && (len(text) == 0 || text[0] != '-')
	}
}

// floatFilter accepts digits, one '.', and a leading sign.
func floatFilter(cp rune, text []byte, cursor int) bool {
	signed := len(text) > 0 && (text[0] == '-' || text[0] == '+')
	switch {
	case cp >= '0' && cp <= '9':
		return cursor > 0 || !signed
	case cp == '.':
		return !strings.Contains(string(text), ".") && (cursor > 0 || !signed)
	case cp == '-' || cp == '+':
		return cursor == 0 && !signed
	}
	return false
}

// widthLimited wraps a filter so text stops growing once it is as wide as
// the box.
func (ctx *Context) widthLimited(f CharFilter, width float32) CharFilter {
	return func(cp rune, text []byte, cursor int) bool {
		return ctx.measure(string(text)) < width && f(cp, text, cursor)
	}
}

// numberLabelBounds places a ValueBox or Spinner label beside the box:
// on the left for LEFT alignment, otherwise on the right.
func (ctx *Context) numberLabelBounds(ctrl Control, bounds Rect, label string) (Rect, TextAlign) {
	size := ctx.stylef(CtrlDefault, TextSize)
	pad := ctx.stylef(ctrl, TextPadding)
	r := Rect{
		W: float32(ctx.GetTextWidth(label)) + 2,
		H: size,
		X: bounds.X + bounds.W + pad,
		Y: bounds.Y + bounds.H/2 - size/2,
	}
	if TextAlign(ctx.styleInt(ctrl, TextAlignment)) == TextAlignLeft {
		r.X = bounds.X - r.W - pad
		return r, TextAlignRight
	}
	return r, TextAlignLeft
}

// numberBox edits a number as text. The caller's value is untouched while
// typing; commit parses the text and passes it to apply.
func (ctx *Context) numberBox(id ID, ctrl Control, bounds Rect, label, display string, editMode bool, filter CharFilter, apply func(text string)) bool {
	st := ctx.valueBoxes.Get(id, valueBoxState{})
	if editMode && !st.active {
		st.buf = make([]byte, ctx.config.MaxValueBoxChars+1)
		copy(st.buf[:ctx.config.MaxValueBoxChars], display)
		st.active = true
	}
	if !editMode {
		st.active = false
	}

	buf := st.buf
	if !st.active {
		buf = append([]byte(display), 0)
	}
	req := editRequest{
		ctrl:   ctrl,
		filter: ctx.widthLimited(filter, bounds.W),
		align:  TextAlignCenter,
	}
	res := ctx.editText(id, bounds, buf, editMode, req)
	if res.committed {
		apply(string(buf[:cstrlen(buf)]))
		st.active = false
	}
	ctx.drawEditable(ctrl, bounds, buf, res, TextAlignCenter)

	if label != "" {
		lb, align := ctx.numberLabelBounds(ctrl, bounds, label)
		ctx.DrawText(label, lb, align, ctx.color(CtrlLabel, TextColorNormal, res.state))
	}
	return res.signal
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ValueBox edits an integer. Typing only changes the box's own text; the
// value is parsed and clamped to [minValue, maxValue] when the edit is
// committed with Enter or a click outside. Outside edit mode the value is
// kept clamped. Returns true on focus click and on commit.
func (ctx *Context) ValueBox(bounds Rect, label string, value *int, minValue, maxValue int, editMode bool, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlValueBox, o)
	return ctx.valueBox(id, CtrlValueBox, bounds, label, value, minValue, maxValue, editMode)
}

func (ctx *Context) valueBox(id ID, ctrl Control, bounds Rect, label string, value *int, minValue, maxValue int, editMode bool) bool {
	if !editMode {
		*value = clampInt(*value, minValue, maxValue)
	}
	apply := func(text string) {
		if n, err := strconv.Atoi(text); err == nil {
			*value = n
		} else if text == "" || text == "-" {
			*value = 0
		}
		*value = clampInt(*value, minValue, maxValue)
		guiLogger.Debug("value committed", "id", id, "text", text, "value", *value)
	}
	return ctx.numberBox(id, ctrl, bounds, label, strconv.Itoa(*value), editMode, intFilter(minValue < 0), apply)
}

// ValueBoxFloat edits a float. Text is parsed when the edit is committed;
// text that does not parse leaves the value unchanged. WithFormat sets the
// display verb.
func (ctx *Context) ValueBoxFloat(bounds Rect, label string, value *float32, editMode bool, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlValueBox, o)
	display := strconv.FormatFloat(float64(*value), 'f', -1, 32)
	if format := GetOpt(o, OptFormat); format != "" {
		display = fmt.Sprintf(format, *value)
	}
	apply := func(text string) {
		if f, err := strconv.ParseFloat(text, 32); err == nil {
			*value = float32(f)
		}
	}
	return ctx.numberBox(id, CtrlValueBox, bounds, label, display, editMode, floatFilter, apply)
}

// Spinner is a ValueBox between decrement and increment buttons. Button
// steps are clamped to the range. Returns true on focus click, commit or
// step.
func (ctx *Context) Spinner(bounds Rect, label string, value *int, minValue, maxValue int, editMode bool, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlSpinner, o)
	step := GetOpt(o, OptStep)

	bw := ctx.stylef(CtrlSpinner, SpinButtonWidth)
	gap := ctx.stylef(CtrlSpinner, SpinButtonSpacing)
	box := Rect{X: bounds.X + bw + gap, Y: bounds.Y, W: bounds.W - 2*(bw+gap), H: bounds.H}
	left := Rect{X: bounds.X, Y: bounds.Y, W: bw, H: bounds.H}
	right := Rect{X: bounds.X + bounds.W - bw, Y: bounds.Y, W: bw, H: bounds.H}

	stepped := false
	if ctx.button(0, left, IconText(IconArrowLeftFill, "")) {
		*value = clampInt(*value-step, minValue, maxValue)
		stepped = true
	}
	if ctx.button(0, right, IconText(IconArrowRightFill, "")) {
		*value = clampInt(*value+step, minValue, maxValue)
		stepped = true
	}

	signal := ctx.valueBox(id, CtrlSpinner, box, "", value, minValue, maxValue, editMode)

	if label != "" {
		state := ctx.state
		if ctx.interactive(id) && bounds.Contains(ctx.mouse()) {
			state = StateFocused
		}
		lb, align := ctx.numberLabelBounds(CtrlSpinner, bounds, label)
		ctx.DrawText(label, lb, align, ctx.color(CtrlLabel, TextColorNormal, state))
	}
	return signal || stepped
}
