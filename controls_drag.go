package gui

import "github.com/chewxy/math32"

// Color bar geometry.
const (
	colorBarCheckedSize = 10
	colorPanelSelector  = 6
)

// dragState runs the pointer capture shared by slider-like controls.
//
// A press inside bounds while nobody is dragging starts a capture for id.
// While the button stays down the owner keeps receiving the pointer, even
// outside bounds; the release ends the capture. It returns the draw state
// and whether id is dragging this frame.
func (ctx *Context) dragState(id ID, bounds Rect) (ControlState, bool) {
	if !ctx.interactive(id) {
		return ctx.state, false
	}
	in := ctx.Input
	mouse := ctx.mouse()

	if ctx.drag.Owns(id) {
		if in.MouseDown(MouseButtonLeft) {
			ctx.WantCaptureMouse = true
			return StatePressed, true
		}
		ctx.drag.End()
	} else if bounds.Contains(mouse) && in.MouseClicked(MouseButtonLeft) && ctx.drag.Begin(id) {
		ctx.WantCaptureMouse = true
		return StatePressed, true
	}

	if bounds.Contains(mouse) {
		ctx.WantCaptureMouse = true
		return StateFocused, false
	}
	return ctx.state, false
}

// Slider draws a horizontal slider with a thumb. *value is kept in
// [min, max]. textLeft and textRight are drawn beside the bounds. It
// returns true when the value changed.
func (ctx *Context) Slider(bounds Rect, textLeft, textRight string, value *float32, minValue, maxValue float32, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlSlider, o)
	return ctx.sliderPro(id, bounds, textLeft, textRight, value, minValue, maxValue, ctx.stylef(CtrlSlider, SliderWidth))
}

// SliderBar is a Slider drawn as a fill bar from min to the value.
func (ctx *Context) SliderBar(bounds Rect, textLeft, textRight string, value *float32, minValue, maxValue float32, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlSlider, o)
	return ctx.sliderPro(id, bounds, textLeft, textRight, value, minValue, maxValue, 0)
}

func (ctx *Context) sliderPro(id ID, bounds Rect, textLeft, textRight string, value *float32, minValue, maxValue, sliderWidth float32) bool {
	old := *value
	bw := ctx.stylef(CtrlSlider, BorderWidth)
	pad := ctx.stylef(CtrlSlider, SliderPadding)
	thumb := Rect{X: bounds.X, Y: bounds.Y + bw + pad, H: bounds.H - 2*bw - 2*pad}

	state, dragging := ctx.dragState(id, bounds)
	if dragging {
		x := ctx.mouse().X
		*value = (maxValue-minValue)*((x-bounds.X-sliderWidth/2)/(bounds.W-sliderWidth)) + minValue
	}
	*value = clampf(*value, minValue, maxValue)

	ratio := float32(0)
	if maxValue != minValue {
		ratio = (*value - minValue) / (maxValue - minValue)
	}
	if sliderWidth > 0 {
		thumb.X += ratio * (bounds.W - 2*bw - sliderWidth)
		thumb.W = sliderWidth
		if thumb.X <= bounds.X+bw {
			thumb.X = bounds.X + bw
		} else if thumb.X+thumb.W >= bounds.X+bounds.W {
			thumb.X = bounds.X + bounds.W - thumb.W - bw
		}
	} else {
		thumb.X += bw
		thumb.W = ratio * (bounds.W - 2*bw)
	}

	fill := ctx.styleColor(CtrlSlider, BaseColorNormal)
	if state == StateDisabled {
		fill = ctx.styleColor(CtrlSlider, BaseColorDisabled)
	}
	ctx.drawRect(bounds, bw, ctx.color(CtrlSlider, BorderColorNormal, state), fill)
	switch state {
	case StateNormal:
		ctx.drawRect(thumb, 0, ColorTransparent, ctx.styleColor(CtrlSlider, BaseColorPressed))
	case StateFocused:
		ctx.drawRect(thumb, 0, ColorTransparent, ctx.styleColor(CtrlSlider, TextColorFocused))
	case StatePressed:
		ctx.drawRect(thumb, 0, ColorTransparent, ctx.styleColor(CtrlSlider, TextColorPressed))
	}
	ctx.drawSideLabels(CtrlSlider, bounds, textLeft, textRight, state)

	return *value != old
}

// drawSideLabels draws text to the left and right of a bar control.
func (ctx *Context) drawSideLabels(ctrl Control, bounds Rect, left, right string, state ControlState) {
	size := ctx.stylef(CtrlDefault, TextSize)
	pad := ctx.stylef(ctrl, TextPadding)
	color := ctx.color(CtrlLabel, TextColorNormal, state)
	if left != "" {
		w := float32(ctx.GetTextWidth(left))
		r := Rect{X: bounds.X - w - pad, Y: bounds.Y + bounds.H/2 - size/2, W: w, H: size}
		ctx.DrawText(left, r, TextAlignRight, color)
	}
	if right != "" {
		w := float32(ctx.GetTextWidth(right))
		r := Rect{X: bounds.X + bounds.W + pad, Y: bounds.Y + bounds.H/2 - size/2, W: w, H: size}
		ctx.DrawText(right, r, TextAlignLeft, color)
	}
}

// ProgressBar draws a fill bar for value in [min, max]. It never reacts to
// input and always returns false.
func (ctx *Context) ProgressBar(bounds Rect, textLeft, textRight string, value *float32, minValue, maxValue float32) bool {
	bw := ctx.stylef(CtrlProgressBar, BorderWidth)
	pad := ctx.stylef(CtrlProgressBar, ProgressPadding)
	*value = clampf(*value, minValue, maxValue)

	progress := Rect{X: bounds.X + bw, Y: bounds.Y + bw + pad, H: bounds.H - 2*bw - 2*pad}
	if ctx.state != StateDisabled && maxValue != minValue {
		progress.W = (*value - minValue) / (maxValue - minValue) * (bounds.W - 2*bw)
	}

	if ctx.state == StateDisabled {
		ctx.drawRect(bounds, bw, ctx.styleColor(CtrlProgressBar, BorderColorDisabled), ColorTransparent)
	} else {
		ctx.drawRect(bounds, bw, ctx.styleColor(CtrlProgressBar, BorderColorNormal), ColorTransparent)
		ctx.drawRect(progress, 0, ColorTransparent, ctx.styleColor(CtrlProgressBar, BaseColorPressed))
	}
	ctx.drawSideLabels(CtrlProgressBar, bounds, textLeft, textRight, ctx.state)
	return false
}

// ScrollBar draws a scroll bar, vertical when bounds are taller than wide.
// The thumb is dragged with the pointer, the wheel moves by one and the
// optional arrow buttons step by (max-min)/ScrollSpeed. *value is kept in
// [min, max]. It returns true when the value changed.
func (ctx *Context) ScrollBar(bounds Rect, value *int, minValue, maxValue int, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlScrollBar, o)
	old := *value

	vertical := bounds.H > bounds.W
	bw := ctx.stylef(CtrlScrollBar, BorderWidth)
	scrollPad := ctx.stylef(CtrlScrollBar, ScrollPadding)
	sliderPad := ctx.stylef(CtrlScrollBar, ScrollSliderPadding)

	arrow := float32(0)
	if ctx.styleInt(CtrlScrollBar, ArrowsVisible) != 0 {
		if vertical {
			arrow = bounds.W - 2*bw
		} else {
			arrow = bounds.H - 2*bw
		}
	}
	var upLeft, downRight, track Rect
	if vertical {
		upLeft = Rect{X: bounds.X + bw, Y: bounds.Y + bw, W: arrow, H: arrow}
		downRight = Rect{X: bounds.X + bw, Y: bounds.Y + bounds.H - arrow - bw, W: arrow, H: arrow}
		track = Rect{X: bounds.X + bw + scrollPad, Y: upLeft.Y + upLeft.H, W: bounds.W - 2*(bw+scrollPad), H: bounds.H - upLeft.H - downRight.H - 2*bw}
	} else {
		upLeft = Rect{X: bounds.X + bw, Y: bounds.Y + bw, W: arrow, H: arrow}
		downRight = Rect{X: bounds.X + bounds.W - arrow - bw, Y: bounds.Y + bw, W: arrow, H: arrow}
		track = Rect{X: upLeft.X + upLeft.W, Y: bounds.Y + bw + scrollPad, W: bounds.W - upLeft.W - downRight.W - 2*bw, H: bounds.H - 2*(bw+scrollPad)}
	}

	span := maxValue - minValue
	if span < 0 {
		span = 0
	}
	thumbSize := ctx.stylef(CtrlScrollBar, ScrollSliderSize)
	trackLen := track.W
	if vertical {
		trackLen = track.H
	}
	thumbSize = math32.Min(thumbSize, trackLen)

	state, dragging := ctx.dragState(id, track)
	if dragging {
		m := ctx.mouse()
		pos, start := m.X, track.X
		if vertical {
			pos, start = m.Y, track.Y
		}
		if trackLen > thumbSize {
			*value = int(math32.Round((pos-start-thumbSize/2)*float32(span)/(trackLen-thumbSize))) + minValue
		}
	} else if ctx.interactive(id) && !ctx.drag.Active() && bounds.Contains(ctx.mouse()) {
		state = StateFocused
		ctx.WantCaptureMouse = true
		in := ctx.Input
		if wheel := in.MouseWheelY; wheel != 0 {
			*value -= int(math32.Round(wheel))
		}
		if arrow > 0 && in.MouseClicked(MouseButtonLeft) {
			step := span / max1(ctx.styleInt(CtrlScrollBar, ScrollSpeed))
			if step < 1 {
				step = 1
			}
			if upLeft.Contains(ctx.mouse()) {
				*value -= step
				state = StatePressed
			} else if downRight.Contains(ctx.mouse()) {
				*value += step
				state = StatePressed
			}
		}
	}
	*value = clampInt(*value, minValue, maxValue)

	var thumb Rect
	offset := float32(0)
	if span > 0 {
		offset = float32(*value-minValue) / float32(span) * (trackLen - thumbSize)
	}
	if vertical {
		thumb = Rect{X: bounds.X + bw + sliderPad, Y: track.Y + offset, W: bounds.W - 2*(bw+sliderPad), H: thumbSize}
	} else {
		thumb = Rect{X: track.X + offset, Y: bounds.Y + bw + sliderPad, W: thumbSize, H: bounds.H - 2*(bw+sliderPad)}
	}

	ctx.drawRect(bounds, bw, ctx.color(CtrlScrollBar, BorderColorNormal, state), ctx.styleColor(CtrlScrollBar, BorderColorDisabled))
	ctx.drawRect(track, 0, ColorTransparent, ctx.styleColor(CtrlScrollBar, BaseColorNormal))
	ctx.drawRect(thumb, 0, ColorTransparent, ctx.color(CtrlSlider, BorderColorNormal, state))
	if arrow > 0 {
		tint := ctx.color(CtrlScrollBar, TextColorNormal, state)
		first, second := IconArrowLeftFill, IconArrowRightFill
		if vertical {
			first, second = IconArrowUpFill, IconArrowDownFill
		}
		ctx.DrawText(IconText(first, ""), upLeft, TextAlignCenter, tint)
		ctx.DrawText(IconText(second, ""), downRight, TextAlignCenter, tint)
	}
	return *value != old
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// ColorBarAlpha picks an alpha in [0, 1] along a horizontal bar. It
// returns true when the value changed.
func (ctx *Context) ColorBarAlpha(bounds Rect, alpha *float32, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlColorPicker, o)
	old := *alpha

	state, dragging := ctx.dragState(id, bounds)
	if dragging && bounds.W > 0 {
		*alpha = (ctx.mouse().X - bounds.X) / bounds.W
	}
	*alpha = clampf(*alpha, 0, 1)

	selH := ctx.stylef(CtrlColorPicker, HuebarSelectorHeight)
	overflow := ctx.stylef(CtrlColorPicker, HuebarSelectorOverflow)
	selector := Rect{X: bounds.X + *alpha*bounds.W - selH/2, Y: bounds.Y - overflow, W: selH, H: bounds.H + 2*overflow}

	if ctx.Sink != nil && state != StateDisabled {
		cols := int(bounds.W / colorBarCheckedSize)
		rows := int(bounds.H / colorBarCheckedSize)
		for x := 0; x < cols; x++ {
			for y := 0; y < rows; y++ {
				c := uint32(0xf0f0f0ff)
				if (x+y)%2 != 0 {
					c = 0xc8c8c8ff
				}
				ctx.Sink.DrawRect(Rect{
					X: bounds.X + float32(x*colorBarCheckedSize),
					Y: bounds.Y + float32(y*colorBarCheckedSize),
					W: colorBarCheckedSize,
					H: colorBarCheckedSize,
				}, Fade(HexColor(c), ctx.alpha*0.4))
			}
		}
		black := Fade(ColorBlack, ctx.alpha)
		ctx.Sink.DrawRectGradient(bounds, Fade(black, 0), Fade(black, 0), black, black)
	}
	ctx.drawRect(bounds, ctx.stylef(CtrlColorPicker, BorderWidth), ctx.color(CtrlColorPicker, BorderColorNormal, state), ColorTransparent)
	ctx.drawRect(selector, 0, ColorTransparent, ctx.color(CtrlColorPicker, BorderColorNormal, state))
	return *alpha != old
}

// hueStops are the corners of the six hue segments, top to bottom, as
// 0xRRGGBBAA.
var hueStops = [7]uint32{
	0xFF0000FF, 0xFFFF00FF, 0x00FF00FF, 0x00FFFFFF, 0x0000FFFF, 0xFF00FFFF, 0xFF0000FF,
}

// ColorBarHue picks a hue in [0, 360) along a vertical bar. It returns true
// when the value changed.
func (ctx *Context) ColorBarHue(bounds Rect, hue *float32, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlColorPicker, o)
	old := *hue

	state, dragging := ctx.dragState(id, bounds)
	if dragging && bounds.H > 0 {
		*hue = (ctx.mouse().Y - bounds.Y) * 360 / bounds.H
	}
	*hue = clampf(*hue, 0, 359)

	selH := ctx.stylef(CtrlColorPicker, HuebarSelectorHeight)
	overflow := ctx.stylef(CtrlColorPicker, HuebarSelectorOverflow)
	selector := Rect{X: bounds.X - overflow, Y: bounds.Y + *hue/360*bounds.H - selH/2, W: bounds.W + 2*overflow, H: selH}

	if ctx.Sink != nil && state != StateDisabled {
		seg := bounds.H / 6
		for i := 0; i < 6; i++ {
			top := Fade(HexColor(hueStops[i]), ctx.alpha)
			bottom := Fade(HexColor(hueStops[i+1]), ctx.alpha)
			r := Rect{X: bounds.X, Y: bounds.Y + float32(i)*seg, W: bounds.W, H: seg}
			ctx.Sink.DrawRectGradient(r, top, bottom, top, bottom)
		}
	}
	ctx.drawRect(bounds, ctx.stylef(CtrlColorPicker, BorderWidth), ctx.color(CtrlColorPicker, BorderColorNormal, state), ColorTransparent)
	ctx.drawRect(selector, 0, ColorTransparent, ctx.color(CtrlColorPicker, BorderColorNormal, state))
	return *hue != old
}

// ColorPanel picks saturation (x) and value (y) for the hue of *color.
// Alpha is preserved. It returns true when the color changed.
func (ctx *Context) ColorPanel(bounds Rect, color *uint32, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.controlID(CtrlColorPicker, o)
	h, s, v := ColorToHSV(*color)
	return ctx.colorPanel(id, bounds, color, h, s, v)
}

func (ctx *Context) colorPanel(id ID, bounds Rect, color *uint32, h, s, v float32) bool {
	old := *color
	_, _, _, a := UnpackRGBA(*color)

	state, dragging := ctx.dragState(id, bounds)
	if dragging && bounds.W > 0 && bounds.H > 0 {
		m := ctx.mouse()
		s = clampf((m.X-bounds.X)/bounds.W, 0, 1)
		v = 1 - clampf((m.Y-bounds.Y)/bounds.H, 0, 1)
		r, g, b, _ := UnpackRGBA(ColorFromHSV(h, s, v))
		*color = RGBA(r, g, b, a)
	}

	if ctx.Sink != nil && state != StateDisabled {
		white := Fade(ColorWhite, ctx.alpha)
		black := Fade(ColorBlack, ctx.alpha)
		hueColor := Fade(ColorFromHSV(h, 1, 1), ctx.alpha)
		ctx.Sink.DrawRectGradient(bounds, white, white, hueColor, hueColor)
		ctx.Sink.DrawRectGradient(bounds, Fade(black, 0), black, Fade(black, 0), black)
	}
	sel := Rect{
		X: bounds.X + s*bounds.W - colorPanelSelector/2,
		Y: bounds.Y + (1-v)*bounds.H - colorPanelSelector/2,
		W: colorPanelSelector,
		H: colorPanelSelector,
	}
	ctx.drawRect(sel, 1, Fade(ColorWhite, ctx.alpha), ColorTransparent)
	ctx.drawRect(bounds, ctx.stylef(CtrlColorPicker, BorderWidth), ctx.color(CtrlColorPicker, BorderColorNormal, state), ColorTransparent)
	return *color != old
}

// ColorPicker combines a ColorPanel with a hue bar on its right.
func (ctx *Context) ColorPicker(bounds Rect, color *uint32, opts ...Option) bool {
	o := applyOptions(opts)
	ctx.PushID("colorpicker")
	defer ctx.PopID()
	if id := GetOpt(o, OptID); id != 0 {
		ctx.idStack[len(ctx.idStack)-1] = id
	}
	panelID := ctx.GetID("panel")
	hueID := ctx.GetID("hue")

	h, s, v := ColorToHSV(*color)
	bar := Rect{
		X: bounds.X + bounds.W + ctx.stylef(CtrlColorPicker, HuebarPadding),
		Y: bounds.Y,
		W: ctx.stylef(CtrlColorPicker, HuebarWidth),
		H: bounds.H,
	}
	changed := false
	if ctx.ColorBarHue(bar, &h, WithID(hueID)) {
		_, _, _, a := UnpackRGBA(*color)
		r, g, b, _ := UnpackRGBA(ColorFromHSV(h, s, v))
		*color = RGBA(r, g, b, a)
		changed = true
	}
	if ctx.colorPanel(panelID, bounds, color, h, s, v) {
		changed = true
	}
	return changed
}

// ColorToHSV converts a packed color to hue [0, 360), saturation and value
// in [0, 1].
func ColorToHSV(c uint32) (h, s, v float32) {
	r8, g8, b8, _ := UnpackRGBA(c)
	r, g, b := float32(r8)/255, float32(g8)/255, float32(b8)/255
	hi := math32.Max(r, math32.Max(g, b))
	lo := math32.Min(r, math32.Min(g, b))
	v = hi
	d := hi - lo
	if hi <= 0 || d < 0.00001 {
		return 0, 0, v
	}
	s = d / hi
	switch hi {
	case r:
		h = (g - b) / d
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// ColorFromHSV converts hue, saturation and value to an opaque packed color.
func ColorFromHSV(h, s, v float32) uint32 {
	channel := func(n float32) float32 {
		k := math32.Mod(n+h/60, 6)
		t := math32.Min(k, 4-k)
		t = clampf(t, 0, 1)
		return v - v*s*t
	}
	return RGBAf(channel(5), channel(3), channel(1), 1)
}
