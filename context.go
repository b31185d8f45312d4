package gui

import (
	"errors"

	"github.com/chewxy/math32"
)

// TextBoundsFunc computes the rectangle text is laid out in for a control.
type TextBoundsFunc func(ctx *Context, ctrl Control, bounds Rect) Rect

// Context holds everything controls share: the style table, the current
// font, icons, the edit and drag sessions and the per-frame input and sink.
// This is NOT context.Context.
//
// A Context is used from one goroutine. Controls are called in draw order;
// that order is the only focus arbitration there is.
type Context struct {
	// Sink receives every primitive. Nil discards drawing.
	Sink DrawSink
	// Input is the current frame's input. Nil disables interaction.
	Input *InputState

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	// Output flags for the host.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	config     Config
	fontLoader FontLoader
	clipboard  ClipboardProvider

	style       StyleTable
	font        *FontAsset
	defaultFont *FontAsset
	icons       *IconSet
	iconScale   int

	edit  EditSession
	drag  DragSession
	state ControlState

	locked         bool
	alpha          float32
	tooltip        string
	tooltipEnabled bool

	textBounds map[Control]TextBoundsFunc
	valueBoxes *FrameStore[valueBoxState]

	idStack   []ID
	idCounter uint32
}

// NewContext creates a context with the default skin and font loaded.
func NewContext(cfg Config) *Context {
	ctx := &Context{
		config:     cfg.normalized(),
		textBounds: make(map[Control]TextBoundsFunc),
		valueBoxes: NewFrameStore[valueBoxState](),
		idStack:    make([]ID, 0, 16),
	}
	ctx.Reset()
	return ctx
}

// Reset re-derives every style slot from the default skin, restores the
// default font and icons and drops any edit or drag in progress.
func (ctx *Context) Reset() {
	ctx.style.Reset()
	ctx.defaultFont = DefaultFont()
	ctx.replaceFont(ctx.defaultFont)
	ctx.icons = NewIconSet()
	ctx.iconScale = 1
	ctx.edit.End()
	ctx.drag.End()
	ctx.state = StateNormal
	ctx.locked = false
	ctx.alpha = 1
	ctx.tooltip = ""
	ctx.tooltipEnabled = false
}

// Config returns the limits the context was created with.
func (ctx *Context) Config() Config { return ctx.config }

// BeginFrame prepares the context for a new frame of control calls.
func (ctx *Context) BeginFrame(input *InputState, displaySize Vec2, deltaTime float32) {
	ctx.FrameCount++
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = ctx.edit.Active()
	ctx.valueBoxes.Sweep(ctx.FrameCount)

	// A capture whose button went up while its control was not drawn.
	if ctx.drag.Active() && (input == nil || !input.MouseDown(MouseButtonLeft)) {
		ctx.drag.End()
	}
}

// SetFontLoader sets the loader used for fonts named by style files.
func (ctx *Context) SetFontLoader(l FontLoader) { ctx.fontLoader = l }

// EditSession exposes the shared text-edit state.
func (ctx *Context) EditSession() *EditSession { return &ctx.edit }

// DragSession exposes the shared pointer capture.
func (ctx *Context) DragSession() *DragSession { return &ctx.drag }

// GetStyle returns one style slot.
func (ctx *Context) GetStyle(ctrl Control, prop Property) uint32 {
	return ctx.style.Get(ctrl, prop)
}

// SetStyle writes one style slot. Base slots written on CtrlDefault reach
// every control.
func (ctx *Context) SetStyle(ctrl Control, prop Property, value uint32) {
	ctx.style.Set(ctrl, prop, value)
}

// StyleTable exposes the context's property table.
func (ctx *Context) StyleTable() *StyleTable { return &ctx.style }

func (ctx *Context) styleInt(ctrl Control, prop Property) int {
	return ctx.style.GetInt(ctrl, prop)
}

func (ctx *Context) stylef(ctrl Control, prop Property) float32 {
	return float32(ctx.style.GetInt(ctrl, prop))
}

// GetFont returns the font used by every control.
func (ctx *Context) GetFont() *FontAsset { return ctx.font }

// SetFont replaces the current font. A nil font is ignored. The previous
// font is not released; see LoadStyle for owned replacement.
func (ctx *Context) SetFont(f *FontAsset) {
	if f != nil {
		ctx.font = f
	}
}

// replaceFont installs f and releases the previous font unless it is the
// built-in fallback.
func (ctx *Context) replaceFont(f *FontAsset) {
	if f == nil || f == ctx.font {
		return
	}
	if old := ctx.font; old != nil && old != ctx.defaultFont {
		styleLogger.Debug("releasing font", "base_size", old.BaseSize, "glyphs", old.GlyphCount())
		old.Release()
	}
	ctx.font = f
}

// LoadStyle applies a skin over the current table. Slots the skin lists are
// overwritten in order; the rest keep their values. A skin font replaces
// and releases the current one.
func (ctx *Context) LoadStyle(skin Skin) {
	ctx.style.Apply(skin.Properties)
	if skin.Font != nil {
		ctx.replaceFont(skin.Font)
	}
	styleLogger.Debug("style loaded", "skin", skin.Name, "properties", len(skin.Properties), "font", skin.Font != nil)
}

// LoadStyleDefault re-derives every slot from the default skin and restores
// the built-in font.
func (ctx *Context) LoadStyleDefault() {
	ctx.style.Reset()
	ctx.replaceFont(ctx.defaultFont)
}

// LoadStyleFile reads a style file (see ReadStyleFile) and applies it. When
// the file or its font cannot be loaded, the default font is restored with
// the default text size and spacing, and the error is returned. Properties
// of a file whose font alone failed are still applied.
func (ctx *Context) LoadStyleFile(path string) error {
	skin, err := ReadStyleFile(path, ctx.fontLoader)
	if err != nil {
		styleLogger.Warn("style load failed, using default font", "path", path, "err", err)
		if errors.Is(err, ErrFontLoad) {
			skin.Font = nil
			ctx.LoadStyle(skin)
		}
		ctx.fallbackFont()
		return err
	}
	ctx.LoadStyle(skin)
	return nil
}

func (ctx *Context) fallbackFont() {
	ctx.replaceFont(ctx.defaultFont)
	ctx.style.Set(CtrlDefault, TextSize, DefaultFontSize)
	ctx.style.Set(CtrlDefault, TextSpacing, 1)
}

// SetIconScale sets the pixel scale of icons drawn in text.
func (ctx *Context) SetIconScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	ctx.iconScale = scale
}

// Icons returns the icon table.
func (ctx *Context) Icons() *IconSet { return ctx.icons }

// SetIcons replaces the icon table. A nil table restores the built-ins.
func (ctx *Context) SetIcons(s *IconSet) {
	if s == nil {
		s = NewIconSet()
	}
	ctx.icons = s
}

// LoadIcons reads an icon file into the context.
func (ctx *Context) LoadIcons(path string, loadNames bool) error {
	s, err := LoadIconsFile(path, loadNames)
	if err != nil {
		styleLogger.Warn("icon load failed", "path", path, "err", err)
		return err
	}
	ctx.icons = s
	return nil
}

// textStyle collects the text properties for a control.
func (ctx *Context) textStyle(ctrl Control) TextStyle {
	return TextStyle{
		Size:        ctx.stylef(CtrlDefault, TextSize),
		Spacing:     ctx.stylef(CtrlDefault, TextSpacing),
		LineSpacing: ctx.stylef(CtrlDefault, TextLineSpacing),
		Align:       TextAlign(ctx.styleInt(ctrl, TextAlignment)),
		VAlign:      TextVAlign(ctx.styleInt(CtrlDefault, TextAlignmentVertical)),
		Wrap:        WrapMode(ctx.styleInt(CtrlDefault, TextWrapMode)),
		IconScale:   ctx.iconScale,
		MaxLines:    ctx.config.MaxTextLines,
		Ellipsis:    ctx.config.EllipsisText,
	}
}

// GetTextWidth measures the first line of text, including a leading icon,
// with the global text size and spacing.
func (ctx *Context) GetTextWidth(text string) int {
	if text == "" || ctx.font == nil {
		return 0
	}
	return int(TextWidth(ctx.font, text, ctx.textStyle(CtrlDefault)))
}

// measure returns the exact width of text without icon handling.
func (ctx *Context) measure(text string) float32 {
	ts := ctx.textStyle(CtrlDefault)
	return runWidth(ctx.font, text, ts.scale(ctx.font), ts.Spacing, false)
}

// GetTextBounds returns the rectangle a control lays its text out in.
func (ctx *Context) GetTextBounds(ctrl Control, bounds Rect) Rect {
	if fn, ok := ctx.textBounds[ctrl]; ok {
		return fn(ctx, ctrl, bounds)
	}
	return paddedTextBounds(ctx, ctrl, bounds)
}

// RegisterTextBounds overrides how a control computes its text rectangle.
func (ctx *Context) RegisterTextBounds(ctrl Control, fn TextBoundsFunc) {
	if fn == nil {
		delete(ctx.textBounds, ctrl)
		return
	}
	ctx.textBounds[ctrl] = fn
}

// paddedTextBounds insets by border width and padding, then shifts toward
// the aligned edge by the padding.
func paddedTextBounds(ctx *Context, ctrl Control, bounds Rect) Rect {
	bw := ctx.stylef(ctrl, BorderWidth)
	pad := ctx.stylef(ctrl, TextPadding)
	r := Rect{
		X: bounds.X + bw,
		Y: bounds.Y + bw + pad,
		W: bounds.W - 2*bw - 2*pad,
		H: bounds.H - 2*bw - 2*pad,
	}
	if TextAlign(ctx.styleInt(ctrl, TextAlignment)) == TextAlignRight {
		r.X -= pad
	} else {
		r.X += pad
	}
	return r
}

// color returns a state color of a control, faded by the global alpha.
func (ctx *Context) color(ctrl Control, base Property, state ControlState) uint32 {
	return Fade(HexColor(ctx.style.Get(ctrl, state.colorProperty(base))), ctx.alpha)
}

// styleColor returns any color slot, faded by the global alpha.
func (ctx *Context) styleColor(ctrl Control, prop Property) uint32 {
	return Fade(HexColor(ctx.style.Get(ctrl, prop)), ctx.alpha)
}

// drawRect fills bounds and draws a border of width bw inside it.
func (ctx *Context) drawRect(bounds Rect, bw float32, border, fill uint32) {
	if ctx.Sink == nil {
		return
	}
	if fill&0xFF000000 != 0 {
		ctx.Sink.DrawRect(bounds, fill)
	}
	if bw > 0 && border&0xFF000000 != 0 {
		ctx.Sink.DrawRect(Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: bw}, border)
		ctx.Sink.DrawRect(Rect{X: bounds.X, Y: bounds.Y + bw, W: bw, H: bounds.H - 2*bw}, border)
		ctx.Sink.DrawRect(Rect{X: bounds.X + bounds.W - bw, Y: bounds.Y + bw, W: bw, H: bounds.H - 2*bw}, border)
		ctx.Sink.DrawRect(Rect{X: bounds.X, Y: bounds.Y + bounds.H - bw, W: bounds.W, H: bw}, border)
	}
}

// drawControlRect draws the box of a control in the given state.
func (ctx *Context) drawControlRect(ctrl Control, bounds Rect, state ControlState) {
	ctx.drawRect(bounds, ctx.stylef(ctrl, BorderWidth),
		ctx.color(ctrl, BorderColorNormal, state), ctx.color(ctrl, BaseColorNormal, state))
}

// DrawText lays text out in bounds with the global text properties and the
// given horizontal alignment, and draws it tinted.
func (ctx *Context) DrawText(text string, bounds Rect, align TextAlign, tint uint32) TextLayout {
	ts := ctx.textStyle(CtrlDefault)
	ts.Align = align
	return ctx.drawTextStyled(text, bounds, ts, tint)
}

func (ctx *Context) drawTextStyled(text string, bounds Rect, ts TextStyle, tint uint32) TextLayout {
	if text == "" || ctx.font == nil {
		return TextLayout{}
	}
	layout := LayoutText(ctx.font, text, bounds, ts)
	if ctx.Sink == nil {
		return layout
	}
	for _, ic := range layout.Icons {
		ctx.DrawIcon(ic.ID, ic.Pos, ic.Scale, tint)
	}
	for _, g := range layout.Glyphs {
		if g.Drawn {
			ctx.Sink.DrawGlyph(ctx.font, g.Codepoint, g.Pos, ts.Size, tint)
		}
	}
	return layout
}

// drawControlText draws a control's label inside its text bounds.
func (ctx *Context) drawControlText(ctrl Control, text string, bounds Rect, state ControlState) {
	tb := ctx.GetTextBounds(ctrl, bounds)
	ctx.DrawText(text, tb, TextAlign(ctx.styleInt(ctrl, TextAlignment)), ctx.color(ctrl, TextColorNormal, state))
}

// DrawIcon draws an icon with its top-left at pos.
func (ctx *Context) DrawIcon(id int, pos Vec2, scale int, color uint32) {
	if ctx.Sink == nil || ctx.icons == nil {
		return
	}
	for _, r := range ctx.icons.PixelRects(id, Vec2{X: math32.Floor(pos.X), Y: math32.Floor(pos.Y)}, scale) {
		ctx.Sink.DrawRect(r, color)
	}
}

// mouse returns the pointer position.
func (ctx *Context) mouse() Vec2 {
	if ctx.Input == nil {
		return Vec2{}
	}
	return Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}
}

// hover runs the common NORMAL/FOCUSED/PRESSED logic for a clickable control
// and reports whether the left button was released over it.
func (ctx *Context) hover(id ID, bounds Rect) (ControlState, bool) {
	state := ctx.state
	if !ctx.interactive(id) || ctx.drag.Active() {
		return state, false
	}
	if !bounds.Contains(ctx.mouse()) {
		return state, false
	}
	ctx.WantCaptureMouse = true
	in := ctx.Input
	if in.MouseDown(MouseButtonLeft) {
		state = StatePressed
	} else {
		state = StateFocused
	}
	return state, in.MouseReleased(MouseButtonLeft)
}
