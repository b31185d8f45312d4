package gui

import "testing"

// monoFont returns a measuring-only font where every Latin-1 glyph is
// width pixels wide at base size 10.
func monoFont(width int32) *FontAsset {
	cps := LatinCodepoints()
	glyphs := make([]GlyphInfo, len(cps))
	for i, r := range cps {
		glyphs[i] = GlyphInfo{Value: r, AdvanceX: width}
	}
	return NewFontAsset(10, glyphs, nil, nil)
}

// monoStyle is the text style matching monoFont at its base size.
func monoStyle() TextStyle {
	return TextStyle{Size: 10, LineSpacing: 15, VAlign: TextAlignTop}
}

type sinkRect struct {
	r     Rect
	color uint32
}

type sinkGlyph struct {
	cp    rune
	pos   Vec2
	size  float32
	color uint32
}

// recordingSink keeps every primitive drawn during a frame.
type recordingSink struct {
	rects     []sinkRect
	gradients []Rect
	glyphs    []sinkGlyph
}

func (s *recordingSink) DrawRect(r Rect, color uint32) {
	s.rects = append(s.rects, sinkRect{r: r, color: color})
}

func (s *recordingSink) DrawRectGradient(r Rect, _, _, _, _ uint32) {
	s.gradients = append(s.gradients, r)
}

func (s *recordingSink) DrawGlyph(_ *FontAsset, cp rune, pos Vec2, size float32, color uint32) {
	s.glyphs = append(s.glyphs, sinkGlyph{cp: cp, pos: pos, size: size, color: color})
}

func (s *recordingSink) reset() {
	s.rects = s.rects[:0]
	s.gradients = s.gradients[:0]
	s.glyphs = s.glyphs[:0]
}

func (s *recordingSink) text() string {
	out := make([]rune, 0, len(s.glyphs))
	for _, g := range s.glyphs {
		out = append(out, g.cp)
	}
	return string(out)
}

// harness drives a Context frame by frame with scripted input.
type harness struct {
	t      *testing.T
	ctx    *Context
	in     *InputState
	sink   *recordingSink
	tapped []Key
}

func newHarness(t *testing.T) *harness {
	return newHarnessConfig(t, DefaultConfig())
}

func newHarnessConfig(t *testing.T, cfg Config) *harness {
	t.Helper()
	ctx := NewContext(cfg)
	ctx.SetFont(monoFont(8))
	ctx.SetStyle(CtrlDefault, TextSize, 10)
	ctx.SetStyle(CtrlDefault, TextSpacing, 0)
	sink := &recordingSink{}
	ctx.Sink = sink
	return &harness{t: t, ctx: ctx, in: NewInputState(), sink: sink}
}

// event changes the input of the next frame.
type event func(h *harness)

// frame runs one frame: keys tapped last frame go up, events apply, then
// draw issues the control calls.
func (h *harness) frame(draw func(ctx *Context), events ...event) {
	for _, k := range h.tapped {
		h.in.SetKey(k, false)
	}
	h.tapped = h.tapped[:0]
	h.in.Reset()
	h.in.ModCtrl = false
	for _, ev := range events {
		ev(h)
	}
	h.sink.reset()
	h.ctx.BeginFrame(h.in, Vec2{X: 800, Y: 600}, 1.0/60.0)
	draw(h.ctx)
}

func chars(s string) event {
	return func(h *harness) {
		for _, r := range s {
			h.in.AddInputChar(r)
		}
	}
}

// tap presses keys for one frame.
func tap(keys ...Key) event {
	return func(h *harness) {
		for _, k := range keys {
			h.in.SetKey(k, true)
			h.tapped = append(h.tapped, k)
		}
	}
}

// hold presses a key until release is sent.
func hold(k Key) event {
	return func(h *harness) { h.in.SetKey(k, true) }
}

func release(k Key) event {
	return func(h *harness) { h.in.SetKey(k, false) }
}

func withCtrl() event {
	return func(h *harness) { h.in.ModCtrl = true }
}

func mouseAt(x, y float32) event {
	return func(h *harness) { h.in.SetMousePos(x, y) }
}

func mouseDown() event {
	return func(h *harness) { h.in.SetMouseButton(MouseButtonLeft, true) }
}

func mouseUp() event {
	return func(h *harness) { h.in.SetMouseButton(MouseButtonLeft, false) }
}

func wheel(y float32) event {
	return func(h *harness) { h.in.SetMouseWheel(0, y) }
}

// textBuffer returns a NUL-padded buffer of the given capacity.
func textBuffer(text string, capacity int) []byte {
	buf := make([]byte, capacity)
	copy(buf, text)
	return buf
}

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) GetText() string     { return c.text }
func (c *fakeClipboard) SetText(text string) { c.text = text }
