package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// click presses and releases the left button at (x, y) over two frames and
// returns what draw reported on the release frame.
func click(h *harness, x, y float32, draw func(ctx *Context) bool) bool {
	wrap := func(ctx *Context) { draw(ctx) }
	h.frame(wrap, mouseAt(x, y), mouseDown())
	var got bool
	h.frame(func(ctx *Context) { got = draw(ctx) }, mouseUp())
	return got
}

func TestTextSplit(t *testing.T) {
	ctx := NewContext(DefaultConfig())

	items, rows := ctx.TextSplit("a;b\nc", ';')
	assert.Equal(t, []string{"a", "b", "c"}, items)
	assert.Equal(t, []int{0, 0, 1}, rows)

	items, rows = ctx.TextSplit("", ';')
	assert.Equal(t, []string{""}, items)
	assert.Equal(t, []int{0}, rows)

	items, _ = ctx.TextSplit("x;;y", ';')
	assert.Equal(t, []string{"x", "", "y"}, items)

	small := NewContext(Config{MaxSplitItems: 2, MaxTextBufferSize: 4})
	items, _ = small.TextSplit("a;b;c", ';')
	assert.Equal(t, []string{"a", "b"}, items)
	items, _ = small.TextSplit("abcdef", ';')
	assert.Equal(t, []string{"abcd"}, items)
}

func TestConfigNormalized(t *testing.T) {
	cfg := NewContext(Config{RepeatDelay: 3}).Config()
	assert.Equal(t, 3, cfg.RepeatDelay)
	assert.Equal(t, DefaultConfig().RepeatCooldown, cfg.RepeatCooldown)
	assert.Equal(t, "...", cfg.EllipsisText)
	assert.Equal(t, 32, cfg.MaxValueBoxChars)
}

func TestButtonClicksOnRelease(t *testing.T) {
	h := newHarness(t)
	var pressed bool
	draw := func(ctx *Context) {
		pressed = ctx.Button(Rect{X: 0, Y: 0, W: 100, H: 30}, "Go")
	}

	h.frame(draw, mouseAt(10, 10), mouseDown())
	assert.False(t, pressed)
	assert.True(t, h.ctx.WantCaptureMouse)
	h.frame(draw, mouseUp())
	assert.True(t, pressed)
	assert.Equal(t, "Go", h.sink.text())

	// Released outside.
	h.frame(draw, mouseDown())
	h.frame(draw, mouseAt(300, 300), mouseUp())
	assert.False(t, pressed)
}

func TestLockIgnoresInput(t *testing.T) {
	h := newHarness(t)
	got := click(h, 10, 10, func(ctx *Context) bool {
		ctx.Lock()
		defer ctx.Unlock()
		return ctx.Button(Rect{X: 0, Y: 0, W: 100, H: 30}, "Go")
	})
	assert.False(t, got)
	assert.False(t, h.ctx.IsLocked())
}

func TestTooltip(t *testing.T) {
	h := newHarness(t)
	draw := func(ctx *Context) {
		ctx.Button(Rect{X: 0, Y: 0, W: 100, H: 30}, "Go", WithTooltip("tip"))
	}

	h.frame(draw, mouseAt(10, 10))
	assert.Equal(t, "Go", h.sink.text(), "tooltips are off by default")

	h.ctx.EnableTooltip()
	h.frame(draw)
	assert.Equal(t, "Gotip", h.sink.text())

	h.ctx.SetTooltip("shared")
	h.frame(func(ctx *Context) { ctx.Button(Rect{X: 0, Y: 0, W: 100, H: 30}, "Go") })
	assert.Equal(t, "Goshared", h.sink.text())

	h.frame(draw, mouseAt(300, 300))
	assert.Equal(t, "Go", h.sink.text())
}

func TestToggle(t *testing.T) {
	h := newHarness(t)
	on := false
	draw := func(ctx *Context) bool {
		return ctx.Toggle(Rect{X: 0, Y: 0, W: 100, H: 30}, "T", &on)
	}
	assert.True(t, click(h, 10, 10, draw))
	assert.True(t, on)
	assert.True(t, click(h, 10, 10, draw))
	assert.False(t, on)
}

func TestToggleGroup(t *testing.T) {
	h := newHarness(t)
	active := 0
	draw := func(ctx *Context) bool {
		return ctx.ToggleGroup(Rect{X: 0, Y: 0, W: 50, H: 20}, "A;B\nC", &active)
	}

	// Items sit 50 wide with a 2 pixel gap.
	assert.True(t, click(h, 60, 10, draw))
	assert.Equal(t, 1, active)

	assert.False(t, click(h, 60, 10, draw), "clicking the active item keeps it")
	assert.Equal(t, 1, active)

	// C starts the second row.
	assert.True(t, click(h, 10, 30, draw))
	assert.Equal(t, 2, active)
}

func TestCheckBox(t *testing.T) {
	h := newHarness(t)
	checked := false
	draw := func(ctx *Context) bool {
		return ctx.CheckBox(Rect{X: 0, Y: 0, W: 16, H: 16}, "ok", &checked)
	}

	// The label to the right is part of the hit area.
	assert.True(t, click(h, 30, 8, draw))
	assert.True(t, checked)
	assert.Equal(t, "ok", h.sink.text())

	assert.False(t, click(h, 60, 8, draw))
	assert.True(t, checked)

	assert.True(t, click(h, 8, 8, draw))
	assert.False(t, checked)
}

func TestComboBox(t *testing.T) {
	h := newHarness(t)
	active := 0
	draw := func(ctx *Context) bool {
		return ctx.ComboBox(Rect{X: 0, Y: 0, W: 200, H: 24}, "a;b;c", &active)
	}

	assert.True(t, click(h, 50, 12, draw))
	assert.Equal(t, 1, active)
	assert.Equal(t, "b2/3", h.sink.text())

	// The selector button also cycles.
	assert.True(t, click(h, 180, 12, draw))
	assert.Equal(t, 2, active)
	assert.True(t, click(h, 180, 12, draw))
	assert.Equal(t, 0, active)

	active = 7
	h.frame(func(ctx *Context) { draw(ctx) }, mouseAt(500, 500))
	assert.Equal(t, 2, active)
}

func TestWindowBoxClose(t *testing.T) {
	h := newHarness(t)
	draw := func(ctx *Context) bool {
		return ctx.WindowBox(Rect{X: 0, Y: 0, W: 300, H: 200}, "Title")
	}

	assert.False(t, click(h, 150, 100, draw))
	// Close button: x 279..297, y 3..21.
	assert.True(t, click(h, 288, 12, draw))
	assert.Contains(t, h.sink.text(), "Title")
	assert.Equal(t, uint32(2), h.ctx.GetStyle(CtrlButton, BorderWidth), "button style restored")
}

func TestDisabledControlsIgnoreInput(t *testing.T) {
	h := newHarness(t)
	on := false
	got := click(h, 10, 10, func(ctx *Context) bool {
		ctx.Disable()
		defer ctx.Enable()
		return ctx.Toggle(Rect{X: 0, Y: 0, W: 100, H: 30}, "T", &on)
	})
	assert.False(t, got)
	assert.False(t, on)
}

func TestControlIDsFollowCallOrder(t *testing.T) {
	h := newHarness(t)
	var first, second, again ID
	h.frame(func(ctx *Context) {
		first = ctx.GetID("x")
		second = ctx.GetID("x")
	})
	h.frame(func(ctx *Context) { again = ctx.GetID("x") })
	assert.NotEqual(t, first, second)
	assert.Equal(t, first, again)

	assert.Equal(t, HashID("name"), HashID("name"))
	assert.NotEqual(t, ID(0), HashID(""))
	assert.NotEqual(t, HashID("a"), HashID("b"))
}

func TestPushIDScopes(t *testing.T) {
	h := newHarness(t)
	var inA, inB ID
	h.frame(func(ctx *Context) {
		ctx.PushID("a")
		inA = ctx.GetID("x")
		ctx.PopID()
	})
	h.frame(func(ctx *Context) {
		ctx.PushID("b")
		inB = ctx.GetID("x")
		ctx.PopID()
	})
	assert.NotEqual(t, inA, inB)
}

func TestDragSessionSingleOwner(t *testing.T) {
	var d DragSession
	assert.True(t, d.Begin(1))
	assert.False(t, d.Begin(2))
	assert.True(t, d.Begin(1))
	assert.True(t, d.Owns(1))
	assert.False(t, d.Owns(0))
	d.End()
	assert.False(t, d.Active())
	assert.True(t, d.Begin(2))
}

func TestFrameStoreSweep(t *testing.T) {
	s := NewFrameStore[int]()
	s.Sweep(1)
	*s.Get(1, 0) = 10
	*s.Get(2, 0) = 20

	s.Sweep(2)
	assert.Equal(t, 10, *s.Get(1, 0))

	s.Sweep(3)
	_, ok := s.Lookup(2)
	assert.False(t, ok, "not touched in frame 2")
	v, ok := s.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, 10, *v)
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestTextBoundsOverride(t *testing.T) {
	h := newHarness(t)
	r := Rect{X: 10, Y: 10, W: 120, H: 30}

	for _, ctrl := range []Control{CtrlTextBox, CtrlDropdownBox, CtrlListView} {
		assert.Equal(t, paddedTextBounds(h.ctx, ctrl, r), h.ctx.GetTextBounds(ctrl, r), ctrl.String())
	}

	inner := Rect{X: 50, Y: 12, W: 40, H: 20}
	h.ctx.RegisterTextBounds(CtrlTextBox, func(*Context, Control, Rect) Rect { return inner })
	assert.Equal(t, inner, h.ctx.GetTextBounds(CtrlTextBox, r))

	// The box lays its text out in the registered rectangle.
	buf := textBuffer("ab", 8)
	h.frame(func(ctx *Context) { ctx.TextBox(r, buf, false) })
	glyphs := h.sink.glyphs
	require.NotEmpty(t, glyphs)
	assert.GreaterOrEqual(t, glyphs[0].pos.X, inner.X)

	h.ctx.RegisterTextBounds(CtrlTextBox, nil)
	assert.Equal(t, paddedTextBounds(h.ctx, CtrlTextBox, r), h.ctx.GetTextBounds(CtrlTextBox, r))
}
