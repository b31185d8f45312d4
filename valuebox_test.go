package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numberBounds = Rect{X: 100, Y: 0, W: 100, H: 30}

func TestValueBoxClampsOnCommit(t *testing.T) {
	h := newHarness(t)
	value := 50
	var signal bool
	draw := func(ctx *Context) {
		signal = ctx.ValueBox(numberBounds, "", &value, 0, 100, true)
	}

	h.frame(draw)
	h.frame(draw, chars("999"))
	assert.Equal(t, 50, value, "typing leaves the value alone")
	assert.False(t, signal)
	assert.Contains(t, h.sink.text(), "50999")

	h.frame(draw, tap(KeyEnter))
	assert.True(t, signal)
	assert.Equal(t, 100, value)
	assert.False(t, h.ctx.EditSession().Active())
}

func TestValueBoxNegative(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		want     int
	}{
		{"in range", -10, 10, -5},
		{"clamped", -3, 10, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			value := 5
			draw := func(ctx *Context) {
				ctx.ValueBox(numberBounds, "", &value, tt.min, tt.max, true)
			}
			h.frame(draw, tap(KeyHome))
			h.frame(draw, chars("-"))
			h.frame(draw, tap(KeyEnter))
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestValueBoxRejectsMinusWhenNotNegative(t *testing.T) {
	h := newHarness(t)
	value := 5
	draw := func(ctx *Context) { ctx.ValueBox(numberBounds, "", &value, 0, 10, true) }

	h.frame(draw, tap(KeyHome))
	h.frame(draw, chars("-x"))
	h.frame(draw, tap(KeyEnter))
	assert.Equal(t, 5, value)
}

func TestValueBoxEmptyCommitIsZero(t *testing.T) {
	h := newHarness(t)
	value := 7
	draw := func(ctx *Context) { ctx.ValueBox(numberBounds, "", &value, -5, 10, true) }

	h.frame(draw)
	h.frame(draw, tap(KeyBackspace))
	h.frame(draw, tap(KeyEnter))
	assert.Equal(t, 0, value)
}

func TestValueBoxClampsOutsideEdit(t *testing.T) {
	h := newHarness(t)
	value := 500
	h.frame(func(ctx *Context) { ctx.ValueBox(numberBounds, "", &value, 0, 100, false) })
	assert.Equal(t, 100, value)
	assert.Equal(t, "100", h.sink.text())
}

func TestValueBoxWidthLimit(t *testing.T) {
	h := newHarness(t)
	value := 5
	draw := func(ctx *Context) {
		ctx.ValueBox(Rect{X: 100, Y: 0, W: 30, H: 30}, "", &value, 0, 99999, true)
	}

	h.frame(draw)
	h.frame(draw, chars("1234"))
	h.frame(draw, tap(KeyEnter))
	assert.Equal(t, 5123, value)
}

func TestValueBoxFocusFlow(t *testing.T) {
	h := newHarness(t)
	value := 42
	editing := false
	draw := func(ctx *Context) {
		if ctx.ValueBox(numberBounds, "Count", &value, 0, 1000, editing) {
			editing = !editing
		}
	}

	h.frame(draw, mouseAt(150, 15), mouseDown())
	require.True(t, editing)
	h.frame(draw, mouseUp(), chars("7"))
	assert.Equal(t, 42, value)

	h.frame(draw, mouseAt(10, 300), mouseDown())
	assert.False(t, editing)
	assert.Equal(t, 427, value)
	assert.Contains(t, h.sink.text(), "Count")
}

func TestValueBoxFloat(t *testing.T) {
	h := newHarness(t)
	value := float32(1.5)
	var signal bool
	draw := func(ctx *Context) {
		signal = ctx.ValueBoxFloat(numberBounds, "", &value, true)
	}

	h.frame(draw)
	h.frame(draw, chars("25"))
	assert.Equal(t, float32(1.5), value)

	h.frame(draw, tap(KeyEnter))
	assert.True(t, signal)
	assert.InDelta(t, 1.525, value, 1e-6)
}

func TestValueBoxFloatKeepsValueOnBadText(t *testing.T) {
	h := newHarness(t)
	value := float32(2)
	draw := func(ctx *Context) { ctx.ValueBoxFloat(numberBounds, "", &value, true) }

	h.frame(draw)
	h.frame(draw, tap(KeyBackspace))
	h.frame(draw, chars("-"))
	h.frame(draw, tap(KeyEnter))
	assert.Equal(t, float32(2), value)
}

func TestValueBoxFloatFilter(t *testing.T) {
	h := newHarness(t)
	value := float32(1)
	draw := func(ctx *Context) { ctx.ValueBoxFloat(numberBounds, "", &value, true) }

	h.frame(draw)
	h.frame(draw, chars(".5.x"))
	h.frame(draw, tap(KeyEnter))
	assert.Equal(t, float32(1.5), value)
}

func TestValueBoxFloatFormat(t *testing.T) {
	h := newHarness(t)
	value := float32(1.5)
	h.frame(func(ctx *Context) {
		ctx.ValueBoxFloat(numberBounds, "", &value, false, WithFormat("%.2f"))
	})
	assert.Equal(t, "1.50", h.sink.text())
}

func TestSpinnerButtons(t *testing.T) {
	h := newHarness(t)
	value := 5
	var signal bool
	bounds := Rect{X: 100, Y: 0, W: 150, H: 30}
	draw := func(ctx *Context) {
		signal = ctx.Spinner(bounds, "", &value, 0, 10, false, WithStep(3))
	}

	// Right button spans x 226..250.
	h.frame(draw, mouseAt(238, 15), mouseDown())
	assert.False(t, signal, "steps on release")
	h.frame(draw, mouseUp())
	assert.True(t, signal)
	assert.Equal(t, 8, value)

	h.frame(draw, mouseDown())
	h.frame(draw, mouseUp())
	assert.Equal(t, 10, value, "clamped at max")

	// Left button spans x 100..124.
	h.frame(draw, mouseAt(110, 15), mouseDown())
	h.frame(draw, mouseUp())
	assert.Equal(t, 7, value)
	assert.False(t, h.ctx.EditSession().Active())
}

func TestSpinnerEdit(t *testing.T) {
	h := newHarness(t)
	id := HashID("spin")
	value := 3
	editing := false
	bounds := Rect{X: 100, Y: 0, W: 150, H: 30}
	draw := func(ctx *Context) {
		if ctx.Spinner(bounds, "Speed", &value, 0, 50, editing, WithID(id)) {
			editing = ctx.EditSession().Owns(id)
		}
	}

	h.frame(draw, mouseAt(175, 15), mouseDown())
	require.True(t, editing)
	h.frame(draw, mouseUp(), chars("9"))
	h.frame(draw, tap(KeyEnter))
	assert.False(t, editing)
	assert.Equal(t, 39, value)
}

func TestIntFilter(t *testing.T) {
	f := intFilter(true)
	assert.True(t, f('-', nil, 0))
	assert.False(t, f('-', []byte("-1"), 0))
	assert.False(t, f('-', []byte("1"), 1))
	assert.False(t, f('1', []byte("-1"), 0), "nothing before the sign")
	assert.True(t, f('1', []byte("-1"), 1))
	assert.False(t, f('a', nil, 0))
	assert.False(t, intFilter(false)('-', nil, 0))
}
