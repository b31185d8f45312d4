package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputStateEdges(t *testing.T) {
	in := NewInputState()
	in.SetMouseButton(MouseButtonLeft, true)
	in.SetKey(KeyLeft, true)
	assert.True(t, in.MouseClicked(MouseButtonLeft))
	assert.True(t, in.KeyPressed(KeyLeft))

	in.Reset()
	assert.False(t, in.MouseClicked(MouseButtonLeft))
	assert.True(t, in.MouseDown(MouseButtonLeft), "held across frames")
	assert.False(t, in.KeyPressed(KeyLeft))
	assert.True(t, in.AnyKeyDown(KeyRight, KeyLeft))

	in.SetMouseButton(MouseButtonLeft, false)
	in.SetKey(KeyLeft, false)
	assert.True(t, in.MouseReleased(MouseButtonLeft))
	assert.True(t, in.KeyReleased(KeyLeft))

	in.SetKey(KeyNone, true)
	assert.False(t, in.KeyDown(KeyNone))
	assert.False(t, in.MouseDown(MouseButtonCount))
}

func TestInputChars(t *testing.T) {
	in := NewInputState()
	in.AddInputChar('a')
	in.AddInputChar('ж')
	assert.True(t, in.HasInputChars())
	assert.Equal(t, 'a', in.NextChar())
	assert.Equal(t, 'ж', in.NextChar())
	assert.Equal(t, rune(0), in.NextChar())

	in.SetMouseWheel(0, 2)
	in.Reset()
	assert.False(t, in.HasInputChars())
	assert.Equal(t, float32(0), in.MouseWheelY)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Backspace", KeyBackspace.String())
	assert.Equal(t, "?", KeyCount.String())
}
