package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVStack(t *testing.T) {
	col := VStack(Rect{X: 10, Y: 20, W: 100, H: 200}, Gap(5), Padding(2))

	assert.Equal(t, Rect{X: 12, Y: 22, W: 40, H: 30}, col.Next(40, 30))
	assert.Equal(t, Rect{X: 12, Y: 57, W: 60, H: 10}, col.Next(60, 10))
	col.Space(3)
	assert.Equal(t, Rect{X: 12, Y: 75, W: 96, H: 143}, col.Remaining())
}

func TestHStack(t *testing.T) {
	row := HStack(Rect{X: 0, Y: 0, W: 300, H: 30}, Gap(4), Align(AlignCenter))

	assert.Equal(t, Rect{X: 0, Y: 5, W: 50, H: 20}, row.Next(50, 20))
	assert.Equal(t, Rect{X: 54, Y: 0, W: 10, H: 30}, row.Next(10, 30))
	assert.Equal(t, Rect{X: 68, Y: 0, W: 232, H: 30}, row.Remaining())
}

func TestLayoutAlignment(t *testing.T) {
	tests := []struct {
		align Alignment
		want  Rect
	}{
		{AlignStart, Rect{X: 0, Y: 0, W: 20, H: 10}},
		{AlignCenter, Rect{X: 40, Y: 0, W: 20, H: 10}},
		{AlignEnd, Rect{X: 80, Y: 0, W: 20, H: 10}},
		{AlignStretch, Rect{X: 0, Y: 0, W: 100, H: 10}},
	}
	for _, tt := range tests {
		col := VStack(Rect{W: 100, H: 100}, Align(tt.align))
		assert.Equal(t, tt.want, col.Next(20, 10), "align %d", tt.align)
	}
}

func TestLayoutRemainingNeverNegative(t *testing.T) {
	col := VStack(Rect{W: 100, H: 20})
	col.Next(10, 50)
	assert.Equal(t, float32(0), col.Remaining().H)
}
