package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutTextEllipsis(t *testing.T) {
	font := monoFont(8)
	bounds := Rect{X: 0, Y: 0, W: 80, H: 20}

	layout := LayoutText(font, "abcdefghijklmnop", bounds, monoStyle())
	require.True(t, layout.Overflow)

	var body, dots []GlyphPlacement
	for _, g := range layout.DrawnGlyphs() {
		if g.Ellipsis {
			dots = append(dots, g)
		} else {
			body = append(body, g)
		}
	}

	require.Len(t, dots, 3, "one ellipsis per overflowing line")
	for _, d := range dots {
		assert.Equal(t, '.', d.Codepoint)
	}
	require.Len(t, body, 7)
	for i, g := range body {
		assert.Equal(t, rune('a'+i), g.Codepoint)
		assert.LessOrEqual(t, g.Pos.X+g.Width, bounds.X+bounds.W-24)
	}
	last := dots[len(dots)-1]
	assert.LessOrEqual(t, last.Pos.X+last.Width, bounds.X+bounds.W)
}

func TestLayoutTextFitsWithoutEllipsis(t *testing.T) {
	layout := LayoutText(monoFont(8), "abcdefghij", Rect{W: 80, H: 20}, monoStyle())
	assert.False(t, layout.Overflow)
	assert.Len(t, layout.DrawnGlyphs(), 10)
}

func TestLayoutTextCustomEllipsis(t *testing.T) {
	ts := monoStyle()
	ts.Ellipsis = "~"
	layout := LayoutText(monoFont(8), "abcdefghijklmnop", Rect{W: 80, H: 20}, ts)

	var dots int
	for _, g := range layout.DrawnGlyphs() {
		if g.Ellipsis {
			dots++
			assert.Equal(t, '~', g.Codepoint)
		}
	}
	assert.Equal(t, 1, dots)
}

func TestLayoutTextWordWrap(t *testing.T) {
	ts := monoStyle()
	ts.Wrap = WrapWord
	bounds := Rect{X: 10, Y: 20, W: 40, H: 200}

	layout := LayoutText(monoFont(8), "a verylongword here ok", bounds, ts)
	drawn := layout.DrawnGlyphs()
	require.NotEmpty(t, drawn)

	wrapped := false
	for _, g := range drawn {
		assert.LessOrEqual(t, g.Pos.X-bounds.X, bounds.W-g.Width, "glyph %q past the right edge", g.Codepoint)
		if g.Pos.Y > bounds.Y {
			wrapped = true
		}
	}
	assert.True(t, wrapped)
	assert.False(t, layout.Overflow)
}

func TestLayoutTextWordWrapKeepsWordsTogether(t *testing.T) {
	ts := monoStyle()
	ts.Wrap = WrapWord

	layout := LayoutText(monoFont(8), "ab cd", Rect{W: 32, H: 100}, ts)
	drawn := layout.DrawnGlyphs()
	require.Len(t, drawn, 4)

	// "ab " fills 24px and "cd" needs 16 more, so it starts a new row.
	assert.Equal(t, float32(0), drawn[2].Pos.X)
	assert.Equal(t, float32(15), drawn[2].Pos.Y)
	assert.Equal(t, drawn[2].Pos.Y, drawn[3].Pos.Y)
}

func TestLayoutTextCharWrap(t *testing.T) {
	ts := monoStyle()
	ts.Wrap = WrapChar

	layout := LayoutText(monoFont(8), "abcdefghij", Rect{W: 40, H: 100}, ts)
	drawn := layout.DrawnGlyphs()
	require.Len(t, drawn, 10)

	assert.Equal(t, 'f', drawn[5].Codepoint)
	assert.Equal(t, Vec2{X: 0, Y: 15}, drawn[5].Pos)
}

func TestLayoutTextWrapClipsAtBottom(t *testing.T) {
	ts := monoStyle()
	ts.Wrap = WrapChar

	layout := LayoutText(monoFont(8), "abcdefghijklmno", Rect{W: 40, H: 20}, ts)
	drawn := layout.DrawnGlyphs()
	assert.Len(t, drawn, 5)
	for _, g := range drawn {
		assert.Equal(t, float32(0), g.Pos.Y)
	}
	assert.Len(t, layout.Glyphs, 15)
}

func TestLayoutTextAlignment(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 80, H: 20}
	tests := []struct {
		name  string
		align TextAlign
		x     float32
	}{
		{"left", TextAlignLeft, 0},
		{"center", TextAlignCenter, 24},
		{"right", TextAlignRight, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := monoStyle()
			ts.Align = tt.align
			layout := LayoutText(monoFont(8), "abcd", bounds, ts)
			require.NotEmpty(t, layout.Glyphs)
			assert.Equal(t, tt.x, layout.Glyphs[0].Pos.X)
		})
	}
}

func TestLayoutTextOverflowForcesLeft(t *testing.T) {
	ts := monoStyle()
	ts.Align = TextAlignRight
	layout := LayoutText(monoFont(8), "abcdefghijklmnop", Rect{X: 5, W: 80, H: 20}, ts)
	require.NotEmpty(t, layout.Glyphs)
	assert.Equal(t, float32(5), layout.Glyphs[0].Pos.X)
}

func TestLayoutTextVerticalAlignment(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 80, H: 30}
	tests := []struct {
		name   string
		valign TextVAlign
		y      float32
	}{
		{"top", TextAlignTop, 0},
		{"middle", TextAlignMiddle, 10},
		{"bottom", TextAlignBottom, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := monoStyle()
			ts.VAlign = tt.valign
			layout := LayoutText(monoFont(8), "ab", bounds, ts)
			require.NotEmpty(t, layout.Glyphs)
			assert.Equal(t, tt.y, layout.Glyphs[0].Pos.Y)
		})
	}
}

func TestLayoutTextIconLine(t *testing.T) {
	bounds := Rect{X: 10, Y: 0, W: 200, H: 20}
	layout := LayoutText(monoFont(8), "#112#ok", bounds, monoStyle())

	require.Len(t, layout.Icons, 1)
	assert.Equal(t, 112, layout.Icons[0].ID)
	assert.Equal(t, float32(10), layout.Icons[0].Pos.X)
	assert.Equal(t, 1, layout.Icons[0].Scale)

	drawn := layout.DrawnGlyphs()
	require.Len(t, drawn, 2)
	assert.Equal(t, 'o', drawn[0].Codepoint)
	assert.Equal(t, float32(10+IconSize+IconTextPadding), drawn[0].Pos.X)
}

func TestLayoutTextIconScale(t *testing.T) {
	ts := monoStyle()
	ts.IconScale = 2
	layout := LayoutText(monoFont(8), "#001#x", Rect{W: 200, H: 40}, ts)

	require.Len(t, layout.Icons, 1)
	assert.Equal(t, 2, layout.Icons[0].Scale)
	require.Len(t, layout.Glyphs, 1)
	assert.Equal(t, float32(2*IconSize+IconTextPadding), layout.Glyphs[0].Pos.X)
}

func TestLayoutTextMaxLines(t *testing.T) {
	ts := monoStyle()
	ts.MaxLines = 2
	layout := LayoutText(monoFont(8), "a\nb\nc", Rect{W: 80, H: 100}, ts)

	assert.Equal(t, 2, layout.Lines)
	drawn := layout.DrawnGlyphs()
	require.Len(t, drawn, 2)
	assert.Equal(t, 'a', drawn[0].Codepoint)
	assert.Equal(t, 'b', drawn[1].Codepoint)
	assert.Equal(t, float32(15), drawn[1].Pos.Y)
}

func TestLayoutTextScalesWithSize(t *testing.T) {
	ts := monoStyle()
	ts.Size = 20
	layout := LayoutText(monoFont(8), "ab", Rect{W: 200, H: 40}, ts)

	require.Len(t, layout.Glyphs, 2)
	assert.Equal(t, float32(2), layout.Scale)
	assert.Equal(t, float32(16), layout.Glyphs[0].Width)
	assert.Equal(t, float32(16), layout.Glyphs[1].Pos.X)
}

func TestLayoutTextSkipsWhitespaceInk(t *testing.T) {
	layout := LayoutText(monoFont(8), "a b\tc", Rect{W: 200, H: 20}, monoStyle())
	require.Len(t, layout.Glyphs, 5)
	assert.Len(t, layout.DrawnGlyphs(), 3)
}

func TestLayoutTextEmpty(t *testing.T) {
	layout := LayoutText(monoFont(8), "", Rect{W: 80, H: 20}, monoStyle())
	assert.Empty(t, layout.Glyphs)
	assert.Zero(t, layout.Lines)
}

func TestTextWidth(t *testing.T) {
	font := monoFont(8)
	ts := monoStyle()

	assert.Equal(t, float32(0), TextWidth(font, "", ts))
	assert.Equal(t, float32(24), TextWidth(font, "abc", ts))
	assert.Equal(t, float32(16), TextWidth(font, "ab\ncdef", ts), "only the first line counts")
	assert.Equal(t, float32(IconSize+IconTextPadding+16), TextWidth(font, "#001#ab", ts))

	ts.Spacing = 2
	assert.Equal(t, float32(30), TextWidth(font, "abc", ts))
}

func TestParseIconMarker(t *testing.T) {
	tests := []struct {
		in   string
		id   int
		rest string
	}{
		{"#5#x", 5, "x"},
		{"#112#ok", 112, "ok"},
		{"#001#", 1, ""},
		{"#1234#x", -1, "#1234#x"},
		{"#ab#", -1, "#ab#"},
		{"##x", -1, "##x"},
		{"plain", -1, "plain"},
		{"#1", -1, "#1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, rest := ParseIconMarker(tt.in)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestIconText(t *testing.T) {
	assert.Equal(t, "#005#Save", IconText(5, "Save"))
	id, rest := ParseIconMarker(IconText(IconOkTick, "done"))
	assert.Equal(t, IconOkTick, id)
	assert.Equal(t, "done", rest)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\r\nb\n", 0))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\nc\nd", 2))
	assert.Equal(t, []string{""}, SplitLines("", 4))
}
