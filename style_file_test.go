package gui

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFont is a two-glyph font with a small patterned atlas.
func testFont() *FontAsset {
	atlas := image.NewAlpha(image.Rect(0, 0, 8, 4))
	for i := range atlas.Pix {
		atlas.Pix[i] = byte(i * 7)
	}
	f := NewFontAsset(10,
		[]GlyphInfo{{Value: 'A', OffsetX: 0, OffsetY: 1, AdvanceX: 6}, {Value: 'B', OffsetX: 1, OffsetY: 0, AdvanceX: 7}},
		[]Rect{{X: 0, Y: 0, W: 3, H: 4}, {X: 4, Y: 0, W: 3, H: 4}},
		atlas)
	f.Type = FontTypeBitmap
	f.WhiteRec = Rect{X: 7, Y: 3, W: 1, H: 1}
	return f
}

func testSkin() Skin {
	return Skin{
		Name: "test",
		Properties: []StyleProperty{
			{CtrlDefault, BorderColorNormal, 0x112233ff},
			{CtrlButton, BorderWidth, 3},
			{CtrlSlider, SliderWidth, 20},
			{CtrlDefault, TextSpacing, 0xFFFFFFFE},
		},
		Font: testFont(),
	}
}

type stubLoader struct {
	font  *FontAsset
	err   error
	path  string
	size  int
	count int
}

func (l *stubLoader) LoadFont(path string, size int, codepoints []rune) (*FontAsset, error) {
	l.path, l.size, l.count = path, size, len(codepoints)
	if l.err != nil {
		return nil, l.err
	}
	return l.font, nil
}

func TestWriteReadStyleRoundTrip(t *testing.T) {
	for _, version := range []int{StyleVersionRaw, StyleVersionCompressed} {
		t.Run(fmt.Sprintf("v%d", version), func(t *testing.T) {
			want := testSkin()

			var buf bytes.Buffer
			require.NoError(t, WriteStyle(&buf, want, version))
			require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("rGS ")))

			got, err := ReadStyle(&buf)
			require.NoError(t, err)
			assert.Equal(t, want.Properties, got.Properties)

			require.NotNil(t, got.Font)
			assert.Equal(t, want.Font.BaseSize, got.Font.BaseSize)
			assert.Equal(t, want.Font.Type, got.Font.Type)
			assert.Equal(t, want.Font.WhiteRec, got.Font.WhiteRec)
			assert.Equal(t, want.Font.Glyphs, got.Font.Glyphs)
			assert.Equal(t, want.Font.Recs, got.Font.Recs)
			assert.Equal(t, want.Font.Atlas.Pix, got.Font.Atlas.Pix)
			assert.Equal(t, float32(7), got.Font.GlyphWidth('B'))
		})
	}
}

func TestWriteStyleWithoutFont(t *testing.T) {
	skin := testSkin()
	skin.Font = nil

	var buf bytes.Buffer
	require.NoError(t, WriteStyle(&buf, skin, StyleVersionCompressed))
	got, err := ReadStyle(&buf)
	require.NoError(t, err)
	assert.Nil(t, got.Font)
	assert.Equal(t, skin.Properties, got.Properties)
}

func TestWriteStyleRejectsVersion(t *testing.T) {
	err := WriteStyle(&bytes.Buffer{}, testSkin(), 300)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestReadStyleBadSignature(t *testing.T) {
	_, err := ReadStyle(bytes.NewReader([]byte("rGX \xc8\x00\x00\x00\x00\x00\x00\x00")))
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestReadStyleBadVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStyle(&buf, Skin{}, StyleVersionRaw))
	data := buf.Bytes()
	binary.LittleEndian.PutUint16(data[4:], 300)

	_, err := ReadStyle(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestReadStyleTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStyle(&buf, testSkin(), StyleVersionRaw))
	data := buf.Bytes()

	for _, n := range []int{0, 2, 11, 14, 12 + 8*4 - 1} {
		_, err := ReadStyle(bytes.NewReader(data[:n]))
		assert.ErrorIs(t, err, ErrTruncated, "cut at %d", n)
	}
}

// styleWithFontBlock builds a property-less style file whose font block
// announces size bytes but carries only body.
func styleWithFontBlock(t *testing.T, version int16, size int32, body []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	h := styleHeader{Signature: [4]byte{'r', 'G', 'S', ' '}, Version: version}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, h))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, size))
	buf.Write(body)
	return buf.Bytes()
}

func TestReadStyleOversizedFontBlock(t *testing.T) {
	// A huge atlas announced inside a tiny compressed block.
	var fontBlock bytes.Buffer
	require.NoError(t, binary.Write(&fontBlock, binary.LittleEndian, fontHeader{
		BaseSize: 10, GlyphCount: 1, ImageWidth: maxAtlasSide, ImageHeight: maxAtlasSide, ImageFormat: imageFormatAlpha,
	}))
	require.NoError(t, binary.Write(&fontBlock, binary.LittleEndian, [2]int32{0, maxAtlasSide * maxAtlasSide}))

	tests := []struct {
		name string
		data []byte
	}{
		{"size past the cap", styleWithFontBlock(t, StyleVersionCompressed, 0x7FFFFFFF, nil)},
		{"size under the cap without data", styleWithFontBlock(t, StyleVersionCompressed, 200<<20, []byte{1, 2, 3})},
		{"atlas larger than the block", styleWithFontBlock(t, StyleVersionCompressed, int32(fontBlock.Len()), fontBlock.Bytes())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			skin, err := ReadStyle(bytes.NewReader(tt.data))
			runtime.ReadMemStats(&after)

			require.NoError(t, err)
			assert.Nil(t, skin.Font)
			assert.Empty(t, skin.Properties)
			assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20), "bytes allocated")
		})
	}
}

func TestReadStyleSkipsCorruptFont(t *testing.T) {
	var buf bytes.Buffer
	skin := testSkin()
	skin.Font = nil
	require.NoError(t, WriteStyle(&buf, skin, StyleVersionRaw))

	// Replace the empty font block with one too short for its header.
	data := buf.Bytes()[:buf.Len()-4]
	data = binary.LittleEndian.AppendUint32(data, 8)
	data = append(data, make([]byte, 8)...)

	got, err := ReadStyle(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Nil(t, got.Font)
	assert.Equal(t, skin.Properties, got.Properties)
}

func TestReadStyleWithoutFontBlock(t *testing.T) {
	var buf bytes.Buffer
	skin := testSkin()
	skin.Font = nil
	require.NoError(t, WriteStyle(&buf, skin, StyleVersionRaw))

	got, err := ReadStyle(bytes.NewReader(buf.Bytes()[:buf.Len()-4]))
	require.NoError(t, err)
	assert.Len(t, got.Properties, len(skin.Properties))
}

func TestReadStyleSkipsOutOfRangeProperty(t *testing.T) {
	skin := Skin{Properties: []StyleProperty{
		{CtrlButton, BorderWidth, 4},
		{ControlCount + 3, BorderWidth, 9},
	}}
	var buf bytes.Buffer
	require.NoError(t, WriteStyle(&buf, skin, StyleVersionRaw))

	got, err := ReadStyle(&buf)
	require.NoError(t, err)
	assert.Equal(t, skin.Properties[:1], got.Properties)
}

func TestReadStyleText(t *testing.T) {
	src := `# comment
p 02 12 3
p BUTTON TEXT_COLOR_NORMAL 0xff0000ff
p scrollbar scroll_speed 20
p DEFAULT TEXT_SPACING -2
bogus line
p 02
p NOPE 1 1
`
	skin, err := ReadStyleText(strings.NewReader(src), "", nil)
	require.NoError(t, err)
	assert.Equal(t, []StyleProperty{
		{CtrlButton, BorderWidth, 3},
		{CtrlButton, TextColorNormal, 0xff0000ff},
		{CtrlScrollBar, ScrollSpeed, 20},
		{CtrlDefault, TextSpacing, 0xFFFFFFFE},
	}, skin.Properties)
	assert.Nil(t, skin.Font)
}

func TestReadStyleTextFont(t *testing.T) {
	dir := t.TempDir()
	loader := &stubLoader{font: monoFont(8)}

	skin, err := ReadStyleText(strings.NewReader("f 16 0 fonts/my font.ttf\np 00 13 2\n"), dir, loader)
	require.NoError(t, err)
	assert.Same(t, loader.font, skin.Font)
	assert.Equal(t, filepath.Join(dir, "fonts/my font.ttf"), loader.path)
	assert.Equal(t, 16, loader.size)
	assert.Equal(t, len(LatinCodepoints()), loader.count)
	require.Len(t, skin.Properties, 1)
}

func TestReadStyleTextCharsetFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chars.txt"), []byte("abcaé\n"), 0o644))
	loader := &stubLoader{font: monoFont(8)}

	_, err := ReadStyleText(strings.NewReader("f 12 chars.txt x.ttf\n"), dir, loader)
	require.NoError(t, err)
	// Space plus a, b, c and é.
	assert.Equal(t, 5, loader.count)
}

func TestReadStyleTextFontFailureKeepsProperties(t *testing.T) {
	loader := &stubLoader{err: errors.New("no such font")}

	skin, err := ReadStyleText(strings.NewReader("f 16 0 x.ttf\np BUTTON BORDER_WIDTH 9\n"), "", loader)
	require.ErrorIs(t, err, ErrFontLoad)
	assert.Nil(t, skin.Font)
	assert.Equal(t, []StyleProperty{{CtrlButton, BorderWidth, 9}}, skin.Properties)
}

func TestWriteStyleTextRoundTrip(t *testing.T) {
	skin := testSkin()

	var buf bytes.Buffer
	require.NoError(t, WriteStyleText(&buf, skin))
	assert.Contains(t, buf.String(), "# style: test")
	assert.Contains(t, buf.String(), "BUTTON.BORDER_WIDTH")

	got, err := ReadStyleText(&buf, "", nil)
	require.NoError(t, err)
	assert.Equal(t, skin.Properties, got.Properties)
}

func TestStyleTOMLRoundTrip(t *testing.T) {
	skin := testSkin()
	skin.Font = nil

	var buf bytes.Buffer
	require.NoError(t, WriteStyleTOML(&buf, skin))
	assert.Contains(t, buf.String(), "0x112233ff")

	got, err := ReadStyleTOML(&buf, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "test", got.Name)
	assert.Equal(t, skin.Properties, got.Properties)
}

func TestReadStyleTOMLFont(t *testing.T) {
	src := `name = "mine"

[font]
size = 18
file = "mine.ttf"

[[property]]
control = "DEFAULT"
property = "TEXT_SIZE"
value = 18
`
	loader := &stubLoader{font: monoFont(8)}
	skin, err := ReadStyleTOML(strings.NewReader(src), "/styles", loader)
	require.NoError(t, err)
	assert.Equal(t, "mine", skin.Name)
	assert.Equal(t, filepath.Join("/styles", "mine.ttf"), loader.path)
	assert.Equal(t, 18, loader.size)
	assert.Equal(t, []StyleProperty{{CtrlDefault, TextSize, 18}}, skin.Properties)
}

func TestReadStyleTOMLBadProperty(t *testing.T) {
	src := "[[property]]\ncontrol = \"BUTTON\"\nproperty = \"NOPE\"\nvalue = 1\n"
	_, err := ReadStyleTOML(strings.NewReader(src), "", nil)
	assert.Error(t, err)
}

func TestReadStyleYAML(t *testing.T) {
	src := `name: yaml
property:
  - control: BUTTON
    property: BORDER_WIDTH
    value: 3
  - control: default
    property: text_color_normal
    value: "0x112233ff"
  - control: DEFAULT
    property: TEXT_SPACING
    value: -1
`
	skin, err := ReadStyleYAML(strings.NewReader(src), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "yaml", skin.Name)
	assert.Equal(t, []StyleProperty{
		{CtrlButton, BorderWidth, 3},
		{CtrlDefault, TextColorNormal, 0x112233ff},
		{CtrlDefault, TextSpacing, 0xFFFFFFFF},
	}, skin.Properties)
}

func TestReadStyleFileFormats(t *testing.T) {
	dir := t.TempDir()
	skin := testSkin()
	skin.Font = nil

	var bin, text, tomlBuf bytes.Buffer
	require.NoError(t, WriteStyle(&bin, skin, StyleVersionCompressed))
	require.NoError(t, WriteStyleText(&text, skin))
	require.NoError(t, WriteStyleTOML(&tomlBuf, skin))

	files := map[string][]byte{
		"binary.rgs":   bin.Bytes(),
		"text.txt.rgs": text.Bytes(),
		"style.toml":   tomlBuf.Bytes(),
	}
	for name, data := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, data, 0o644))

			got, err := ReadStyleFile(path, nil)
			require.NoError(t, err)
			assert.Equal(t, skin.Properties, got.Properties)
			assert.NotEmpty(t, got.Name)
		})
	}
}

func TestReadStyleFileMissing(t *testing.T) {
	_, err := ReadStyleFile(filepath.Join(t.TempDir(), "none.rgs"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadStyleFileFontFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.txt.rgs")
	src := "f 20 0 missing.ttf\np BUTTON BORDER_WIDTH 9\np DEFAULT TEXT_SIZE 20\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	ctx := NewContext(DefaultConfig())
	ctx.SetFontLoader(&stubLoader{err: errors.New("missing")})

	err := ctx.LoadStyleFile(path)
	require.ErrorIs(t, err, ErrFontLoad)
	assert.Equal(t, uint32(9), ctx.GetStyle(CtrlButton, BorderWidth))
	assert.Equal(t, uint32(DefaultFontSize), ctx.GetStyle(CtrlDefault, TextSize))
	assert.Equal(t, uint32(1), ctx.GetStyle(CtrlDefault, TextSpacing))
	assert.Same(t, DefaultFont(), ctx.GetFont())
}

func TestSaveStyleFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.rgs")

	src := NewContext(DefaultConfig())
	src.LoadStyle(DarkSkin())
	src.SetStyle(CtrlButton, BorderWidth, 4)
	src.SetFont(testFont())
	require.NoError(t, src.SaveStyleFile(path, StyleVersionCompressed))

	dst := NewContext(DefaultConfig())
	require.NoError(t, dst.LoadStyleFile(path))
	for c := CtrlDefault; c < ControlCount; c++ {
		for p := Property(0); p < PropertyCount; p++ {
			require.Equal(t, src.GetStyle(c, p), dst.GetStyle(c, p), "%s.%s", c, PropertyName(c, p))
		}
	}
	assert.Equal(t, int32(10), dst.GetFont().BaseSize)
}
