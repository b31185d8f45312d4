package gui

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontType describes how the atlas pixels of a FontAsset were produced.
type FontType int32

const (
	FontTypeDefault FontType = iota // Anti-aliased coverage
	FontTypeBitmap                  // 1-bit coverage
	FontTypeSDF                     // Signed distance field
)

// GlyphInfo holds the metrics of one glyph.
// Offsets are measured from the top-left of the text line.
type GlyphInfo struct {
	Value    rune
	OffsetX  int32
	OffsetY  int32
	AdvanceX int32
}

// GlyphMetrics measures glyphs for the layout engine.
type GlyphMetrics interface {
	// FontSize is the pixel size the metrics were generated at.
	FontSize() float32
	// GlyphWidth is the unscaled horizontal footprint of a codepoint.
	GlyphWidth(r rune) float32
}

// FontLoader loads a font file at a pixel size restricted to a codepoint list.
// The fontatlas package provides an implementation backed by
// golang.org/x/image/font/opentype.
type FontLoader interface {
	LoadFont(path string, size int, codepoints []rune) (*FontAsset, error)
}

// FontAsset is a rasterized font: an alpha atlas plus one rectangle and one
// GlyphInfo per glyph. Recs[i] and Glyphs[i] describe the same glyph.
type FontAsset struct {
	BaseSize int32
	Type     FontType
	Glyphs   []GlyphInfo
	Recs     []Rect
	Atlas    *image.Alpha
	WhiteRec Rect

	// TextureID is assigned by the renderer once the atlas is uploaded.
	TextureID uint32

	index    map[rune]int
	fallback int
	release  func()
}

// NewFontAsset builds a FontAsset from prepared glyph data.
// atlas may be nil for fonts used only for measuring.
func NewFontAsset(baseSize int32, glyphs []GlyphInfo, recs []Rect, atlas *image.Alpha) *FontAsset {
	f := &FontAsset{
		BaseSize: baseSize,
		Glyphs:   glyphs,
		Recs:     recs,
		Atlas:    atlas,
	}
	f.buildIndex()
	return f
}

func (f *FontAsset) buildIndex() {
	f.index = make(map[rune]int, len(f.Glyphs))
	for i, g := range f.Glyphs {
		if _, dup := f.index[g.Value]; !dup {
			f.index[g.Value] = i
		}
	}
	f.fallback = 0
	if i, ok := f.index['?']; ok {
		f.fallback = i
	}
}

// GlyphCount returns the number of glyphs in the font.
func (f *FontAsset) GlyphCount() int {
	return len(f.Glyphs)
}

// GlyphIndex returns the glyph slot for a codepoint.
// Codepoints missing from the font map to '?' (or slot 0 without one).
func (f *FontAsset) GlyphIndex(r rune) int {
	if f.index == nil {
		f.buildIndex()
	}
	if i, ok := f.index[r]; ok {
		return i
	}
	return f.fallback
}

// FontSize implements GlyphMetrics.
func (f *FontAsset) FontSize() float32 {
	return float32(f.BaseSize)
}

// GlyphWidth implements GlyphMetrics: the larger of the advance and the
// glyph rectangle width.
func (f *FontAsset) GlyphWidth(r rune) float32 {
	if len(f.Glyphs) == 0 {
		return 0
	}
	i := f.GlyphIndex(r)
	adv := float32(f.Glyphs[i].AdvanceX)
	if i < len(f.Recs) && f.Recs[i].W > adv {
		return f.Recs[i].W
	}
	return adv
}

// AtlasSize returns the atlas dimensions in pixels.
func (f *FontAsset) AtlasSize() (int, int) {
	if f.Atlas == nil {
		return 0, 0
	}
	b := f.Atlas.Bounds()
	return b.Dx(), b.Dy()
}

// SetRelease registers the function that frees the font's GPU resources.
func (f *FontAsset) SetRelease(fn func()) {
	f.release = fn
}

// Release frees the glyph arrays and any GPU texture.
// It is safe to call more than once.
func (f *FontAsset) Release() {
	if f.release != nil {
		f.release()
		f.release = nil
	}
	f.TextureID = 0
	f.Glyphs = nil
	f.Recs = nil
	f.index = nil
}

var (
	defaultFont     *FontAsset
	defaultFontOnce sync.Once
)

// DefaultFont returns the process-wide fallback font, rasterized from
// basicfont.Face7x13 on first use. It is never released by style loading.
func DefaultFont() *FontAsset {
	defaultFontOnce.Do(func() {
		defaultFont = NewFontAssetFromFace(basicfont.Face7x13, DefaultFontSize, LatinCodepoints())
		styleLogger.Debug("default font ready", "glyphs", len(defaultFont.Glyphs))
	})
	return defaultFont
}

// DefaultFontSize is the base size of the built-in font.
const DefaultFontSize = 13

// LatinCodepoints returns printable ASCII plus Latin-1 supplement.
func LatinCodepoints() []rune {
	cps := make([]rune, 0, 95+96)
	for r := rune(32); r < 127; r++ {
		cps = append(cps, r)
	}
	for r := rune(160); r < 256; r++ {
		cps = append(cps, r)
	}
	return cps
}

// atlasPadding separates glyphs in the atlas to avoid sampling bleed.
const atlasPadding = 1

// NewFontAssetFromFace rasterizes the requested codepoints of a font.Face into
// a single alpha atlas. Codepoints the face cannot render are skipped.
// A small opaque block at the atlas origin backs WhiteRec.
func NewFontAssetFromFace(face font.Face, baseSize int, codepoints []rune) *FontAsset {
	type raster struct {
		r     rune
		dr    image.Rectangle
		mask  image.Image
		maskp image.Point
		adv   fixed.Int26_6
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	dot := fixed.P(0, ascent)

	glyphs := make([]raster, 0, len(codepoints))
	area := 0
	for _, r := range codepoints {
		dr, mask, maskp, adv, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, raster{r: r, dr: dr, mask: mask, maskp: maskp, adv: adv})
		area += (dr.Dx() + atlasPadding) * (dr.Dy() + atlasPadding)
	}

	side := 64
	for side*side < area*2 {
		side *= 2
	}

	// Shelf packing, first shelf starts after the white block.
	const white = 3
	recs := make([]Rect, len(glyphs))
	x, y, shelf := atlasPadding*2+white, atlasPadding, white
	for i, g := range glyphs {
		w, h := g.dr.Dx(), g.dr.Dy()
		if x+w+atlasPadding > side {
			x = atlasPadding
			y += shelf + atlasPadding
			shelf = 0
		}
		recs[i] = Rect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h)}
		x += w + atlasPadding
		if h > shelf {
			shelf = h
		}
	}
	height := 64
	for height < y+shelf+atlasPadding {
		height *= 2
	}

	atlas := image.NewAlpha(image.Rect(0, 0, side, height))
	for py := atlasPadding; py < atlasPadding+white; py++ {
		for px := atlasPadding; px < atlasPadding+white; px++ {
			atlas.Pix[py*atlas.Stride+px] = 0xFF
		}
	}

	infos := make([]GlyphInfo, len(glyphs))
	for i, g := range glyphs {
		rec := recs[i]
		if g.mask != nil && !g.dr.Empty() {
			dst := image.Rect(int(rec.X), int(rec.Y), int(rec.X+rec.W), int(rec.Y+rec.H))
			draw.Draw(atlas, dst, g.mask, g.maskp, draw.Src)
		}
		infos[i] = GlyphInfo{
			Value:    g.r,
			OffsetX:  int32(g.dr.Min.X),
			OffsetY:  int32(g.dr.Min.Y),
			AdvanceX: int32(g.adv.Round()),
		}
	}

	f := NewFontAsset(int32(baseSize), infos, recs, atlas)
	f.WhiteRec = Rect{X: atlasPadding + 1, Y: atlasPadding + 1, W: 1, H: 1}
	return f
}
