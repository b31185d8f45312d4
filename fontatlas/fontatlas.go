// Package fontatlas rasterizes TrueType and OpenType fonts into gui font
// assets.
package fontatlas

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	gui "github.com/go-theft-auto/rgui"
)

// Parse rasterizes the given codepoints of a font file's bytes at size
// pixels. A nil codepoint list means Latin-1.
func Parse(data []byte, size int, codepoints []rune) (*gui.FontAsset, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return rasterize(f, size, codepoints, font.HintingFull)
}

// Load reads and rasterizes a font file. See Parse.
func Load(path string, size int, codepoints []rune) (*gui.FontAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(data, size, codepoints)
}

func rasterize(f *opentype.Font, size int, codepoints []rune, hinting font.Hinting) (*gui.FontAsset, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %d must be positive", size)
	}
	if len(codepoints) == 0 {
		codepoints = gui.LatinCodepoints()
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	defer face.Close()

	asset := gui.NewFontAssetFromFace(face, size, codepoints)
	if asset.GlyphCount() == 0 {
		return nil, fmt.Errorf("font has none of the %d requested codepoints", len(codepoints))
	}
	return asset, nil
}

// Loader implements gui.FontLoader. Parsed font files are kept so a style
// that is reloaded at another size does not read the file again; every
// LoadFont call returns a fresh asset the caller owns.
type Loader struct {
	Hinting font.Hinting

	mu     sync.Mutex
	parsed map[string]*opentype.Font
}

var _ gui.FontLoader = (*Loader)(nil)

// NewLoader creates a Loader with full hinting.
func NewLoader() *Loader {
	return &Loader{
		Hinting: font.HintingFull,
		parsed:  make(map[string]*opentype.Font),
	}
}

// LoadFont implements gui.FontLoader.
func (l *Loader) LoadFont(path string, size int, codepoints []rune) (*gui.FontAsset, error) {
	f, err := l.parse(path)
	if err != nil {
		return nil, err
	}
	asset, err := rasterize(f, size, codepoints, l.Hinting)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return asset, nil
}

func (l *Loader) parse(path string) (*opentype.Font, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.parsed[path]; ok {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	if l.parsed == nil {
		l.parsed = make(map[string]*opentype.Font)
	}
	l.parsed[path] = f
	return f, nil
}

// Forget drops every parsed font file.
func (l *Loader) Forget() {
	l.mu.Lock()
	clear(l.parsed)
	l.mu.Unlock()
}
