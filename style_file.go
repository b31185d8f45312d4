package gui

import (
	"bufio"
	"bytes"
	"compress/flate"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Binary style versions.
const (
	StyleVersionRaw        = 200 // Font arrays stored as-is
	StyleVersionCompressed = 400 // Font arrays stored as size-prefixed DEFLATE blocks
)

const (
	styleSignature   = "rGS "
	imageFormatAlpha = 1
	maxStyleProps    = int(ControlCount) * PropertyCount
	maxFontGlyphs    = 1 << 16
	maxAtlasSide     = 1 << 14

	// Largest raw font block: header, full atlas, glyph and rectangle tables.
	maxFontBlockSize = 64 + maxAtlasSide*maxAtlasSide + maxFontGlyphs*64
)

// styleHeader is the fixed prefix of a binary style file.
type styleHeader struct {
	Signature [4]byte
	Version   int16
	Reserved  int16
	Count     int32
}

type styleEntry struct {
	Control  int16
	Property int16
	Value    uint32
}

type fontHeader struct {
	BaseSize    int32
	GlyphCount  int32
	Type        int32
	WhiteRec    [4]float32
	ImageWidth  int32
	ImageHeight int32
	ImageFormat int32
}

type glyphEntry struct {
	Value    int32
	OffsetX  int32
	OffsetY  int32
	AdvanceX int32
}

// ReadStyle decodes a binary style. The property list is applied as-is by
// Context.LoadStyle; an embedded font becomes Skin.Font.
//
// A corrupt font block is skipped with a warning and the properties are
// still returned.
func ReadStyle(r io.Reader) (Skin, error) {
	var h styleHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Skin{}, fmt.Errorf("read style header: %w", truncated(err))
	}
	if string(h.Signature[:]) != styleSignature {
		return Skin{}, ErrBadSignature
	}
	if h.Version != StyleVersionRaw && h.Version != StyleVersionCompressed {
		return Skin{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.Count < 0 || int(h.Count) > maxStyleProps {
		return Skin{}, fmt.Errorf("style property count %d out of range", h.Count)
	}

	skin := Skin{Properties: make([]StyleProperty, 0, h.Count)}
	for i := 0; i < int(h.Count); i++ {
		var e styleEntry
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			return Skin{}, fmt.Errorf("read style property %d: %w", i, truncated(err))
		}
		if e.Control < 0 || int(e.Control) >= int(ControlCount) || e.Property < 0 || int(e.Property) >= PropertyCount {
			styleLogger.Warn("skipping style property out of range", "control", e.Control, "property", e.Property)
			continue
		}
		skin.Properties = append(skin.Properties, StyleProperty{
			Control:  Control(e.Control),
			Property: Property(e.Property),
			Value:    e.Value,
		})
	}

	var fontSize int32
	if err := binary.Read(r, binary.LittleEndian, &fontSize); err != nil {
		if errors.Is(err, io.EOF) {
			return skin, nil
		}
		return Skin{}, fmt.Errorf("read font block size: %w", truncated(err))
	}
	if fontSize <= 0 {
		return skin, nil
	}
	if fontSize > maxFontBlockSize {
		styleLogger.Warn("style font block too large, skipping", "size", fontSize)
		return skin, nil
	}
	block, err := readExact(r, int(fontSize))
	if err != nil {
		styleLogger.Warn("style font block truncated, skipping", "err", err)
		return skin, nil
	}
	f, err := decodeFontBlock(bytes.NewReader(block), h.Version)
	if err != nil {
		styleLogger.Warn("style font block corrupt, skipping", "err", err)
		return skin, nil
	}
	skin.Font = f
	return skin, nil
}

func decodeFontBlock(r io.Reader, version int16) (*FontAsset, error) {
	var fh fontHeader
	if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
		return nil, fmt.Errorf("font header: %w", truncated(err))
	}
	if fh.GlyphCount <= 0 || fh.GlyphCount > maxFontGlyphs {
		return nil, fmt.Errorf("font glyph count %d out of range", fh.GlyphCount)
	}
	if fh.ImageWidth <= 0 || fh.ImageHeight <= 0 || fh.ImageWidth > maxAtlasSide || fh.ImageHeight > maxAtlasSide {
		return nil, fmt.Errorf("font image %dx%d out of range", fh.ImageWidth, fh.ImageHeight)
	}
	if fh.ImageFormat != imageFormatAlpha {
		return nil, fmt.Errorf("font image format %d not supported", fh.ImageFormat)
	}

	count := int(fh.GlyphCount)
	pixels, err := readFontArray(r, version, int(fh.ImageWidth*fh.ImageHeight))
	if err != nil {
		return nil, fmt.Errorf("font image: %w", err)
	}
	recData, err := readFontArray(r, version, count*16)
	if err != nil {
		return nil, fmt.Errorf("font recs: %w", err)
	}
	glyphData, err := readFontArray(r, version, count*16)
	if err != nil {
		return nil, fmt.Errorf("font glyphs: %w", err)
	}

	recs := make([]Rect, count)
	if err := binary.Read(bytes.NewReader(recData), binary.LittleEndian, recs); err != nil {
		return nil, fmt.Errorf("font recs: %w", truncated(err))
	}
	entries := make([]glyphEntry, count)
	if err := binary.Read(bytes.NewReader(glyphData), binary.LittleEndian, entries); err != nil {
		return nil, fmt.Errorf("font glyphs: %w", truncated(err))
	}
	glyphs := make([]GlyphInfo, count)
	for i, e := range entries {
		glyphs[i] = GlyphInfo{Value: rune(e.Value), OffsetX: e.OffsetX, OffsetY: e.OffsetY, AdvanceX: e.AdvanceX}
	}

	atlas := image.NewAlpha(image.Rect(0, 0, int(fh.ImageWidth), int(fh.ImageHeight)))
	copy(atlas.Pix, pixels)

	f := NewFontAsset(fh.BaseSize, glyphs, recs, atlas)
	f.Type = FontType(fh.Type)
	f.WhiteRec = Rect{X: fh.WhiteRec[0], Y: fh.WhiteRec[1], W: fh.WhiteRec[2], H: fh.WhiteRec[3]}
	return f, nil
}

// readFontArray reads size bytes, raw for version 200 or as a
// (compressed size, raw size, DEFLATE data) block for version 400.
func readFontArray(r io.Reader, version int16, size int) ([]byte, error) {
	if version == StyleVersionRaw {
		return readExact(r, size)
	}

	var sizes [2]int32
	if err := binary.Read(r, binary.LittleEndian, &sizes); err != nil {
		return nil, truncated(err)
	}
	if int(sizes[1]) != size || sizes[0] < 0 {
		return nil, fmt.Errorf("block size %d, want %d", sizes[1], size)
	}
	zr := flate.NewReader(io.LimitReader(r, int64(sizes[0])))
	defer zr.Close()
	out, err := readExact(zr, size)
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	return out, nil
}

// readExact reads size bytes from r. The buffer grows with the data
// actually read, not with size.
func readExact(r io.Reader, size int) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return nil, truncated(err)
	}
	if len(out) != size {
		return nil, ErrTruncated
	}
	return out, nil
}

// WriteStyle encodes a skin in binary form. version selects raw (200) or
// DEFLATE-compressed (400) font arrays.
func WriteStyle(w io.Writer, skin Skin, version int) error {
	if version != StyleVersionRaw && version != StyleVersionCompressed {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	h := styleHeader{Version: int16(version), Count: int32(len(skin.Properties))}
	copy(h.Signature[:], styleSignature)

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("write style header: %w", err)
	}
	for _, p := range skin.Properties {
		e := styleEntry{Control: int16(p.Control), Property: int16(p.Property), Value: p.Value}
		if err := binary.Write(bw, binary.LittleEndian, &e); err != nil {
			return fmt.Errorf("write style property: %w", err)
		}
	}

	var block []byte
	if f := skin.Font; f != nil && f.Atlas != nil && len(f.Glyphs) > 0 {
		var err error
		if block, err = encodeFontBlock(f, version); err != nil {
			return err
		}
	}
	if err := binary.Write(bw, binary.LittleEndian, int32(len(block))); err != nil {
		return fmt.Errorf("write font block size: %w", err)
	}
	if _, err := bw.Write(block); err != nil {
		return fmt.Errorf("write font block: %w", err)
	}
	return bw.Flush()
}

func encodeFontBlock(f *FontAsset, version int) ([]byte, error) {
	w, h := f.AtlasSize()
	fh := fontHeader{
		BaseSize:    f.BaseSize,
		GlyphCount:  int32(len(f.Glyphs)),
		Type:        int32(f.Type),
		WhiteRec:    [4]float32{f.WhiteRec.X, f.WhiteRec.Y, f.WhiteRec.W, f.WhiteRec.H},
		ImageWidth:  int32(w),
		ImageHeight: int32(h),
		ImageFormat: imageFormatAlpha,
	}

	pixels := make([]byte, 0, w*h)
	for y := 0; y < h; y++ {
		row := f.Atlas.Pix[y*f.Atlas.Stride:]
		pixels = append(pixels, row[:w]...)
	}
	var recs, glyphs bytes.Buffer
	recList := make([]Rect, len(f.Glyphs))
	copy(recList, f.Recs)
	if err := binary.Write(&recs, binary.LittleEndian, recList); err != nil {
		return nil, fmt.Errorf("encode font recs: %w", err)
	}
	for _, g := range f.Glyphs {
		e := glyphEntry{Value: int32(g.Value), OffsetX: g.OffsetX, OffsetY: g.OffsetY, AdvanceX: g.AdvanceX}
		if err := binary.Write(&glyphs, binary.LittleEndian, &e); err != nil {
			return nil, fmt.Errorf("encode font glyphs: %w", err)
		}
	}

	var out bytes.Buffer
	if err := binary.Write(&out, binary.LittleEndian, &fh); err != nil {
		return nil, fmt.Errorf("encode font header: %w", err)
	}
	for _, data := range [][]byte{pixels, recs.Bytes(), glyphs.Bytes()} {
		if err := writeFontArray(&out, version, data); err != nil {
			return nil, err
		}
	}
	return out.Bytes(), nil
}

func writeFontArray(out *bytes.Buffer, version int, data []byte) error {
	if version == StyleVersionRaw {
		out.Write(data)
		return nil
	}
	var z bytes.Buffer
	zw, err := flate.NewWriter(&z, flate.BestCompression)
	if err != nil {
		return fmt.Errorf("deflate: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("deflate: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("deflate: %w", err)
	}
	sizes := [2]int32{int32(z.Len()), int32(len(data))}
	if err := binary.Write(out, binary.LittleEndian, &sizes); err != nil {
		return err
	}
	out.Write(z.Bytes())
	return nil
}

// ReadStyleFile loads a style from disk. The format follows the extension
// (.toml, .yaml/.yml) or, otherwise, the file signature: binary "rGS " or
// the line-based text form. Fonts named by text, TOML and YAML styles are
// loaded through loader, relative to the style file's directory.
//
// When only the font fails, the skin is returned together with an error
// wrapping ErrFontLoad.
func ReadStyleFile(path string, loader FontLoader) (Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Skin{}, fmt.Errorf("read style: %w", err)
	}
	dir := filepath.Dir(path)
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var skin Skin
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		skin, err = ReadStyleTOML(bytes.NewReader(data), dir, loader)
	case ".yaml", ".yml":
		skin, err = ReadStyleYAML(bytes.NewReader(data), dir, loader)
	default:
		if bytes.HasPrefix(data, []byte(styleSignature)) {
			skin, err = ReadStyle(bytes.NewReader(data))
		} else {
			skin, err = ReadStyleText(bytes.NewReader(data), dir, loader)
		}
	}
	if skin.Name == "" {
		skin.Name = name
	}
	if err != nil {
		return skin, fmt.Errorf("style %s: %w", path, err)
	}
	styleLogger.Debug("style file read", "path", path, "properties", len(skin.Properties), "font", skin.Font != nil)
	return skin, nil
}

// SaveStyleFile writes the context's current style, as differences from
// the default skin plus the current font, to a binary style file.
func (ctx *Context) SaveStyleFile(path string, version int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	if err := WriteStyle(f, ctx.ExportSkin(""), version); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportSkin captures the current table as a skin. Replaying it over the
// default skin reproduces every slot. The built-in font is not exported.
func (ctx *Context) ExportSkin(name string) Skin {
	skin := Skin{Name: name, Properties: ctx.style.Diff()}
	if ctx.font != ctx.defaultFont {
		skin.Font = ctx.font
	}
	return skin
}
