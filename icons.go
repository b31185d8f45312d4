package gui

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Icon table geometry: 256 icons of 16x16 one-bit pixels, 8 words each.
const (
	IconCount     = 256
	IconWords     = IconSize * IconSize / 32
	iconNameBytes = 32
	iconsVersion  = 100
)

// Icon ids with built-in artwork.
const (
	IconNone           = 0
	IconOkTick         = 112
	IconCross          = 113
	IconArrowLeft      = 114
	IconArrowRight     = 115
	IconArrowDown      = 116
	IconArrowUp        = 117
	IconArrowLeftFill  = 118
	IconArrowRightFill = 119
	IconArrowDownFill  = 120
	IconArrowUpFill    = 121
	IconCrossSmall     = 128
)

// IconData is the bit-packed pixel data of one icon. Pixel (x, y) is bit
// (y*16+x)%32 of word (y*16+x)/32.
type IconData [IconWords]uint32

// IconSet is a table of bit-packed icons with optional name ids.
type IconSet struct {
	icons [IconCount]IconData
	names [IconCount]string
}

// NewIconSet returns a table holding the built-in icons.
func NewIconSet() *IconSet {
	s := &IconSet{}
	for id, art := range builtinIconArt {
		s.icons[id] = iconFromArt(art)
		s.names[id] = builtinIconNames[id]
	}
	return s
}

func validIcon(id int) bool {
	return id >= 0 && id < IconCount
}

// Icon returns the pixel data of an icon.
func (s *IconSet) Icon(id int) IconData {
	if !validIcon(id) {
		return IconData{}
	}
	return s.icons[id]
}

// SetIcon replaces the pixel data of an icon.
func (s *IconSet) SetIcon(id int, data IconData) {
	if validIcon(id) {
		s.icons[id] = data
	}
}

// Name returns the name id stored for an icon.
func (s *IconSet) Name(id int) string {
	if !validIcon(id) {
		return ""
	}
	return s.names[id]
}

// SetName sets the name id of an icon; names are truncated to 31 bytes.
func (s *IconSet) SetName(id int, name string) {
	if !validIcon(id) {
		return
	}
	if len(name) >= iconNameBytes {
		name = name[:iconNameBytes-1]
	}
	s.names[id] = name
}

func pixelBit(x, y int) (word int, mask uint32, ok bool) {
	if x < 0 || x >= IconSize || y < 0 || y >= IconSize {
		return 0, 0, false
	}
	i := y*IconSize + x
	return i / 32, 1 << uint(i%32), true
}

// SetPixel turns on one pixel of an icon.
func (s *IconSet) SetPixel(id, x, y int) {
	if w, m, ok := pixelBit(x, y); ok && validIcon(id) {
		s.icons[id][w] |= m
	}
}

// ClearPixel turns off one pixel of an icon.
func (s *IconSet) ClearPixel(id, x, y int) {
	if w, m, ok := pixelBit(x, y); ok && validIcon(id) {
		s.icons[id][w] &^= m
	}
}

// CheckPixel reports whether one pixel of an icon is on.
func (s *IconSet) CheckPixel(id, x, y int) bool {
	w, m, ok := pixelBit(x, y)
	return ok && validIcon(id) && s.icons[id][w]&m != 0
}

// PixelRects returns one rectangle per lit pixel of an icon drawn at pos.
func (s *IconSet) PixelRects(id int, pos Vec2, scale int) []Rect {
	if !validIcon(id) {
		return nil
	}
	if scale < 1 {
		scale = 1
	}
	px := float32(scale)
	var out []Rect
	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			if s.CheckPixel(id, x, y) {
				out = append(out, Rect{X: pos.X + float32(x)*px, Y: pos.Y + float32(y)*px, W: px, H: px})
			}
		}
	}
	return out
}

type iconsHeader struct {
	Signature [4]byte
	Version   int16
	Reserved  int16
	Count     int16
	Size      int16
}

// ReadIcons decodes an "rGI " icon file. Icons beyond the table are
// skipped. With loadNames the 32-byte name ids are kept.
func ReadIcons(r io.Reader, loadNames bool) (*IconSet, error) {
	var h iconsHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("read icons header: %w", truncated(err))
	}
	if string(h.Signature[:]) != "rGI " {
		return nil, ErrBadSignature
	}
	if h.Size != IconSize {
		return nil, fmt.Errorf("%w: %d", ErrIconSize, h.Size)
	}
	count := int(h.Count)

	s := &IconSet{}
	name := make([]byte, iconNameBytes)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("read icon name %d: %w", i, truncated(err))
		}
		if loadNames && i < IconCount {
			s.names[i] = string(bytes.TrimRight(name, "\x00"))
		}
	}
	for i := 0; i < count; i++ {
		var data IconData
		if err := binary.Read(r, binary.LittleEndian, &data); err != nil {
			return nil, fmt.Errorf("read icon %d: %w", i, truncated(err))
		}
		if i < IconCount {
			s.icons[i] = data
		}
	}
	styleLogger.Debug("icons loaded", "count", count, "names", loadNames)
	return s, nil
}

// WriteIcons encodes every icon of the set in "rGI " format.
func WriteIcons(w io.Writer, s *IconSet) error {
	h := iconsHeader{Version: iconsVersion, Count: IconCount, Size: IconSize}
	copy(h.Signature[:], "rGI ")
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("write icons header: %w", err)
	}
	name := make([]byte, iconNameBytes)
	for i := range s.names {
		clear(name)
		copy(name[:iconNameBytes-1], s.names[i])
		if _, err := w.Write(name); err != nil {
			return fmt.Errorf("write icon name %d: %w", i, err)
		}
	}
	if err := binary.Write(w, binary.LittleEndian, &s.icons); err != nil {
		return fmt.Errorf("write icon data: %w", err)
	}
	return nil
}

// LoadIconsFile reads an icon file from disk.
func LoadIconsFile(path string, loadNames bool) (*IconSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icons: %w", err)
	}
	defer f.Close()
	return ReadIcons(f, loadNames)
}

// truncated maps short reads onto ErrTruncated.
func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return err
}

func iconFromArt(art [IconSize]string) IconData {
	var d IconData
	for y, row := range art {
		for x := 0; x < len(row) && x < IconSize; x++ {
			if row[x] == '#' {
				w, m, _ := pixelBit(x, y)
				d[w] |= m
			}
		}
	}
	return d
}

var builtinIconNames = map[int]string{
	IconOkTick:         "OK_TICK",
	IconCross:          "CROSS",
	IconArrowLeft:      "ARROW_LEFT",
	IconArrowRight:     "ARROW_RIGHT",
	IconArrowDown:      "ARROW_DOWN",
	IconArrowUp:        "ARROW_UP",
	IconArrowLeftFill:  "ARROW_LEFT_FILL",
	IconArrowRightFill: "ARROW_RIGHT_FILL",
	IconArrowDownFill:  "ARROW_DOWN_FILL",
	IconArrowUpFill:    "ARROW_UP_FILL",
	IconCrossSmall:     "CROSS_SMALL",
}

var builtinIconArt = map[int][IconSize]string{
	IconOkTick: {
		"................",
		"................",
		"................",
		"............##..",
		"...........###..",
		"..........###...",
		".........###....",
		"..##....###.....",
		"..###..###......",
		"...######.......",
		"....####........",
		".....##.........",
		"................",
		"................",
		"................",
		"................",
	},
	IconCross: {
		"................",
		"................",
		"..##........##..",
		"..###......###..",
		"...###....###...",
		"....###..###....",
		".....######.....",
		"......####......",
		"......####......",
		".....######.....",
		"....###..###....",
		"...###....###...",
		"..###......###..",
		"..##........##..",
		"................",
		"................",
	},
	IconArrowLeft: {
		"................",
		"................",
		"................",
		"................",
		"......#.........",
		".....##.........",
		"....##..........",
		"...##########...",
		"...##########...",
		"....##..........",
		".....##.........",
		"......#.........",
		"................",
		"................",
		"................",
		"................",
	},
	IconArrowRight: {
		"................",
		"................",
		"................",
		"................",
		".........#......",
		".........##.....",
		"..........##....",
		"...##########...",
		"...##########...",
		"..........##....",
		".........##.....",
		".........#......",
		"................",
		"................",
		"................",
		"................",
	},
	IconArrowDown: {
		"................",
		"................",
		"................",
		".......##.......",
		".......##.......",
		".......##.......",
		".......##.......",
		".......##.......",
		".......##.......",
		"....#..##..#....",
		".....#.##.#.....",
		"......####......",
		".......##.......",
		"................",
		"................",
		"................",
	},
	IconArrowUp: {
		"................",
		"................",
		"................",
		".......##.......",
		"......####......",
		".....#.##.#.....",
		"....#..##..#....",
		".......##.......",
		".......##.......",
		".......##.......",
		".......##.......",
		".......##.......",
		".......##.......",
		"................",
		"................",
		"................",
	},
	IconArrowLeftFill: {
		"................",
		"................",
		"................",
		"................",
		"........#.......",
		".......##.......",
		"......###.......",
		".....####.......",
		".....####.......",
		"......###.......",
		".......##.......",
		"........#.......",
		"................",
		"................",
		"................",
		"................",
	},
	IconArrowRightFill: {
		"................",
		"................",
		"................",
		"................",
		".......#........",
		".......##.......",
		".......###......",
		".......####.....",
		".......####.....",
		".......###......",
		".......##.......",
		".......#........",
		"................",
		"................",
		"................",
		"................",
	},
	IconArrowDownFill: {
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
		"....########....",
		".....######.....",
		"......####......",
		".......##.......",
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
	},
	IconArrowUpFill: {
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
		".......##.......",
		"......####......",
		".....######.....",
		"....########....",
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
	},
	IconCrossSmall: {
		"................",
		"................",
		"................",
		"................",
		"................",
		".....#....#.....",
		"......#..#......",
		".......##.......",
		".......##.......",
		"......#..#......",
		".....#....#.....",
		"................",
		"................",
		"................",
		"................",
		"................",
	},
}
