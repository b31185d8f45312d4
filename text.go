package gui

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Icon geometry used when a line starts with an icon marker.
const (
	IconSize        = 16
	IconTextPadding = 4
)

// TextStyle carries the text properties a layout uses.
type TextStyle struct {
	Size        float32
	Spacing     float32
	LineSpacing float32
	Align       TextAlign
	VAlign      TextVAlign
	Wrap        WrapMode
	IconScale   int

	// MaxLines bounds how many '\n'-separated lines are laid out; further
	// lines are dropped. Zero means DefaultMaxTextLines.
	MaxLines int
	// Ellipsis replaces the tail of an overflowing WrapNone line.
	// Empty means "...".
	Ellipsis string
}

// DefaultMaxTextLines is the line limit used when TextStyle.MaxLines is zero.
const DefaultMaxTextLines = 128

// GlyphPlacement is one laid-out codepoint.
type GlyphPlacement struct {
	Codepoint rune
	Pos       Vec2    // Top-left of the glyph cell
	Width     float32 // Scaled glyph width, without spacing
	Line      int
	Drawn     bool // False for whitespace and clipped glyphs
	Ellipsis  bool // Part of an overflow ellipsis
}

// IconPlacement is an icon found in a line's leading #NNN# marker.
type IconPlacement struct {
	ID    int
	Pos   Vec2
	Scale int
	Line  int
}

// TextLayout is the result of laying out a block of text.
type TextLayout struct {
	Glyphs   []GlyphPlacement
	Icons    []IconPlacement
	Lines    int
	Overflow bool
	Scale    float32
}

// DrawnGlyphs returns only the placements that produce ink.
func (l *TextLayout) DrawnGlyphs() []GlyphPlacement {
	out := make([]GlyphPlacement, 0, len(l.Glyphs))
	for _, g := range l.Glyphs {
		if g.Drawn {
			out = append(out, g)
		}
	}
	return out
}

// SplitLines splits text on '\n', keeping at most max lines.
// A trailing '\r' is removed from each line.
func SplitLines(text string, max int) []string {
	if max <= 0 {
		max = DefaultMaxTextLines
	}
	lines := strings.SplitN(text, "\n", max+1)
	if len(lines) > max {
		lines = lines[:max]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ParseIconMarker strips a leading "#NNN#" marker (one to three digits).
// It returns the icon id, or -1 and the unchanged text if there is none.
func ParseIconMarker(text string) (int, string) {
	if len(text) < 3 || text[0] != '#' {
		return -1, text
	}
	id, pos := 0, 1
	for pos < 4 && pos < len(text) && text[pos] >= '0' && text[pos] <= '9' {
		id = id*10 + int(text[pos]-'0')
		pos++
	}
	if pos == 1 || pos >= len(text) || text[pos] != '#' {
		return -1, text
	}
	return id, text[pos+1:]
}

// IconText prefixes text with the marker for an icon id.
func IconText(iconID int, text string) string {
	return fmt.Sprintf("#%03d#%s", iconID, text)
}

func (ts TextStyle) scale(m GlyphMetrics) float32 {
	base := m.FontSize()
	if base <= 0 {
		return 1
	}
	return ts.Size / base
}

func (ts TextStyle) iconPixels() float32 {
	s := ts.IconScale
	if s < 1 {
		s = 1
	}
	return float32(IconSize * s)
}

func (ts TextStyle) ellipsis() string {
	if ts.Ellipsis == "" {
		return "..."
	}
	return ts.Ellipsis
}

// runWidth sums scaled glyph widths plus spacing over s.
// With stopAtSpace it stops at the first ' '.
func runWidth(m GlyphMetrics, s string, scale, spacing float32, stopAtSpace bool) float32 {
	buf := []byte(s)
	w := float32(0)
	for i := 0; i < len(buf); {
		cp, size := DecodeNext(buf, i)
		if cp == '\n' || (stopAtSpace && cp == ' ') {
			break
		}
		w += m.GlyphWidth(cp)*scale + spacing
		i += size
	}
	return w
}

// TextWidth measures the first line of text, including a leading icon.
func TextWidth(m GlyphMetrics, text string, ts TextStyle) float32 {
	if text == "" {
		return 0
	}
	icon, rest := ParseIconMarker(text)
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	w := runWidth(m, rest, ts.scale(m), ts.Spacing, false)
	if icon >= 0 {
		w += ts.iconPixels() + IconTextPadding
	}
	return w
}

// wrapState tracks the char-mode fallback used by word wrapping when a
// single word is wider than the box.
type wrapState int

const (
	wrapByWord      wrapState = iota // Break before words that do not fit
	wrapCharLatched                  // Current word is too long: break anywhere until the next space
)

// LayoutText positions every codepoint of text inside bounds.
// Widths use the ratio ts.Size/FontSize, computed once per call.
// WrapNone lines that overflow are cut with a single ellipsis; wrapped lines
// are clipped (not scrolled) at the bottom of bounds.
func LayoutText(m GlyphMetrics, text string, bounds Rect, ts TextStyle) TextLayout {
	layout := TextLayout{Scale: ts.scale(m)}
	if text == "" {
		return layout
	}
	scale := layout.Scale

	lines := SplitLines(text, ts.MaxLines)
	layout.Lines = len(lines)
	lineCount := float32(len(lines))
	totalHeight := lineCount*ts.Size + (lineCount-1)*ts.Size/2
	pixelOffset := float32(int(bounds.H) % 2)

	ellipsis := ts.ellipsis()
	ellipsisWidth := math32.Floor(runWidth(m, ellipsis, scale, ts.Spacing, false))
	iconPx := ts.iconPixels()

	posOffsetY := float32(0)
	for li, raw := range lines {
		iconID, line := ParseIconMarker(raw)

		lineWidth := runWidth(m, line, scale, ts.Spacing, false)
		if iconID >= 0 {
			lineWidth += iconPx
			if line != "" {
				lineWidth += IconTextPadding
			}
		}

		pos := Vec2{X: bounds.X, Y: bounds.Y}
		switch ts.Align {
		case TextAlignCenter:
			pos.X = bounds.X + bounds.W/2 - lineWidth/2
		case TextAlignRight:
			pos.X = bounds.X + bounds.W - lineWidth
		}
		if lineWidth > bounds.W && line != "" {
			pos.X = bounds.X
		}

		valign := ts.VAlign
		if ts.Wrap != WrapNone {
			valign = TextAlignTop
		}
		switch valign {
		case TextAlignTop:
			pos.Y = bounds.Y + posOffsetY
		case TextAlignMiddle:
			pos.Y = bounds.Y + posOffsetY + bounds.H/2 - totalHeight/2 + pixelOffset
		case TextAlignBottom:
			pos.Y = bounds.Y + posOffsetY + bounds.H - totalHeight + pixelOffset
		}
		pos.X = math32.Floor(pos.X)
		pos.Y = math32.Floor(pos.Y)

		widthOffset := float32(0)
		if iconID >= 0 {
			layout.Icons = append(layout.Icons, IconPlacement{
				ID:    iconID,
				Pos:   Vec2{X: pos.X, Y: math32.Floor(pos.Y + ts.Size/2 - iconPx/2)},
				Scale: int(iconPx) / IconSize,
				Line:  li,
			})
			pos.X += iconPx + IconTextPadding
			widthOffset = iconPx + IconTextPadding
		}

		avail := bounds.W - widthOffset
		buf := []byte(line)
		offsetX, offsetY := float32(0), float32(0)
		overflow := false
		state := wrapByWord
		wordStart, wordWidth := 0, runWidth(m, line, scale, ts.Spacing, true)

		for c := 0; c < len(buf); {
			cp, size := DecodeNext(buf, c)
			gw := m.GlyphWidth(cp) * scale

			switch ts.Wrap {
			case WrapChar:
				if offsetX+gw > avail {
					offsetX = 0
					offsetY += ts.LineSpacing
				}
			case WrapWord:
				if cp == ' ' {
					wordStart = c + size
					wordWidth = runWidth(m, line[wordStart:], scale, ts.Spacing, true)
					state = wrapByWord
				}
				if state == wrapByWord && wordWidth > avail {
					state = wrapCharLatched
				}
				if state == wrapCharLatched {
					if offsetX+gw > avail {
						offsetX = 0
						offsetY += ts.LineSpacing
					}
				} else if offsetX+runWidth(m, line[c:], scale, ts.Spacing, true) > avail {
					offsetX = 0
					offsetY += ts.LineSpacing
				}
			}

			g := GlyphPlacement{
				Codepoint: cp,
				Pos:       Vec2{X: pos.X + offsetX, Y: pos.Y + offsetY},
				Width:     gw,
				Line:      li,
			}

			if cp != ' ' && cp != '\t' {
				switch ts.Wrap {
				case WrapNone:
					switch {
					case lineWidth <= bounds.W:
						g.Drawn = true
					case offsetX <= bounds.W-gw-widthOffset-ellipsisWidth:
						g.Drawn = true
					case !overflow:
						overflow = true
						layout.Overflow = true
						layout.Glyphs = append(layout.Glyphs, ellipsisGlyphs(m, ellipsis, g.Pos, scale, ts.Spacing, li)...)
					}
				default:
					g.Drawn = pos.Y+offsetY <= bounds.Y+bounds.H-ts.Size
				}
			}
			layout.Glyphs = append(layout.Glyphs, g)

			offsetX += gw + ts.Spacing
			c += size
		}

		if ts.Wrap == WrapNone {
			posOffsetY += ts.LineSpacing
		} else {
			posOffsetY += offsetY + ts.LineSpacing
		}
	}

	return layout
}

func ellipsisGlyphs(m GlyphMetrics, ellipsis string, at Vec2, scale, spacing float32, line int) []GlyphPlacement {
	buf := []byte(ellipsis)
	out := make([]GlyphPlacement, 0, len(buf))
	x := at.X
	for i := 0; i < len(buf); {
		cp, size := DecodeNext(buf, i)
		gw := m.GlyphWidth(cp) * scale
		out = append(out, GlyphPlacement{
			Codepoint: cp,
			Pos:       Vec2{X: x, Y: at.Y},
			Width:     gw,
			Line:      line,
			Drawn:     true,
			Ellipsis:  true,
		})
		x += gw + spacing
		i += size
	}
	return out
}
