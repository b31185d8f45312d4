package gui

import (
	"sync"

	"github.com/chewxy/math32"
)

// DrawSink receives the primitives controls emit. Colors are packed
// 0xAABBGGRR values; fully transparent draws may be dropped.
type DrawSink interface {
	// DrawRect fills a rectangle in device pixels.
	DrawRect(r Rect, color uint32)
	// DrawRectGradient fills a rectangle with one color per corner.
	DrawRectGradient(r Rect, topLeft, bottomLeft, topRight, bottomRight uint32)
	// DrawGlyph draws one codepoint of font with its cell's top-left at pos,
	// scaled to size pixels.
	DrawGlyph(font *FontAsset, cp rune, pos Vec2, size float32, color uint32)
}

// drawListPool reuses DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList is the vertex-buffer DrawSink used by GPU renderers.
// Primitives are batched by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // First vertex of the open command
	idxCmdOffset uint32 // First index of the open command
}

var _ DrawSink = (*DrawList)(nil)

// Clear resets the list for a new frame, keeping capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect clips subsequent primitives to r.
func (dl *DrawList) PushClipRect(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{r.X, r.Y, r.X + r.W, r.Y + r.H}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture switches the texture used by subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID && len(dl.CmdBuffer) > 0 {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw closes the open command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addQuad appends four vertices and the two triangles joining them.
// A command that would overflow 16-bit indices is split first.
func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 || uint32(len(dl.VtxBuffer))-dl.cmdOffset > 0xFFFF-4 {
		dl.splitDraw()
	}
	idx := uint16(uint32(len(dl.VtxBuffer)) - dl.cmdOffset)
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

func (dl *DrawList) untextured() {
	if dl.textureID != 0 || len(dl.CmdBuffer) == 0 {
		dl.SetTexture(0)
	}
}

// DrawRect fills a rectangle.
func (dl *DrawList) DrawRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	dl.untextured()
	dl.addQuad(
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, Color: color},
	)
}

// DrawRectGradient fills a rectangle with per-corner colors.
func (dl *DrawList) DrawRectGradient(r Rect, topLeft, bottomLeft, topRight, bottomRight uint32) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	dl.untextured()
	dl.addQuad(
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: topLeft},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, Color: topRight},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, Color: bottomRight},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, Color: bottomLeft},
	)
}

// DrawRectLines draws the outline of a rectangle with the given thickness.
func (dl *DrawList) DrawRectLines(r Rect, thickness float32, color uint32) {
	dl.DrawRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
	dl.DrawRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, color)
	dl.DrawRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
	dl.DrawRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
}

// DrawLine draws a segment as a quad of the given thickness.
func (dl *DrawList) DrawLine(from, to Vec2, thickness float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	inv := float32(1)
	if l := math32.Sqrt(dx*dx + dy*dy); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.untextured()
	dl.addQuad(
		Vertex{Pos: [2]float32{from.X + nx, from.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{to.X + nx, to.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{to.X - nx, to.Y - ny}, Color: color},
		Vertex{Pos: [2]float32{from.X - nx, from.Y - ny}, Color: color},
	)
}

// DrawGlyph draws one glyph from the font atlas. Fonts without an uploaded
// texture are skipped.
func (dl *DrawList) DrawGlyph(font *FontAsset, cp rune, pos Vec2, size float32, color uint32) {
	if font == nil || font.TextureID == 0 || color&0xFF000000 == 0 || len(font.Glyphs) == 0 {
		return
	}
	aw, ah := font.AtlasSize()
	if aw == 0 || ah == 0 {
		return
	}
	i := font.GlyphIndex(cp)
	if i >= len(font.Recs) {
		return
	}
	rec := font.Recs[i]
	g := font.Glyphs[i]
	scale := size / font.FontSize()

	x0 := pos.X + float32(g.OffsetX)*scale
	y0 := pos.Y + float32(g.OffsetY)*scale
	x1 := x0 + rec.W*scale
	y1 := y0 + rec.H*scale
	u0, v0 := rec.X/float32(aw), rec.Y/float32(ah)
	u1, v1 := (rec.X+rec.W)/float32(aw), (rec.Y+rec.H)/float32(ah)

	dl.SetTexture(font.TextureID)
	dl.addQuad(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
}

// Finalize closes the open command and drops empty ones. GUI.End calls it
// once before Render.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
