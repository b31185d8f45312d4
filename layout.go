package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Alignment places an item across the stacking direction.
type Alignment uint8

const (
	AlignStart   Alignment = iota // Left or top edge (default)
	AlignCenter                   // Centered
	AlignEnd                      // Right or bottom edge
	AlignStretch                  // Fill the cross size
)

// Layout hands out consecutive control bounds inside a region. Controls
// always take explicit rectangles; a Layout only computes them, so the
// same host code can mix stacked and hand-placed controls.
//
// Usage:
//
//	col := gui.VStack(gui.Rect{X: 10, Y: 10, W: 200, H: 300}, gui.Gap(4), gui.Align(gui.AlignStretch))
//	ctx.TextBox(col.Next(0, 28), name, nameEdit)
//	ctx.Button(col.Next(0, 24), "Save")
type Layout struct {
	Type    LayoutType
	Gap     float32 // Space between items
	Padding float32 // Inset of the region
	Align   Alignment

	inner  Rect
	cursor float32 // Main-axis position of the next item
	items  int
}

// LayoutOption configures a layout.
type LayoutOption func(*Layout)

// Gap sets spacing between items.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding insets the region on every side.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Align sets cross-axis alignment.
func Align(a Alignment) LayoutOption {
	return func(l *Layout) { l.Align = a }
}

// VStack stacks items top to bottom inside bounds.
func VStack(bounds Rect, opts ...LayoutOption) *Layout {
	return newLayout(LayoutVertical, bounds, opts)
}

// HStack stacks items left to right inside bounds.
func HStack(bounds Rect, opts ...LayoutOption) *Layout {
	return newLayout(LayoutHorizontal, bounds, opts)
}

func newLayout(t LayoutType, bounds Rect, opts []LayoutOption) *Layout {
	l := &Layout{Type: t}
	for _, opt := range opts {
		opt(l)
	}
	l.inner = bounds.Inset(l.Padding)
	if t == LayoutVertical {
		l.cursor = l.inner.Y
	} else {
		l.cursor = l.inner.X
	}
	return l
}

// next returns the main-axis start of the next item, gap included.
func (l *Layout) next() float32 {
	if l.items > 0 {
		return l.cursor + l.Gap
	}
	return l.cursor
}

// cross places an item of size along an axis starting at start with room
// length.
func (l *Layout) cross(start, room, size float32) (float32, float32) {
	switch l.Align {
	case AlignCenter:
		return start + (room-size)/2, size
	case AlignEnd:
		return start + room - size, size
	case AlignStretch:
		return start, room
	}
	return start, size
}

// Next returns bounds for an item of w by h. The cross size is ignored
// with AlignStretch. Items past the end of the region are still returned;
// nothing is clipped.
func (l *Layout) Next(w, h float32) Rect {
	var r Rect
	if l.Type == LayoutVertical {
		r.Y, r.H = l.next(), h
		r.X, r.W = l.cross(l.inner.X, l.inner.W, w)
		l.cursor = r.Y + r.H
	} else {
		r.X, r.W = l.next(), w
		r.Y, r.H = l.cross(l.inner.Y, l.inner.H, h)
		l.cursor = r.X + r.W
	}
	l.items++
	return r
}

// Space skips pixels along the stacking direction.
func (l *Layout) Space(pixels float32) {
	l.cursor += pixels
}

// Remaining returns the part of the region after the last item and gap.
func (l *Layout) Remaining() Rect {
	start := l.next()
	if l.Type == LayoutVertical {
		return Rect{X: l.inner.X, Y: start, W: l.inner.W, H: max(0, l.inner.Y+l.inner.H-start)}
	}
	return Rect{X: start, Y: l.inner.Y, W: max(0, l.inner.X+l.inner.W-start), H: l.inner.H}
}
