package gui

import "hash/fnv"

// ID identifies a control across frames. Edit focus, drag capture and
// per-control state are keyed by it. Zero means "no control".
type ID uint64

// HashID derives a fixed ID from a name, independent of call order.
// Pass it with WithID when a control's position in the frame may change.
func HashID(name string) ID {
	h := fnv.New64a()
	h.Write([]byte(name))
	id := ID(h.Sum64())
	if id == 0 {
		id = 1
	}
	return id
}

// GetID derives an ID from a label, the enclosing PushID scope and the
// number of IDs handed out so far this frame. It is stable as long as the
// host draws controls in the same order every frame.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++

	parentID := ID(0)
	if len(ctx.idStack) > 0 {
		parentID = ctx.idStack[len(ctx.idStack)-1]
	}

	h := fnv.New64a()
	h.Write([]byte(label))

	// parent (32 bits) | counter (16 bits) | label hash (16 bits)
	return ID(uint64(parentID)<<32 | uint64(ctx.idCounter)<<16 | h.Sum64()&0xFFFF)
}

// PushID opens a scope so repeated labels inside it get distinct IDs.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID closes the innermost PushID scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// controlID returns the caller's WithID value or a call-order ID for kind.
func (ctx *Context) controlID(kind Control, o options) ID {
	if id := GetOpt(o, OptID); id != 0 {
		return id
	}
	return ctx.GetID(kind.String())
}
