package gui

// stateEntry wraps a value with the last frame it was touched.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore keeps per-control state between frames, keyed by ID. Entries
// not touched during the previous frame are dropped by Sweep, so state of
// controls the host stops drawing goes away on its own.
//
// Usage:
//
//	store := gui.NewFrameStore[myState]()
//	// once per frame
//	store.Sweep(ctx.FrameCount)
//	// in the control
//	st := store.Get(id, myState{})
type FrameStore[T any] struct {
	entries map[ID]*stateEntry[T]
	frame   uint64
}

// NewFrameStore creates an empty store.
func NewFrameStore[T any]() *FrameStore[T] {
	return &FrameStore[T]{entries: make(map[ID]*stateEntry[T])}
}

// Get returns the state for id, creating it from def when missing.
// The returned pointer stays valid until the entry is swept or deleted.
func (s *FrameStore[T]) Get(id ID, def T) *T {
	e, ok := s.entries[id]
	if !ok {
		e = &stateEntry[T]{value: def}
		s.entries[id] = e
	}
	e.lastFrame = s.frame
	return &e.value
}

// Lookup returns the state for id without creating or touching it.
func (s *FrameStore[T]) Lookup(id ID) (*T, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return &e.value, true
}

// Set stores a value for id.
func (s *FrameStore[T]) Set(id ID, value T) {
	*s.Get(id, value) = value
}

// Delete drops the state for id.
func (s *FrameStore[T]) Delete(id ID) {
	delete(s.entries, id)
}

// Sweep starts frame and removes entries not touched since the frame
// before it.
func (s *FrameStore[T]) Sweep(frame uint64) {
	s.frame = frame
	if frame < 2 {
		return
	}
	for id, e := range s.entries {
		if e.lastFrame < frame-1 {
			delete(s.entries, id)
		}
	}
}

// Len returns the number of live entries.
func (s *FrameStore[T]) Len() int { return len(s.entries) }

// Clear drops every entry.
func (s *FrameStore[T]) Clear() {
	clear(s.entries)
}
