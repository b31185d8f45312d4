package gui

// RepeatPhase is the auto-repeat state of the held editing keys.
type RepeatPhase int

const (
	// RepeatIdle: none of the repeat keys is held. Both counters are zero.
	RepeatIdle RepeatPhase = iota
	// RepeatCooldown: a repeat key is held but for fewer than
	// Config.RepeatCooldown frames. Only fresh presses act.
	RepeatCooldown
	// RepeatActive: a repeat key has been held long enough. Held keys act
	// whenever the delay counter is a multiple of Config.RepeatDelay.
	RepeatActive
)

func (p RepeatPhase) String() string {
	switch p {
	case RepeatIdle:
		return "idle"
	case RepeatCooldown:
		return "cooldown"
	case RepeatActive:
		return "active"
	}
	return "unknown"
}

// repeatKeys are the keys whose hold time drives auto-repeat.
var repeatKeys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyBackspace, KeyDelete}

// EditSession is the single text-edit focus shared by every text control:
// which control owns the keyboard, the cursor byte offset in its buffer and
// the frame counters behind key auto-repeat.
//
// Timing is frame based. Repeat speed follows the host's frame rate.
type EditSession struct {
	owner  ID
	cursor int

	cooldown  int // Frames a repeat key has been held
	delay     int // Gated repeat attempts since the key was first held
	phase     RepeatPhase
	lastTick  uint64
	tickedAny bool
}

// Owner returns the control holding edit focus, or 0.
func (e *EditSession) Owner() ID { return e.owner }

// Active reports whether some control is editing.
func (e *EditSession) Active() bool { return e.owner != 0 }

// Owns reports whether id holds edit focus.
func (e *EditSession) Owns(id ID) bool { return id != 0 && e.owner == id }

// Cursor returns the shared cursor byte offset.
func (e *EditSession) Cursor() int { return e.cursor }

// Phase returns the auto-repeat state.
func (e *EditSession) Phase() RepeatPhase { return e.phase }

// Begin gives edit focus to id with the cursor at offset.
// Any previous owner silently loses focus.
func (e *EditSession) Begin(id ID, cursor int) {
	if e.owner != id {
		guiLogger.Debug("edit begin", "id", id, "previous", e.owner, "cursor", cursor)
	}
	e.owner = id
	e.cursor = cursor
	e.resetRepeat()
}

// End drops edit focus and resets the cursor to 0.
func (e *EditSession) End() {
	if e.owner != 0 {
		guiLogger.Debug("edit end", "id", e.owner)
	}
	e.owner = 0
	e.cursor = 0
	e.resetRepeat()
}

// clampCursor keeps the cursor within [0, length].
func (e *EditSession) clampCursor(length int) {
	if e.cursor > length {
		e.cursor = length
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e *EditSession) resetRepeat() {
	e.cooldown = 0
	e.delay = 0
	e.phase = RepeatIdle
}

// tick advances the repeat state machine once per frame.
// Further calls within the same frame are ignored.
func (e *EditSession) tick(in *InputState, frame uint64, cfg *Config) {
	if e.tickedAny && e.lastTick == frame {
		return
	}
	e.tickedAny = true
	e.lastTick = frame

	if in == nil || !in.AnyKeyDown(repeatKeys...) {
		e.resetRepeat()
		return
	}
	e.cooldown++
	if e.cooldown >= cfg.RepeatCooldown {
		e.phase = RepeatActive
	} else {
		e.phase = RepeatCooldown
	}
}

// fire reports whether key acts this frame: always on a fresh press, and
// while held in RepeatActive on every RepeatDelay-th attempt.
func (e *EditSession) fire(in *InputState, key Key, cfg *Config) bool {
	if in.KeyPressed(key) {
		e.delay++
		return true
	}
	if !in.KeyDown(key) || e.phase != RepeatActive {
		return false
	}
	e.delay++
	delay := cfg.RepeatDelay
	if delay < 1 {
		delay = 1
	}
	return e.delay%delay == 0
}

// DragSession is the exclusive pointer capture shared by slider-like
// controls. While a control owns it, that control follows the pointer even
// outside its bounds and no other control starts a drag.
type DragSession struct {
	owner ID
}

// Owner returns the dragging control, or 0.
func (d *DragSession) Owner() ID { return d.owner }

// Active reports whether a drag is in progress.
func (d *DragSession) Active() bool { return d.owner != 0 }

// Owns reports whether id is dragging.
func (d *DragSession) Owns(id ID) bool { return id != 0 && d.owner == id }

// Begin starts a drag for id. It fails while another control is dragging.
func (d *DragSession) Begin(id ID) bool {
	if d.owner != 0 && d.owner != id {
		return false
	}
	if d.owner != id {
		guiLogger.Debug("drag begin", "id", id)
	}
	d.owner = id
	return true
}

// End releases the capture.
func (d *DragSession) End() {
	if d.owner != 0 {
		guiLogger.Debug("drag end", "id", d.owner)
	}
	d.owner = 0
}
