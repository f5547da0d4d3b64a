package listkit

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:      "--",
		KeyTab:       "Tab",
		KeyLeft:      "Left",
		KeyRight:     "Right",
		KeyUp:        "Up",
		KeyDown:      "Down",
		KeyPageUp:    "PgUp",
		KeyPageDown:  "PgDn",
		KeyHome:      "Home",
		KeyEnd:       "End",
		KeyInsert:    "Ins",
		KeyDelete:    "Del",
		KeyBackspace: "Backspace",
		KeySpace:     "Space",
		KeyEnter:     "Enter",
		KeyEscape:    "Esc",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}

// EventType identifies what an Event carries.
type EventType int

const (
	EventNone EventType = iota
	EventLayout
	EventRepaint
	EventMouseDown
	EventMouseUp
	EventMouseDrag
	EventMouseMove
	EventKeyDown
	EventScrollWheel
	EventContextClick
	// EventUsed marks an event consumed by an earlier handler in the pass.
	EventUsed
)

var eventTypeNames = [...]string{
	EventNone:         "None",
	EventLayout:       "Layout",
	EventRepaint:      "Repaint",
	EventMouseDown:    "MouseDown",
	EventMouseUp:      "MouseUp",
	EventMouseDrag:    "MouseDrag",
	EventMouseMove:    "MouseMove",
	EventKeyDown:      "KeyDown",
	EventScrollWheel:  "ScrollWheel",
	EventContextClick: "ContextClick",
	EventUsed:         "Used",
}

func (t EventType) String() string {
	if int(t) >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// Event is the single input or phase event a pass processes.
type Event struct {
	Type   EventType
	Pos    Vec2        // Pointer position
	Delta  Vec2        // Pointer delta for drags, wheel delta for scrolls
	Button MouseButton // Button for mouse events
	Key    Key         // Key for KeyDown; KeyNone for typed characters
	Char   rune        // Typed character, 0 if none
	Time   float64     // Seconds on the host clock
}

// Use consumes the event so later handlers in the pass ignore it.
func (e *Event) Use() {
	e.Type = EventUsed
}

// IsMouse reports whether the event is a pointer event.
func (e *Event) IsMouse() bool {
	switch e.Type {
	case EventMouseDown, EventMouseUp, EventMouseDrag, EventMouseMove:
		return true
	}
	return false
}

// isLayoutAffecting reports whether an event forces geometry to be
// recomputed even when the allocated rect has not changed.
func isLayoutAffecting(e *Event) bool {
	return e != nil && (e.Type == EventLayout || e.Type == EventRepaint)
}

// EventQueue turns raw backend callbacks into discrete events. It tracks
// pointer position and held buttons between callbacks and keeps every
// transition as its own event.
type EventQueue struct {
	events    []Event
	pos       Vec2
	pressPos  Vec2
	mouseDown [MouseButtonCount]bool
	// probing is set between a press and the first motion after it.
	probing bool
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Push appends a ready-made event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// MousePos returns the last known pointer position.
func (q *EventQueue) MousePos() Vec2 {
	return q.pos
}

func (q *EventQueue) anyDown() (MouseButton, bool) {
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		if q.mouseDown[b] {
			return b, true
		}
	}
	return 0, false
}

// MouseMoved records pointer motion. While a button is held it emits
// MouseDrag events. The first drag after a press is preceded by a half-pixel
// step away from the press point, so drag-start gates that require the
// first drag event to sit next to the press always see one.
func (q *EventQueue) MouseMoved(x, y float32, t float64) {
	next := Vec2{x, y}
	if next == q.pos {
		return
	}
	btn, held := q.anyDown()
	if !held {
		q.Push(Event{Type: EventMouseMove, Pos: next, Delta: next.Sub(q.pos), Time: t})
		q.pos = next
		return
	}
	if q.probing {
		q.probing = false
		d := next.Sub(q.pressPos)
		if l := d.Len(); l > 1 {
			step := Vec2{d.X / l / 2, d.Y / l / 2}
			probe := q.pressPos.Add(step)
			q.Push(Event{Type: EventMouseDrag, Pos: probe, Delta: probe.Sub(q.pos), Button: btn, Time: t})
			q.pos = probe
		}
	}
	q.Push(Event{Type: EventMouseDrag, Pos: next, Delta: next.Sub(q.pos), Button: btn, Time: t})
	q.pos = next
}

// SetMouseButton records a press or release. A right-button release also
// emits a ContextClick.
func (q *EventQueue) SetMouseButton(button MouseButton, down bool, t float64) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	wasDown := q.mouseDown[button]
	q.mouseDown[button] = down
	switch {
	case down && !wasDown:
		q.pressPos = q.pos
		q.probing = true
		q.Push(Event{Type: EventMouseDown, Pos: q.pos, Button: button, Time: t})
	case !down && wasDown:
		q.probing = false
		q.Push(Event{Type: EventMouseUp, Pos: q.pos, Button: button, Time: t})
		if button == MouseButtonRight {
			q.Push(Event{Type: EventContextClick, Pos: q.pos, Button: button, Time: t})
		}
	}
}

// KeyPressed emits a KeyDown for a navigation key.
func (q *EventQueue) KeyPressed(key Key, t float64) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	q.Push(Event{Type: EventKeyDown, Pos: q.pos, Key: key, Time: t})
}

// CharTyped emits a KeyDown carrying a typed character.
func (q *EventQueue) CharTyped(ch rune, t float64) {
	q.Push(Event{Type: EventKeyDown, Pos: q.pos, Char: ch, Time: t})
}

// Scrolled emits a ScrollWheel event. Positive dy scrolls down.
func (q *EventQueue) Scrolled(dx, dy float32, t float64) {
	if dx == 0 && dy == 0 {
		return
	}
	q.Push(Event{Type: EventScrollWheel, Pos: q.pos, Delta: Vec2{dx, dy}, Time: t})
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns the pending events and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
