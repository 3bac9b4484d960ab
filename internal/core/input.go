package core

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	buttonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Key is a platform-independent keystroke code.
// Frontends translate their native key events into these.
type Key int

const (
	KeyNone Key = iota
	KeyEsc
	KeyEnter
	KeySpace
	Key1
	Key2
	Key3
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyOther
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEsc:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case Key1:
		return "1"
	case Key2:
		return "2"
	case Key3:
		return "3"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Other"
	}
}

// InputFrame is the input snapshot consumed by one simulation tick.
type InputFrame struct {
	// Pointer is the latest known pointer position in world coordinates.
	Pointer Vec2

	// Pressed reports a press edge per button: true at most once per physical press.
	Pressed [buttonCount]bool

	// Key is the most recent keystroke since the previous tick, or KeyNone.
	Key Key
}

// ButtonEdge reports whether b was pressed since the previous tick.
func (f InputFrame) ButtonEdge(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return f.Pressed[b]
}

// InputLatch holds the latest known input state between ticks.
//
// The platform writes it from its event handlers and the tick handler reads it once
// at tick start through Sample. Both run on the same goroutine in every frontend,
// so no locking is needed.
type InputLatch struct {
	pointer Vec2
	pressed [buttonCount]bool
	key     Key
}

// MoveTo records the pointer position in world coordinates.
func (l *InputLatch) MoveTo(p Vec2) {
	l.pointer = p
}

// Pointer returns the last recorded pointer position.
func (l *InputLatch) Pointer() Vec2 {
	return l.pointer
}

// Press records a press edge for b. Repeated presses before the next Sample collapse
// into one edge.
func (l *InputLatch) Press(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	l.pressed[b] = true
}

// KeyDown records k as the most recent keystroke.
func (l *InputLatch) KeyDown(k Key) {
	l.key = k
}

// Sample returns the current snapshot and clears the edge-triggered state.
func (l *InputLatch) Sample() InputFrame {
	frame := InputFrame{
		Pointer: l.pointer,
		Pressed: l.pressed,
		Key:     l.key,
	}
	l.pressed = [buttonCount]bool{}
	l.key = KeyNone
	return frame
}
