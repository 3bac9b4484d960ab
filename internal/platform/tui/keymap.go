package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/planetary/internal/core"
)

// KeyMapper translates Bubble Tea key messages into latch writes.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a keystroke code.
// Returns KeyNone for unbound keys and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.KeyNone, true
	case "esc":
		return core.KeyEsc, false
	case "enter":
		return core.KeyEnter, false
	case " ":
		return core.KeySpace, false
	case "1":
		return core.Key1, false
	case "2":
		return core.Key2, false
	case "3":
		return core.Key3, false
	case "up", "w", "k":
		return core.KeyUp, false
	case "down", "s", "j":
		return core.KeyDown, false
	case "left", "a", "h":
		return core.KeyLeft, false
	case "right", "d", "l":
		return core.KeyRight, false
	}
	return core.KeyNone, false
}

// MapFire reports which cannon a key fires: z the left one, x the right one.
func (km *KeyMapper) MapFire(msg tea.KeyMsg) (core.Button, bool) {
	switch msg.String() {
	case "z":
		return core.ButtonLeft, true
	case "x":
		return core.ButtonRight, true
	}
	return 0, false
}

// Nudge returns the pointer step in cells for a movement key.
func Nudge(k core.Key) (dx, dy int) {
	switch k {
	case core.KeyUp:
		return 0, -1
	case core.KeyDown:
		return 0, 1
	case core.KeyLeft:
		return -2, 0
	case core.KeyRight:
		return 2, 0
	}
	return 0, 0
}

// MapKeyToLatch applies a key message to the latch, moving the pointer by
// whole cells of the given world size. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToLatch(msg tea.KeyMsg, latch *core.InputLatch, cellW, cellH float64) bool {
	if b, ok := km.MapFire(msg); ok {
		latch.Press(b)
		return false
	}

	k, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if dx, dy := Nudge(k); dx != 0 || dy != 0 {
		p := latch.Pointer()
		latch.MoveTo(core.V(p.X+float64(dx)*cellW, p.Y+float64(dy)*cellH))
	}
	if k != core.KeyNone {
		latch.KeyDown(k)
	}
	return false
}

// MapMouse applies a mouse message to the latch. at converts the message's
// cell to a world point.
func MapMouse(msg tea.MouseMsg, latch *core.InputLatch, at func(col, row int) core.Vec2) {
	latch.MoveTo(at(msg.X, msg.Y))
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		latch.Press(core.ButtonLeft)
	case tea.MouseButtonRight:
		latch.Press(core.ButtonRight)
	}
}
