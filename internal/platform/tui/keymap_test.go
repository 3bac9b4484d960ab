package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/planetary/internal/core"
)

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Key
		quit     bool
	}{
		{tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEsc, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, true},
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, false},
		{runes("1"), core.Key1, false},
		{runes("3"), core.Key3, false},
		{runes("j"), core.KeyDown, false},
		{runes("q"), core.KeyNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			k, quit := km.MapKey(tc.msg)
			if k != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), k, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestKeyMapperFireAndNudge(t *testing.T) {
	km := NewKeyMapper()
	var latch core.InputLatch
	latch.MoveTo(core.V(400, 300))

	km.MapKeyToLatch(runes("x"), &latch, 8, 20)
	km.MapKeyToLatch(tea.KeyMsg{Type: tea.KeyRight}, &latch, 8, 20)
	km.MapKeyToLatch(tea.KeyMsg{Type: tea.KeyUp}, &latch, 8, 20)

	frame := latch.Sample()
	if !frame.ButtonEdge(core.ButtonRight) || frame.ButtonEdge(core.ButtonLeft) {
		t.Errorf("Pressed = %v, expected only the right cannon", frame.Pressed)
	}
	if frame.Pointer != core.V(416, 280) {
		t.Errorf("Pointer = %v, expected (416, 280)", frame.Pointer)
	}
	if frame.Key != core.KeyUp {
		t.Errorf("Key = %v, expected the last keystroke", frame.Key)
	}
}

func TestMapMouse(t *testing.T) {
	c := newTestCanvas()
	var latch core.InputLatch

	MapMouse(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &latch, c.WorldOf)
	if latch.Sample().ButtonEdge(core.ButtonLeft) {
		t.Error("a release is not a press edge")
	}

	MapMouse(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &latch, c.WorldOf)
	MapMouse(tea.MouseMsg{X: 11, Y: 10, Action: tea.MouseActionMotion}, &latch, c.WorldOf)
	frame := latch.Sample()
	if !frame.ButtonEdge(core.ButtonRight) {
		t.Error("a right press should latch an edge")
	}
	if frame.Pointer != c.WorldOf(11, 10) {
		t.Errorf("Pointer = %v, expected the latest position", frame.Pointer)
	}
}
