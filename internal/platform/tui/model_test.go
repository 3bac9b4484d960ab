package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/scene"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	rt := core.DefaultConfig()
	rt.ScreenW, rt.ScreenH = 100, 30
	rt.Seed = 1
	m := NewModel(scene.Options{
		Config:  config.DefaultPlanetaryConfig(),
		Runtime: rt,
	})
	m.screenshotDir = t.TempDir()
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTickDrawsMenu(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init() should start the tick loop")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("a tick should schedule the next tick")
	}
	if view := m.View(); !strings.Contains(view, "P L A N E T A R Y") {
		t.Errorf("View() should show the menu, got:\n%s", view)
	}
}

func TestModelKeysReachTheMachine(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runes("1"))
	m, _ = update(t, m, TickMsg{})
	if got := m.machine.State(); got != scene.StateSinglePlayer {
		t.Fatalf("State() after '1' = %v, expected single player", got)
	}

	// z fires the left cannon on the next tick
	m, _ = update(t, m, runes("z"))
	m, _ = update(t, m, TickMsg{})
	if got := m.machine.Session().Launched(); got != 1 {
		t.Errorf("Launched() = %d, expected 1", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, TickMsg{})
	if got := m.machine.State(); got != scene.StateMenu {
		t.Errorf("State() after esc = %v, expected menu", got)
	}
}

func TestModelExitQuits(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("exit should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("exit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Error("ctrl+c should quit")
	}
}

func TestModelMouse(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 50, Y: 15, Action: tea.MouseActionMotion})
	if got := m.latch.Pointer(); got != core.V(404, 310) {
		t.Errorf("Pointer() = %v, expected (404, 310)", got)
	}

	// Single player button spans rows 11-15 and columns 26-73
	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, TickMsg{})
	if got := m.machine.State(); got != scene.StateSinglePlayer {
		t.Errorf("State() after click = %v, expected single player", got)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m, _ = update(t, m, TickMsg{})

	if w, h := m.canvas.Front().Width(), m.canvas.Front().Height(); w != 60 || h != 20 {
		t.Errorf("front buffer = %dx%d, expected 60x20", w, h)
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(files) != 1 || !strings.HasPrefix(files[0].Name(), "planetary_menu_") {
		t.Fatalf("screenshots = %v, expected one menu screenshot", files)
	}
	data, err := os.ReadFile(m.screenshotDir + "/" + files[0].Name())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "SINGLE PLAYER") {
		t.Error("screenshot should contain the presented frame")
	}
}
