package gfx

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/core/coretest"
	"github.com/vovakirdan/planetary/internal/scene"
)

func newTestGame(t *testing.T, assets *core.AssetSet) *Game {
	t.Helper()
	cfg := config.DefaultPlanetaryConfig()
	if assets == nil {
		var err error
		assets, err = LoadAssets("", cfg.World.Width, cfg.World.Height, cfg.Explosions.Frames, nil)
		if err != nil {
			t.Fatalf("LoadAssets() error = %v", err)
		}
	}
	return NewGame(scene.Options{Config: cfg, Runtime: core.DefaultConfig(), Assets: assets})
}

func TestGameUpdateTerminatesOnExit(t *testing.T) {
	g := newTestGame(t, nil)

	if err := g.Update(); err != nil {
		t.Fatalf("Update() on the menu error = %v, expected nil", err)
	}
	if g.machine.State() != scene.StateMenu {
		t.Fatalf("State() = %v, expected menu", g.machine.State())
	}

	g.latch.KeyDown(core.KeyEsc)
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() after esc on the menu error = %v, expected ebiten.Termination", err)
	}
	if g.machine.State() != scene.StateExit {
		t.Errorf("State() = %v, expected exit", g.machine.State())
	}
}

func TestGameUpdateSurvivesTickFailure(t *testing.T) {
	// Recorder images are foreign to the window canvas
	g := newTestGame(t, coretest.Assets(16))

	if err := g.Update(); err != nil {
		t.Errorf("Update() error = %v, expected a failed tick to keep the window open", err)
	}
	if g.machine.State() != scene.StateMenu {
		t.Errorf("State() = %v, expected menu after a failed tick", g.machine.State())
	}
}

func TestGameLayout(t *testing.T) {
	g := newTestGame(t, nil)
	if w, h := g.Layout(1920, 1080); w != 800 || h != 600 {
		t.Errorf("Layout() = %d, %d, expected the 800x600 world", w, h)
	}
}

func TestLoadAssetsPlaceholders(t *testing.T) {
	a, err := LoadAssets(t.TempDir(), 800, 600, 16, nil)
	if err != nil {
		t.Fatalf("LoadAssets() error = %v", err)
	}
	if len(a.Explosion) != 16 {
		t.Errorf("len(Explosion) = %d, expected 16", len(a.Explosion))
	}
	if w, h := a.Buildings[2].Size(); w != 160 || h != 76 {
		t.Errorf("intact building = %dx%d, expected 160x76", w, h)
	}
}
