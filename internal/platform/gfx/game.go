package gfx

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/scene"
)

// Game implements ebiten.Game around the scene machine. Ebitengine calls
// Update at the configured TPS, which is the simulation tick.
type Game struct {
	machine *scene.Machine
	canvas  *Canvas
	latch   core.InputLatch
	logger  *log.Logger
	w, h    int
}

// NewGame creates a game drawing at world resolution. opts.Assets must be set.
// A zero seed is replaced by a time-based one.
func NewGame(opts scene.Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Runtime = opts.Runtime.ResolveSeed(time.Now())
	w, h := opts.Config.World.Width, opts.Config.World.Height
	return &Game{
		machine: scene.New(opts),
		canvas:  NewCanvas(w, h),
		logger:  logger,
		w:       w,
		h:       h,
	}
}

// Update runs one scene tick.
func (g *Game) Update() error {
	pollInput(&g.latch)

	state, err := g.machine.Tick(g.latch.Sample(), g.canvas)
	if err != nil {
		g.logger.Debug("tick recovered", "error", err)
	}
	if state == scene.StateExit {
		return ebiten.Termination
	}
	return nil
}

// Draw shows the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Front(), nil)
}

// Layout keeps the logical screen at world size; Ebitengine scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}

// Run opens the window and blocks until the player exits.
func Run(opts scene.Options, assetDir string) error {
	world := opts.Config.World
	if opts.Assets == nil {
		assets, err := LoadAssets(assetDir, world.Width, world.Height, opts.Config.Explosions.Frames, opts.Logger)
		if err != nil {
			return err
		}
		opts.Assets = assets
	}

	ebiten.SetWindowTitle("Planetary Defense")
	ebiten.SetWindowSize(world.Width, world.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Runtime.TicksPerSecond())

	return ebiten.RunGame(NewGame(opts))
}
