package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/scene"
)

// Model is the Bubble Tea model hosting the scene machine in a terminal.
type Model struct {
	machine       *scene.Machine
	canvas        *Canvas
	latch         *core.InputLatch
	keys          *KeyMapper
	config        core.RuntimeConfig
	logger        *log.Logger
	screenshotDir string
	quitting      bool
}

// NewModel creates a model for a terminal of opts.Runtime.ScreenW x ScreenH cells.
// Missing assets are replaced by the generated sprite set.
func NewModel(opts scene.Options) Model {
	opts.Runtime = opts.Runtime.ResolveSeed(time.Now())
	world := opts.Config.World
	if opts.Assets == nil {
		opts.Assets = Assets(world.Width, world.Height, opts.Config.Explosions.Frames)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	latch := &core.InputLatch{}
	latch.MoveTo(core.V(float64(world.Width)/2, float64(world.Height)/2))

	return Model{
		machine:       scene.New(opts),
		canvas:        NewCanvas(opts.Runtime.ScreenW, opts.Runtime.ScreenH, world.Width, world.Height),
		latch:         latch,
		keys:          NewKeyMapper(),
		config:        opts.Runtime,
		logger:        logger,
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TicksPerSecond())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouse(msg, m.latch, m.canvas.WorldOf)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.canvas.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil
	}

	cw, ch := m.canvas.CellSize()
	if m.keys.MapKeyToLatch(msg, m.latch, cw, ch) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one scene tick on the latched input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	state, err := m.machine.Tick(m.latch.Sample(), m.canvas)
	if err != nil {
		// The machine has already reverted to the menu
		m.logger.Debug("tick recovered", "error", err)
	}
	if state == scene.StateExit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TicksPerSecond())
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".planetary", "screenshots")
	}
	return filepath.Join(home, ".planetary", "screenshots")
}

// saveScreenshot writes the last presented frame to a timestamped text file.
func (m Model) saveScreenshot() error {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("planetary_%s_%s.txt", m.machine.State(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.canvas.Front().String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the last presented frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.canvas.Front())
}

// Run starts the Bubble Tea program with the given scene options.
func Run(opts scene.Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // The crosshair follows the mouse
	)

	_, err := p.Run()
	return err
}
