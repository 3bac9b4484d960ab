// Package scene drives the top-level game flow: the menu, a single-player
// session, the game-over and high-score screens, and the exit state.
package scene

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/games/planetary"
	"github.com/vovakirdan/planetary/internal/highscore"
	"github.com/vovakirdan/planetary/internal/storage"
)

// ErrTickFailed wraps a collaborator fault that aborted a tick.
var ErrTickFailed = errors.New("scene: tick failed")

// State identifies the active scene.
type State int

const (
	StateMenu State = iota
	StateSinglePlayer
	StateMultiPlayer
	StateHighScores
	StateGameOver
	StateExit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateSinglePlayer:
		return "single_player"
	case StateMultiPlayer:
		return "multi_player"
	case StateHighScores:
		return "high_scores"
	case StateGameOver:
		return "game_over"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// History records finished sessions. *storage.Store implements it.
type History interface {
	RecordSession(r storage.SessionRecord) (int64, error)
}

// Options configures a Machine. Assets is required; everything else may be zero.
type Options struct {
	Config     config.PlanetaryConfig
	Runtime    core.RuntimeConfig
	Assets     *core.AssetSet
	Scores     highscore.Store
	History    History
	Logger     *log.Logger
	Difficulty string

	// Now is the clock used to stamp high scores. Defaults to time.Now.
	Now func() time.Time
}

// Machine is the scene state machine. It owns at most one session, created on
// entering single-player and dropped on leaving it.
type Machine struct {
	opts   Options
	logger *log.Logger
	state  State

	session  *planetary.Session
	sessions int64

	// Game over screen
	finalScore  int
	scoreOffer  bool
	newRecord   bool
	screenTicks int

	// High scores screen
	table []highscore.Entry
}

// New returns a machine in the menu state.
func New(opts Options) *Machine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		opts:   opts,
		logger: logger,
		state:  StateMenu,
	}
}

// State returns the active scene.
func (m *Machine) State() State {
	return m.state
}

// Session returns the live session, or nil outside single-player.
func (m *Machine) Session() *planetary.Session {
	return m.session
}

// Tick clears dst, runs the active scene's handler for one frame, then presents dst.
// A present failure tears the session down without saving a score, reverts to
// the menu and returns an error wrapping ErrTickFailed.
func (m *Machine) Tick(in core.InputFrame, dst core.Canvas) (State, error) {
	if m.state == StateExit {
		return StateExit, nil
	}

	dst.Clear(core.ColorBlack)
	switch m.state {
	case StateMenu:
		m.tickMenu(in, dst)
	case StateSinglePlayer:
		m.tickSinglePlayer(in, dst)
	case StateMultiPlayer:
		m.logger.Info("multiplayer is not available")
		m.enter(StateMenu)
		m.drawMenu(dst, in.Pointer)
	case StateHighScores:
		m.tickHighScores(in, dst)
	case StateGameOver:
		m.tickGameOver(in, dst)
	}

	if err := dst.Present(); err != nil {
		m.fail(err)
		return m.state, fmt.Errorf("%w: %w", ErrTickFailed, err)
	}
	return m.state, nil
}

// enter switches scenes, running the entry action of the new one.
func (m *Machine) enter(next State) {
	m.logger.Debug("scene transition", "from", m.state, "to", next)
	prev := m.state
	m.state = next
	m.screenTicks = 0

	if prev == StateSinglePlayer && next != StateSinglePlayer {
		m.session = nil
	}

	switch next {
	case StateSinglePlayer:
		rt := m.opts.Runtime
		rt.Seed += m.sessions
		m.sessions++
		m.session = planetary.NewSession(m.opts.Config, rt, m.opts.Assets)
	case StateHighScores:
		m.table = m.loadTable()
	}
}

func (m *Machine) tickSinglePlayer(in core.InputFrame, dst core.Canvas) {
	s := m.session
	switch s.Tick(in, dst) {
	case planetary.OutcomeAbandoned:
		m.logger.Debug("session abandoned", "score", s.Score(), "frames", s.Frames())
		m.recordHistory(s, storage.OutcomeAbandoned)
		m.enter(StateMenu)
		m.drawMenu(dst, in.Pointer)

	case planetary.OutcomeGameOver:
		m.logger.Info("game over", "score", s.Score(), "frames", s.Frames(), "intercepts", s.Intercepts())
		m.recordHistory(s, storage.OutcomeGameOver)
		m.finalScore = s.Score()
		m.scoreOffer = true
		m.newRecord = false
		m.enter(StateGameOver)
	}
}

// fail handles a collaborator fault: the session is dropped without saving.
func (m *Machine) fail(err error) {
	m.logger.Error("tick failed", "scene", m.state, "error", err)
	if m.session != nil {
		m.recordHistory(m.session, storage.OutcomeFailed)
	}
	m.scoreOffer = false
	m.state = StateMenu
	m.session = nil
	m.screenTicks = 0
}

func (m *Machine) recordHistory(s *planetary.Session, outcome storage.Outcome) {
	if m.opts.History == nil {
		return
	}
	_, err := m.opts.History.RecordSession(storage.SessionRecord{
		Score:      s.Score(),
		Frames:     s.Frames(),
		Intercepts: s.Intercepts(),
		Outcome:    outcome,
		Difficulty: m.opts.Difficulty,
		Seed:       m.opts.Runtime.Seed + m.sessions - 1,
	})
	if err != nil {
		m.logger.Warn("could not record session", "error", err)
	}
}

func (m *Machine) loadTable() []highscore.Entry {
	if m.opts.Scores == nil {
		return nil
	}
	entries, err := m.opts.Scores.LoadTopScores()
	if err != nil {
		m.logger.Warn("could not load high scores", "error", err)
		return nil
	}
	return highscore.NewTable(entries).Entries()
}

// offerScore records the final score if it makes the table.
func (m *Machine) offerScore() {
	m.scoreOffer = false
	if m.opts.Scores == nil || m.finalScore <= 0 {
		return
	}
	changed, err := highscore.Record(m.opts.Scores, m.finalScore, m.opts.Now())
	if err != nil {
		m.logger.Warn("could not save high score", "score", m.finalScore, "error", err)
		return
	}
	m.newRecord = changed
	if changed {
		m.logger.Info("new high score", "score", m.finalScore)
	}
}
