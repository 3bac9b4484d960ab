package scene

import (
	"github.com/vovakirdan/planetary/internal/core"
)

// Menu hit regions in world pixels.
var (
	singlePlayerButton = core.NewRect(211, 231, 376, 82)
	multiPlayerButton  = core.NewRect(211, 334, 376, 82)
	highScoresButton   = core.NewRect(211, 445, 376, 82)

	exitCenter = core.V(759, 566)
)

const exitRadius = 17

// High score table layout: one row per entry, columns right-aligned at these x.
const (
	scoreColX  = 169
	hourColX   = 297
	minuteColX = 383
	dayColX    = 505
	monthColX  = 595
	yearColX   = 741
	rowY       = 230
	rowStep    = 67
)

// gameOverSeconds is how long the game over screen waits for input.
const gameOverSeconds = 5

func (m *Machine) tickMenu(in core.InputFrame, dst core.Canvas) {
	next := StateMenu
	switch in.Key {
	case core.Key1:
		next = StateSinglePlayer
	case core.Key2:
		next = StateMultiPlayer
	case core.Key3:
		next = StateHighScores
	case core.KeyEsc:
		next = StateExit
	}
	if in.ButtonEdge(core.ButtonLeft) {
		switch p := in.Pointer; {
		case singlePlayerButton.ContainsPoint(p):
			next = StateSinglePlayer
		case multiPlayerButton.ContainsPoint(p):
			next = StateMultiPlayer
		case highScoresButton.ContainsPoint(p):
			next = StateHighScores
		case core.PointInCircle(p, exitCenter, exitRadius):
			next = StateExit
		}
	}

	if next == StateMenu {
		m.drawMenu(dst, in.Pointer)
		return
	}
	m.enter(next)

	// The new scene draws from the next tick on
	switch next {
	case StateSinglePlayer:
		dst.Blit(m.opts.Assets.GameBackground, 0, 0, core.AlignLeft)
	case StateHighScores:
		m.drawHighScores(dst, in.Pointer)
	default:
		m.drawMenu(dst, in.Pointer)
	}
}

func (m *Machine) drawMenu(dst core.Canvas, pointer core.Vec2) {
	a := m.opts.Assets
	dst.Blit(a.MenuBackground, 0, 0, core.AlignLeft)
	dst.Blit(a.SinglePlayerButton, singlePlayerButton.X, singlePlayerButton.Y, core.AlignLeft)
	dst.Blit(a.MultiPlayerButton, multiPlayerButton.X, multiPlayerButton.Y, core.AlignLeft)
	dst.Blit(a.HighScoresButton, highScoresButton.X, highScoresButton.Y, core.AlignLeft)
	ex, ey := exitCenter.Round()
	dst.Circle(ex, ey, exitRadius, core.ColorRed)
	drawPointer(dst, pointer)
}

func (m *Machine) tickHighScores(in core.InputFrame, dst core.Canvas) {
	if in.ButtonEdge(core.ButtonLeft) || in.Key == core.KeyEnter || in.Key == core.KeyEsc {
		m.enter(StateMenu)
		m.drawMenu(dst, in.Pointer)
		return
	}
	m.drawHighScores(dst, in.Pointer)
}

func (m *Machine) drawHighScores(dst core.Canvas, pointer core.Vec2) {
	a := m.opts.Assets
	dst.Blit(a.HighScoresBackground, 0, 0, core.AlignLeft)
	for i, e := range m.table {
		y := rowY + rowStep*i
		t := e.RecordedAt.Local()
		core.DrawNumber(dst, &a.Digits, e.Score, scoreColX, y)
		core.DrawNumber(dst, &a.Digits, t.Hour(), hourColX, y)
		core.DrawNumber(dst, &a.Digits, t.Minute(), minuteColX, y)
		core.DrawNumber(dst, &a.Digits, t.Day(), dayColX, y)
		core.DrawNumber(dst, &a.Digits, int(t.Month()), monthColX, y)
		core.DrawNumber(dst, &a.Digits, t.Year(), yearColX, y)
	}
	if len(m.table) == 0 {
		dst.Text(400, rowY, "NO SCORES YET", core.ColorGray)
	}
	drawPointer(dst, pointer)
}

func (m *Machine) tickGameOver(in core.InputFrame, dst core.Canvas) {
	if m.scoreOffer {
		m.offerScore()
	}
	m.screenTicks++

	timeout := m.screenTicks >= gameOverSeconds*m.opts.Runtime.TicksPerSecond()
	if timeout || in.ButtonEdge(core.ButtonLeft) || in.Key == core.KeyEnter || in.Key == core.KeyEsc {
		m.enter(StateMenu)
		m.drawMenu(dst, in.Pointer)
		return
	}

	a := m.opts.Assets
	dst.Blit(a.GameOverBackground, 0, 0, core.AlignLeft)
	bw, _ := a.BigDigits[0].Size()
	digits := 1
	for n := m.finalScore; n >= 10; n /= 10 {
		digits++
	}
	// Centre the number horizontally
	right := 400 + (digits*(bw+2)-2)/2
	core.DrawNumber(dst, &a.BigDigits, m.finalScore, right, 250)
	if m.newRecord {
		dst.Text(400, 400, "NEW HIGH SCORE", core.ColorBrightYellow)
	}
}

func drawPointer(dst core.Canvas, p core.Vec2) {
	x, y := p.Round()
	dst.Line(x-6, y, x+6, y, core.ColorBrightWhite)
	dst.Line(x, y-6, x, y+6, core.ColorBrightWhite)
}
