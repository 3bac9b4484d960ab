package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/planetary/internal/core"
)

var keyBindings = []struct {
	from ebiten.Key
	to   core.Key
}{
	{ebiten.KeyEscape, core.KeyEsc},
	{ebiten.KeyEnter, core.KeyEnter},
	{ebiten.KeyNumpadEnter, core.KeyEnter},
	{ebiten.KeySpace, core.KeySpace},
	{ebiten.KeyDigit1, core.Key1},
	{ebiten.KeyNumpad1, core.Key1},
	{ebiten.KeyDigit2, core.Key2},
	{ebiten.KeyNumpad2, core.Key2},
	{ebiten.KeyDigit3, core.Key3},
	{ebiten.KeyNumpad3, core.Key3},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
}

// TranslateKey maps an Ebitengine key to a keystroke code, or KeyNone.
func TranslateKey(k ebiten.Key) core.Key {
	for _, b := range keyBindings {
		if b.from == k {
			return b.to
		}
	}
	return core.KeyNone
}

// pollInput latches this frame's pointer position, button and key edges.
func pollInput(l *core.InputLatch) {
	x, y := ebiten.CursorPosition()
	l.MoveTo(core.V(float64(x), float64(y)))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		l.Press(core.ButtonLeft)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		l.Press(core.ButtonRight)
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.from) {
			l.KeyDown(b.to)
		}
	}
}
