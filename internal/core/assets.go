package core

import (
	"errors"
	"fmt"
)

// ErrMissingAsset is returned by AssetSet.Validate when an image handle is absent.
var ErrMissingAsset = errors.New("core: missing asset")

// AssetSet holds every image handle the scenes draw with.
// Loading and decoding happen in the platform layer; the simulation only blits.
type AssetSet struct {
	GameBackground       Image
	MenuBackground       Image
	HighScoresBackground Image
	GameOverBackground   Image

	Digits    [10]Image
	BigDigits [10]Image

	// Explosion is the forward-only animation sequence.
	Explosion []Image

	// Buildings is indexed by integrity level (0 destroyed, 1 damaged, 2 intact).
	Buildings [3]Image

	Heart Image

	SinglePlayerButton Image
	MultiPlayerButton  Image
	HighScoresButton   Image
}

// Validate reports the first missing handle.
func (a *AssetSet) Validate() error {
	named := []struct {
		name string
		img  Image
	}{
		{"game background", a.GameBackground},
		{"menu background", a.MenuBackground},
		{"high scores background", a.HighScoresBackground},
		{"game over background", a.GameOverBackground},
		{"heart", a.Heart},
		{"single player button", a.SinglePlayerButton},
		{"multi player button", a.MultiPlayerButton},
		{"high scores button", a.HighScoresButton},
	}
	for _, n := range named {
		if n.img == nil {
			return fmt.Errorf("%w: %s", ErrMissingAsset, n.name)
		}
	}
	for i := range a.Digits {
		if a.Digits[i] == nil {
			return fmt.Errorf("%w: digit %d", ErrMissingAsset, i)
		}
		if a.BigDigits[i] == nil {
			return fmt.Errorf("%w: big digit %d", ErrMissingAsset, i)
		}
	}
	for i := range a.Buildings {
		if a.Buildings[i] == nil {
			return fmt.Errorf("%w: building tier %d", ErrMissingAsset, i)
		}
	}
	if len(a.Explosion) == 0 {
		return fmt.Errorf("%w: explosion frames", ErrMissingAsset)
	}
	for i, img := range a.Explosion {
		if img == nil {
			return fmt.Errorf("%w: explosion frame %d", ErrMissingAsset, i)
		}
	}
	return nil
}

// DrawNumber blits n with the given digit font, right-aligned so the last digit ends
// at x, stepping left by the digit width plus a 2 pixel gap.
func DrawNumber(dst Canvas, font *[10]Image, n, x, y int) {
	if n < 0 {
		n = 0
	}
	w, _ := font[0].Size()
	for i := 0; ; i++ {
		dst.Blit(font[n%10], x-i*(w+2), y, AlignRight)
		n /= 10
		if n == 0 {
			return
		}
	}
}
