// Package coretest provides test doubles for the core collaborator interfaces.
package coretest

import (
	"github.com/vovakirdan/planetary/internal/core"
)

// Blit records one Blit call.
type Blit struct {
	Image core.Image
	X, Y  int
	Align core.Align
}

// Recorder is a core.Canvas that records draw calls for assertions.
type Recorder struct {
	Blits    []Blit
	Lines    int
	Circles  int
	Texts    []string
	Presents int

	// PresentErr is returned from Present when set.
	PresentErr error
}

// Clear resets the recorded draw calls of the current frame.
func (r *Recorder) Clear(core.Color) {
	r.Blits = r.Blits[:0]
	r.Lines = 0
	r.Circles = 0
	r.Texts = r.Texts[:0]
}

func (r *Recorder) Blit(img core.Image, x, y int, align core.Align) {
	r.Blits = append(r.Blits, Blit{Image: img, X: x, Y: y, Align: align})
}

func (r *Recorder) Line(_, _, _, _ int, _ core.Color) {
	r.Lines++
}

func (r *Recorder) Circle(_, _, _ int, _ core.Color) {
	r.Circles++
}

func (r *Recorder) Text(_, _ int, s string, _ core.Color) {
	r.Texts = append(r.Texts, s)
}

func (r *Recorder) Present() error {
	r.Presents++
	return r.PresentErr
}

// Count returns how many times img was blitted since the last Clear.
func (r *Recorder) Count(img core.Image) int {
	n := 0
	for _, b := range r.Blits {
		if b.Image == img {
			n++
		}
	}
	return n
}

// Image is a sized placeholder image.
type Image struct {
	Name string
	W, H int
}

func (i *Image) Size() (int, int) {
	return i.W, i.H
}

// Assets returns a complete AssetSet of placeholder images with the real
// bitmap dimensions and the given number of explosion frames.
func Assets(explosionFrames int) *core.AssetSet {
	a := &core.AssetSet{
		GameBackground:       &Image{Name: "game", W: 800, H: 600},
		MenuBackground:       &Image{Name: "menu", W: 800, H: 600},
		HighScoresBackground: &Image{Name: "highscores", W: 800, H: 600},
		GameOverBackground:   &Image{Name: "gameover", W: 800, H: 600},
		Heart:                &Image{Name: "heart", W: 48, H: 48},
		SinglePlayerButton:   &Image{Name: "sp", W: 376, H: 82},
		MultiPlayerButton:    &Image{Name: "mp", W: 376, H: 82},
		HighScoresButton:     &Image{Name: "hs", W: 376, H: 82},
	}
	for i := range a.Digits {
		a.Digits[i] = &Image{Name: "digit", W: 30, H: 45}
		a.BigDigits[i] = &Image{Name: "bigdigit", W: 68, H: 102}
	}
	heights := [3]int{16, 48, 76}
	for i := range a.Buildings {
		a.Buildings[i] = &Image{Name: "building", W: 160, H: heights[i]}
	}
	for i := 0; i < explosionFrames; i++ {
		a.Explosion = append(a.Explosion, &Image{Name: "explosion", W: 64, H: 64})
	}
	return a
}
