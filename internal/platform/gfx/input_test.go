package gfx

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/planetary/internal/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key      ebiten.Key
		expected core.Key
	}{
		{ebiten.KeyEscape, core.KeyEsc},
		{ebiten.KeyEnter, core.KeyEnter},
		{ebiten.KeyNumpadEnter, core.KeyEnter},
		{ebiten.KeyDigit1, core.Key1},
		{ebiten.KeyNumpad3, core.Key3},
		{ebiten.KeyArrowLeft, core.KeyLeft},
		{ebiten.KeyA, core.KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.key.String(), func(t *testing.T) {
			if got := TranslateKey(tc.key); got != tc.expected {
				t.Errorf("TranslateKey(%v) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}
