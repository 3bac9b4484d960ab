package tui

import (
	"strings"

	"github.com/vovakirdan/planetary/internal/core"
)

// Footprints of the bitmap assets in world pixels.
const (
	digitW, digitH       = 30, 45
	bigDigitW, bigDigitH = 68, 102
	buttonW, buttonH     = 376, 82
	heartSize            = 48
	explosionSize        = 64
)

// bigFont is a 3x5 block font for the game over score.
var bigFont = [10][5]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

var explosionShapes = [][]string{
	{"*"},
	{"\\|/", "-*-", "/|\\"},
	{" \\|/ ", "--*--", " /|\\ "},
	{"  . .  ", " \\ | / ", "-- * --", " / | \\ ", "  ' '  "},
}

// Assets builds the sprite set the terminal canvas draws with.
// Explosion frames grow towards the middle of the animation and shrink after,
// following the radius curve.
func Assets(worldW, worldH, explosionFrames int) *core.AssetSet {
	ground := strings.Repeat("▔", 400)

	a := &core.AssetSet{
		GameBackground: &core.Sprite{
			Rows: []string{ground}, Color: core.ColorGreen, Bottom: true,
			W: worldW, H: worldH,
		},
		MenuBackground: &core.Sprite{
			Rows: []string{
				"",
				"P L A N E T A R Y   D E F E N S E",
				"",
				"click a button or press 1, 2, 3 (esc quits)",
			},
			Color: core.ColorBrightCyan,
			W:     worldW, H: worldH,
		},
		HighScoresBackground: &core.Sprite{
			Rows: []string{
				"",
				"H I G H   S C O R E S",
			},
			Color: core.ColorBrightYellow,
			W:     worldW, H: worldH,
		},
		GameOverBackground: &core.Sprite{
			Rows:  []string{"", "", "G A M E   O V E R"},
			Color: core.ColorBrightRed,
			W:     worldW, H: worldH,
		},
		Heart: &core.Sprite{
			Rows: []string{"♥"}, Color: core.ColorBrightRed,
			W: heartSize, H: heartSize,
		},
		SinglePlayerButton: button("1  SINGLE PLAYER"),
		MultiPlayerButton:  button("2  MULTI PLAYER"),
		HighScoresButton:   button("3  HIGH SCORES"),
		Buildings: [3]core.Image{
			&core.Sprite{Rows: []string{"▁▂▁▁▂▁"}, Color: core.ColorGray, Bottom: true, W: 160, H: 16},
			&core.Sprite{Rows: []string{"▗▖ ▄▖", "█▙▟██"}, Color: core.ColorYellow, Bottom: true, W: 160, H: 48},
			&core.Sprite{Rows: []string{" ▄  ▄ ", "▐█▖▟█▌", "██████"}, Color: core.ColorBrightBlue, Bottom: true, W: 160, H: 76},
		},
	}

	for i := range 10 {
		a.Digits[i] = &core.Sprite{
			Rows: []string{string(rune('0' + i))}, Color: core.ColorBrightWhite,
			W: digitW, H: digitH,
		}
		a.BigDigits[i] = &core.Sprite{
			Rows: bigFont[i][:], Color: core.ColorBrightYellow,
			W: bigDigitW, H: bigDigitH,
		}
	}

	a.Explosion = make([]core.Image, explosionFrames)
	half := (explosionFrames + 1) / 2
	for i := range explosionFrames {
		phase := min(i+1, explosionFrames-i)
		shape := explosionShapes[min(len(explosionShapes)-1, (phase-1)*len(explosionShapes)/max(1, half))]
		a.Explosion[i] = &core.Sprite{
			Rows: shape, Color: core.ColorOrange,
			W: explosionSize, H: explosionSize,
		}
	}
	return a
}

func button(label string) *core.Sprite {
	inner := len([]rune(label)) + 4
	return &core.Sprite{
		Rows: []string{
			"╭" + strings.Repeat("─", inner) + "╮",
			"│  " + label + "  │",
			"╰" + strings.Repeat("─", inner) + "╯",
		},
		Color: core.ColorBrightGreen,
		W:     buttonW, H: buttonH,
	}
}
