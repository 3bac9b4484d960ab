package core

import "image/color"

// Color represents a foreground color for a screen cell or a primitive.
// Uses ANSI 256-color codes for terminal compatibility; pixel frontends
// map the same values through RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

// palette holds the ANSI code and the RGB value for every Color.
var palette = [...]struct {
	ansi string
	rgba color.RGBA
}{
	ColorDefault:       {"", color.RGBA{R: 220, G: 220, B: 220, A: 255}},
	ColorRed:           {"1", color.RGBA{R: 205, G: 0, B: 0, A: 255}},
	ColorGreen:         {"2", color.RGBA{R: 0, G: 205, B: 0, A: 255}},
	ColorYellow:        {"3", color.RGBA{R: 205, G: 205, B: 0, A: 255}},
	ColorBlue:          {"4", color.RGBA{R: 0, G: 0, B: 238, A: 255}},
	ColorMagenta:       {"5", color.RGBA{R: 205, G: 0, B: 205, A: 255}},
	ColorCyan:          {"6", color.RGBA{R: 0, G: 205, B: 205, A: 255}},
	ColorWhite:         {"7", color.RGBA{R: 229, G: 229, B: 229, A: 255}},
	ColorBrightRed:     {"9", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	ColorBrightGreen:   {"10", color.RGBA{R: 0, G: 255, B: 0, A: 255}},
	ColorBrightYellow:  {"11", color.RGBA{R: 255, G: 255, B: 0, A: 255}},
	ColorBrightBlue:    {"12", color.RGBA{R: 92, G: 92, B: 255, A: 255}},
	ColorBrightMagenta: {"13", color.RGBA{R: 255, G: 0, B: 255, A: 255}},
	ColorBrightCyan:    {"14", color.RGBA{R: 0, G: 255, B: 255, A: 255}},
	ColorBrightWhite:   {"15", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	ColorOrange:        {"208", color.RGBA{R: 255, G: 135, B: 0, A: 255}},
	ColorGray:          {"245", color.RGBA{R: 138, G: 138, B: 138, A: 255}},
	ColorBlack:         {"0", color.RGBA{A: 255}},
}

// ANSI returns the terminal color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(palette) {
		return ""
	}
	return palette[c].ansi
}

// RGBA returns the color used by pixel frontends.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[ColorDefault].rgba
	}
	return palette[c].rgba
}
