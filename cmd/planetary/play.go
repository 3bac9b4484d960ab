package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/planetary/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Mouse       - Aim; left/right button fires the left/right cannon
  Arrows      - Move the crosshair
  Z / X       - Fire the left / right cannon
  1 / 2 / 3   - Menu: single player, multi player, high scores
  Esc         - Back to the menu (quits from the menu)
  Ctrl+S      - Save a text screenshot to ~/.planetary/screenshots
  Ctrl+C      - Quit

Difficulty options:
  easy   - Faster interceptors, bigger blasts, slow progression
  normal - Start at 30% difficulty, progresses to max
  hard   - Earlier first wave, smaller blasts, start at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  planetary play
  planetary play --difficulty easy
  planetary play --store local
  planetary play --config ./my-planetary.yaml --log-file /tmp/planetary.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Logs would corrupt the alternate screen unless they go to a file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	st, err := openStores(logger)
	if err != nil {
		return err
	}
	defer st.close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(sceneOptions(cfg, preset, st, logger, width, height))
}
