package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetary/internal/platform/gfx"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window at 800x600.

Bitmaps are loaded from the --assets directory (background.bmp, menu.bmp,
highscores.bmp, gameover.bmp, heart.bmp, single_player.bmp, multi_player.bmp,
high_scores.bmp, digits/N.bmp, big_digits/N.bmp, buildings/N.bmp and
Explosion/NN.bmp). Missing files are replaced by generated placeholders.

Examples:
  planetary window
  planetary window --assets ./res --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory holding the game bitmaps")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
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

	opts := sceneOptions(cfg, preset, st, logger, cfg.World.Width, cfg.World.Height)
	return gfx.Run(opts, flagAssets)
}
