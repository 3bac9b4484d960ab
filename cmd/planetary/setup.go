package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/highscore"
	"github.com/vovakirdan/planetary/internal/scene"
	"github.com/vovakirdan/planetary/internal/storage"
)

const (
	storeSQLite = "sqlite"
	storeLocal  = "local"

	appName = "planetary"
)

// loadGameConfig loads the gameplay config and applies the difficulty preset.
func loadGameConfig() (config.PlanetaryConfig, config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.PlanetaryConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	cfg, err := config.LoadPlanetary(flagConfig)
	if err != nil {
		return config.PlanetaryConfig{}, "", err
	}
	config.ApplyPlanetaryPreset(&cfg, preset)
	return cfg, preset, nil
}

// newLogger builds the command logger. Logs go to --log-file when set and to
// fallback otherwise. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
		Level:           level,
	})
	return logger, closer, nil
}

// stores holds the score table and, with the sqlite store, the session history.
type stores struct {
	scores  highscore.Store
	history *storage.Store
	close   func()
}

// openStores opens the store selected by --store. A store that cannot be
// opened is logged and the game runs without persistence.
func openStores(logger *log.Logger) (stores, error) {
	switch flagStore {
	case storeSQLite:
		db, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
			return stores{close: func() {}}, nil
		}
		return stores{scores: db, history: db, close: func() { db.Close() }}, nil

	case storeLocal:
		local, err := storage.OpenLocal(appName)
		if err != nil {
			logger.Warn("could not open local score file", "error", err)
			return stores{close: func() {}}, nil
		}
		return stores{scores: local, close: func() { local.Close() }}, nil
	}
	return stores{}, errors.New("unknown store " + flagStore + " (want sqlite or local)")
}

// sceneOptions assembles the scene machine options shared by every frontend.
func sceneOptions(cfg config.PlanetaryConfig, preset config.DifficultyPreset, st stores, logger *log.Logger, screenW, screenH int) scene.Options {
	opts := scene.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  screenW,
			ScreenH:  screenH,
			TickRate: flagFPS,
			Seed:     flagSeed,
		}.ResolveSeed(time.Now()),
		Scores:     st.scores,
		Logger:     logger,
		Difficulty: string(preset),
	}
	// A nil *storage.Store must not become a non-nil History
	if st.history != nil {
		opts.History = st.history
	}
	return opts
}
