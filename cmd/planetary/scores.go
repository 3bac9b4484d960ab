package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/planetary/internal/highscore"
	"github.com/vovakirdan/planetary/internal/platform/tui"
	"github.com/vovakirdan/planetary/internal/storage"
)

var (
	flagInteractive  bool
	flagClearHistory bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and statistics",
	Long: `Display the top five scores and, with the sqlite store, statistics over
every recorded session.

Examples:
  planetary scores
  planetary scores --interactive
  planetary scores --store local
  planetary scores --clear-history`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores and session history")
	scoresCmd.Flags().BoolVar(&flagClearHistory, "clear-history", false, "Delete the session history (top scores are kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStores(logger)
	if err != nil {
		return err
	}
	defer st.close()
	if st.scores == nil {
		return fmt.Errorf("no score store available")
	}

	if flagClearHistory {
		if st.history == nil {
			return fmt.Errorf("the %s store keeps no session history", flagStore)
		}
		if err := st.history.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("Session history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(st.scores, st.history, width, height)
	}

	entries, err := st.scores.LoadTopScores()
	if err != nil {
		return err
	}
	var stats *storage.Stats
	if st.history != nil {
		if stats, err = st.history.Stats(); err != nil {
			logger.Warn("could not load statistics", "error", err)
		}
	}
	fmt.Print(tui.FormatScores(highscore.NewTable(entries).Entries(), stats))
	return nil
}
