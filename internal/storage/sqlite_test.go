package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/planetary/internal/highscore"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreTopScoresRoundTrip(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.LoadTopScores()
	if err != nil {
		t.Fatalf("LoadTopScores() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty table, got %d entries", len(entries))
	}

	at := time.Date(2017, time.January, 2, 15, 4, 5, 0, time.UTC)
	saved := []highscore.Entry{
		{Score: 100, RecordedAt: at},
		{Score: 95, RecordedAt: at.Add(time.Minute)},
		{Score: 90, RecordedAt: at.Add(time.Hour)},
	}
	if err := store.SaveTopScores(saved); err != nil {
		t.Fatalf("SaveTopScores() failed: %v", err)
	}

	entries, err = store.LoadTopScores()
	if err != nil {
		t.Fatalf("LoadTopScores() failed: %v", err)
	}
	if len(entries) != len(saved) {
		t.Fatalf("Expected %d entries, got %d", len(saved), len(entries))
	}
	for i := range saved {
		if entries[i].Score != saved[i].Score {
			t.Errorf("entry %d score = %d, expected %d", i, entries[i].Score, saved[i].Score)
		}
		if !entries[i].RecordedAt.Equal(saved[i].RecordedAt) {
			t.Errorf("entry %d time = %v, expected %v", i, entries[i].RecordedAt, saved[i].RecordedAt)
		}
	}

	// Saving again replaces the table rather than appending
	if err := store.SaveTopScores(saved[:1]); err != nil {
		t.Fatalf("SaveTopScores() failed: %v", err)
	}
	entries, _ = store.LoadTopScores()
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry after overwrite, got %d", len(entries))
	}
}

func TestStoreSaveTopScoresTruncates(t *testing.T) {
	store := openTestStore(t)

	var many []highscore.Entry
	for i := 10; i > 0; i-- {
		many = append(many, highscore.Entry{Score: i * 10, RecordedAt: time.Now()})
	}
	if err := store.SaveTopScores(many); err != nil {
		t.Fatalf("SaveTopScores() failed: %v", err)
	}

	entries, err := store.LoadTopScores()
	if err != nil {
		t.Fatalf("LoadTopScores() failed: %v", err)
	}
	if len(entries) != highscore.Capacity {
		t.Errorf("Expected %d entries, got %d", highscore.Capacity, len(entries))
	}
	if entries[0].Score != 100 {
		t.Errorf("Expected highest score first, got %d", entries[0].Score)
	}
}

func TestStoreWithHighscoreRecord(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 90, 80, 70, 60} {
		if _, err := highscore.Record(store, s, time.Now()); err != nil {
			t.Fatalf("Record(%d) failed: %v", s, err)
		}
	}
	changed, err := highscore.Record(store, 95, time.Now())
	if err != nil || !changed {
		t.Fatalf("Record(95) = %v, %v; expected true, nil", changed, err)
	}

	entries, _ := store.LoadTopScores()
	expected := []int{100, 95, 90, 80, 70}
	for i, e := range entries {
		if e.Score != expected[i] {
			t.Errorf("entry %d = %d, expected %d", i, e.Score, expected[i])
		}
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	records := []SessionRecord{
		{Score: 12, Frames: 720, Intercepts: 3, Outcome: OutcomeGameOver, Difficulty: "normal", Seed: 1},
		{Score: 4, Frames: 240, Outcome: OutcomeAbandoned, Difficulty: "hard", Seed: 2},
		{Score: 99, Frames: 5940, Intercepts: 40, Outcome: OutcomeFailed, Difficulty: "easy", Seed: 3},
	}
	for _, r := range records {
		if _, err := store.RecordSession(r); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 sessions with limit, got %d", len(recent))
	}
	if recent[0].Seed != 3 || recent[1].Seed != 2 {
		t.Errorf("Expected newest first, got seeds %d, %d", recent[0].Seed, recent[1].Seed)
	}
	if recent[1].Outcome != OutcomeAbandoned {
		t.Errorf("Outcome = %q, expected %q", recent[1].Outcome, OutcomeAbandoned)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	// The failed session is excluded
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 12 {
		t.Errorf("HighScore = %d, expected 12", stats.HighScore)
	}
	if stats.TotalScore != 16 {
		t.Errorf("TotalScore = %d, expected 16", stats.TotalScore)
	}
	if stats.TotalIntercepts != 3 {
		t.Errorf("TotalIntercepts = %d, expected 3", stats.TotalIntercepts)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	stats, _ = store.Stats()
	if stats.GamesCount != 0 {
		t.Errorf("GamesCount after clear = %d, expected 0", stats.GamesCount)
	}
}
