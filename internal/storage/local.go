package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/planetary/internal/highscore"
)

const (
	scoresObject   = "highscores"
	scoresProperty = "top5"
)

// LocalStore keeps the high-score table in the per-user application data
// directory managed by gdata. It has no session history.
type LocalStore struct {
	manager *gdata.Manager
}

type localEntry struct {
	Score      int    `yaml:"score"`
	RecordedAt string `yaml:"recorded_at"`
}

type localFile struct {
	Scores []localEntry `yaml:"scores"`
}

// OpenLocal opens the data directory for appName.
func OpenLocal(appName string) (*LocalStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open local data for %s: %w", appName, err)
	}
	return &LocalStore{manager: m}, nil
}

// LoadTopScores returns the stored table, or an empty one if nothing was saved yet.
func (l *LocalStore) LoadTopScores() ([]highscore.Entry, error) {
	if !l.manager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil, nil
	}
	data, err := l.manager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load local scores: %w", err)
	}

	var f localFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("storage: cannot parse local scores: %w", err)
	}

	entries := make([]highscore.Entry, 0, len(f.Scores))
	for _, e := range f.Scores {
		entries = append(entries, highscore.Entry{Score: e.Score, RecordedAt: parseTime(e.RecordedAt)})
	}
	return entries, nil
}

// SaveTopScores overwrites the stored table.
func (l *LocalStore) SaveTopScores(entries []highscore.Entry) error {
	var f localFile
	for i, e := range entries {
		if i >= highscore.Capacity {
			break
		}
		f.Scores = append(f.Scores, localEntry{Score: e.Score, RecordedAt: e.RecordedAt.UTC().Format(timeLayout)})
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("storage: cannot encode local scores: %w", err)
	}
	if err := l.manager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("storage: cannot save local scores: %w", err)
	}
	return nil
}

// Close is a no-op; it lets callers treat both stores alike.
func (l *LocalStore) Close() error {
	return nil
}

var _ highscore.Store = (*LocalStore)(nil)
