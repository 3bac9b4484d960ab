// Package highscore keeps the top five single-player results.
package highscore

import (
	"slices"
	"time"
)

// Capacity is the number of entries a table keeps.
const Capacity = 5

// Entry is one recorded result.
type Entry struct {
	Score      int
	RecordedAt time.Time
}

// Store persists a high-score table.
type Store interface {
	LoadTopScores() ([]Entry, error)
	SaveTopScores(entries []Entry) error
}

// Table is a descending, bounded list of entries.
type Table struct {
	entries []Entry
}

// NewTable builds a table from persisted entries, restoring the ordering and
// capacity invariants if the source violated them.
func NewTable(entries []Entry) *Table {
	t := &Table{entries: make([]Entry, 0, Capacity+1)}
	for _, e := range entries {
		t.TryInsert(e)
	}
	return t
}

// Entries returns a copy of the entries, highest score first.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Qualifies reports whether score would enter the table.
func (t *Table) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	return len(t.entries) < Capacity || score > t.entries[len(t.entries)-1].Score
}

// TryInsert places e after every entry with an equal or higher score and drops
// whatever falls past Capacity. It reports whether the table changed.
func (t *Table) TryInsert(e Entry) bool {
	if !t.Qualifies(e.Score) {
		return false
	}
	pos := len(t.entries)
	for i, cur := range t.entries {
		if e.Score > cur.Score {
			pos = i
			break
		}
	}
	t.entries = slices.Insert(t.entries, pos, e)
	if len(t.entries) > Capacity {
		t.entries = t.entries[:Capacity]
	}
	return true
}

// Record loads the table from s, offers score and saves it back when it changed.
// It reports whether the score made the table.
func Record(s Store, score int, at time.Time) (bool, error) {
	entries, err := s.LoadTopScores()
	if err != nil {
		return false, err
	}
	t := NewTable(entries)
	if !t.TryInsert(Entry{Score: score, RecordedAt: at}) {
		return false, nil
	}
	if err := s.SaveTopScores(t.Entries()); err != nil {
		return false, err
	}
	return true, nil
}
