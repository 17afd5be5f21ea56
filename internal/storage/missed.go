package storage

import "github.com/aliskhannn/vocab-trainer/internal/domain/entities"

// MissedSet collects entries answered incorrectly during one session.
// Each entry is kept once, in the order it was first missed.
// It is owned by a single session and is not safe for concurrent use.
type MissedSet struct {
	seen  map[*entities.VocabEntry]struct{}
	items []*entities.VocabEntry
}

// NewMissedSet creates an empty MissedSet.
func NewMissedSet() *MissedSet {
	return &MissedSet{seen: make(map[*entities.VocabEntry]struct{})}
}

// Add records entry and reports whether it was not already present.
func (m *MissedSet) Add(entry *entities.VocabEntry) bool {
	if entry == nil {
		return false
	}
	if _, ok := m.seen[entry]; ok {
		return false
	}
	m.seen[entry] = struct{}{}
	m.items = append(m.items, entry)
	return true
}

// Len returns the number of missed entries.
func (m *MissedSet) Len() int {
	return len(m.items)
}

// Items returns a copy of the missed entries in first-miss order.
func (m *MissedSet) Items() []*entities.VocabEntry {
	return append([]*entities.VocabEntry(nil), m.items...)
}
