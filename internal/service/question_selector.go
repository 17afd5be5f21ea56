package service

import (
	"math/rand"
	"time"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

// ItemSelector picks the working set of entries for a session.
type ItemSelector struct {
	rng *rand.Rand
}

// NewItemSelector creates a new ItemSelector seeded from the clock.
func NewItemSelector() *ItemSelector {
	return NewItemSelectorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewItemSelectorWithSource creates an ItemSelector with a fixed random source.
func NewItemSelectorWithSource(src rand.Source) *ItemSelector {
	return &ItemSelector{rng: rand.New(src)}
}

// Select returns up to reviewNum entries. Without shuffle the first entries
// in source order are taken; with shuffle a random sample is returned.
// reviewNum <= 0 selects every entry. Duplicate lines are reviewed once.
func (s *ItemSelector) Select(entries []*entities.VocabEntry, reviewNum int, shuffle bool) []*entities.VocabEntry {
	out := uniqueKeepOrder(entries)
	if shuffle {
		out = s.shuffled(out)
	}
	if reviewNum <= 0 {
		return out
	}
	return takeFirst(out, reviewNum)
}

// shuffled returns a shuffled copy of the input slice.
func (s *ItemSelector) shuffled(in []*entities.VocabEntry) []*entities.VocabEntry {
	out := append([]*entities.VocabEntry(nil), in...)
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// uniqueKeepOrder removes entries with the same raw line while preserving the original order.
func uniqueKeepOrder(entries []*entities.VocabEntry) []*entities.VocabEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]*entities.VocabEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		if _, ok := seen[e.Raw]; ok {
			continue
		}
		seen[e.Raw] = struct{}{}
		out = append(out, e)
	}
	return out
}

// takeFirst returns the first n elements, or the whole slice if it is shorter.
func takeFirst(entries []*entities.VocabEntry, n int) []*entities.VocabEntry {
	if n <= 0 {
		return nil
	}
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}
