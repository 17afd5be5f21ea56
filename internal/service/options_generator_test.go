package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

func TestOptionGenerator_Generate(t *testing.T) {
	pool := []*entities.VocabEntry{
		mustEntry(t, "hello;ciao/salve"),
		mustEntry(t, "hi;Ciao"),
		mustEntry(t, "thanks;grazie"),
		mustEntry(t, "please;per favore"),
		mustEntry(t, "sorry;scusa"),
		mustEntry(t, "thank you;grazie"),
	}
	g := NewOptionGeneratorWithSource(pool, nil, rand.NewSource(3))

	q := g.Generate(pool[0], entities.ToLang2, 4)
	require.Len(t, q.Options, 4)
	assert.Equal(t, "ciao", q.CorrectAnswer())
	assert.Equal(t, "ciao", q.Options[q.CorrectIndex])

	seen := map[string]bool{}
	for i, opt := range q.Options {
		assert.False(t, seen[opt], "duplicate option %q", opt)
		seen[opt] = true
		if i != q.CorrectIndex {
			assert.NotEqual(t, "Ciao", opt)
			assert.NotEqual(t, "salve", opt)
		}
	}
}

func TestOptionGenerator_SmallPool(t *testing.T) {
	pool := []*entities.VocabEntry{
		mustEntry(t, "hello;ciao"),
		mustEntry(t, "thanks;grazie"),
	}
	q := NewOptionGeneratorWithSource(pool, nil, rand.NewSource(1)).Generate(pool[1], entities.ToLang1, 4)

	assert.ElementsMatch(t, []string{"thanks", "hello"}, q.Options)
	assert.Equal(t, "thanks", q.CorrectAnswer())
}
