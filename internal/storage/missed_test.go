package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

func TestMissedSet(t *testing.T) {
	a := &entities.VocabEntry{Raw: "a;b"}
	b := &entities.VocabEntry{Raw: "c;d"}

	m := NewMissedSet()
	assert.Equal(t, 0, m.Len())

	assert.True(t, m.Add(b))
	assert.True(t, m.Add(a))
	assert.False(t, m.Add(b))
	assert.False(t, m.Add(nil))

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []*entities.VocabEntry{b, a}, m.Items())

	items := m.Items()
	items[0] = nil
	assert.Equal(t, b, m.Items()[0])
}
