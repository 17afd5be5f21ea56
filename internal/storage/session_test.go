package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

func TestSessionStorage(t *testing.T) {
	s := NewSessionStorage()

	_, ok := s.Last()
	assert.False(t, ok)

	first := entities.NewReviewSession("practice", entities.ToLang2, 3)
	second := entities.NewReviewSession("rapid", entities.ToLang1, 5)
	s.Store(first)
	s.Store(second)
	s.Store(first)

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, second.ID, last.ID)
	assert.Equal(t, []*entities.ReviewSession{first, second}, s.All())

	got, ok := s.Get(first.ID)
	require.True(t, ok)
	assert.Same(t, first, got)

	s.Delete(second.ID)
	s.Delete(uuid.New())
	last, ok = s.Last()
	require.True(t, ok)
	assert.Equal(t, first.ID, last.ID)
	assert.Len(t, s.All(), 1)
}
