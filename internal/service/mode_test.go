package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

func turnFor(entry *entities.VocabEntry) Turn {
	return Turn{Entry: entry, Number: 1, Total: 1, Direction: entities.ToLang2}
}

func TestNewMode_Unknown(t *testing.T) {
	_, err := NewMode("listen", &fakePresenter{}, ModeSettings{})
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestNewMode_Names(t *testing.T) {
	for _, name := range ModeNames {
		mode, err := NewMode(name, &fakePresenter{}, ModeSettings{})
		require.NoError(t, err)
		assert.Equal(t, name, mode.Name())
	}
}

func TestPracticeMode_SecondAttempt(t *testing.T) {
	entry := mustEntry(t, "goodbye;arrivederci")
	missed := &fakeRecorder{}
	p := &fakePresenter{responses: []string{"arivederci", "arrivederci"}}

	mode, err := NewMode(ModePractice, p, ModeSettings{MaxAttempts: 3, Missed: missed})
	require.NoError(t, err)

	out, err := mode.Review(context.Background(), turnFor(entry))
	require.NoError(t, err)

	assert.True(t, out.Missed)
	assert.True(t, out.Result.Correct)
	assert.Equal(t, 2, out.Attempts)
	assert.Equal(t, "arrivederci", out.Response)
	assert.Equal(t, []string{"goodbye;arrivederci"}, missed.lines)
	assert.Equal(t, 1, p.closeHits)
	require.Len(t, p.revealed, 1)
	assert.Equal(t, []string{"arrivederci"}, p.revealed[0].Candidates)
}

func TestPracticeMode_RecordsMissOnce(t *testing.T) {
	entry := mustEntry(t, "hello;ciao")
	missed := &fakeRecorder{}
	p := &fakePresenter{responses: []string{"a", "b"}}

	mode, err := NewMode(ModePractice, p, ModeSettings{MaxAttempts: 2, Missed: missed})
	require.NoError(t, err)

	out, err := mode.Review(context.Background(), turnFor(entry))
	require.NoError(t, err)
	assert.True(t, out.Missed)
	assert.False(t, out.Result.Correct)
	assert.Len(t, missed.lines, 1)
	assert.Equal(t, 1, p.pauses)
}

func TestPracticeMode_RecorderFailureIsNotFatal(t *testing.T) {
	entry := mustEntry(t, "hello;ciao")
	p := &fakePresenter{responses: []string{"no"}}

	mode, err := NewMode(ModePractice, p, ModeSettings{Missed: &fakeRecorder{err: errors.New("disk full")}})
	require.NoError(t, err)

	out, err := mode.Review(context.Background(), turnFor(entry))
	require.NoError(t, err)
	assert.True(t, out.Missed)
}

func TestRapidMode(t *testing.T) {
	entry := mustEntry(t, "hello;ciao")

	t.Run("marked as missed", func(t *testing.T) {
		missed, output := &fakeRecorder{}, &fakeRecorder{}
		p := &fakePresenter{confirms: []bool{true}}
		mode, err := NewMode(ModeRapid, p, ModeSettings{Missed: missed, Output: output})
		require.NoError(t, err)

		out, err := mode.Review(context.Background(), turnFor(entry))
		require.NoError(t, err)
		assert.True(t, out.Missed)
		assert.Equal(t, []string{"hello;ciao"}, missed.lines)
		assert.Equal(t, []string{"hello;ciao"}, output.lines)
		assert.Len(t, p.revealed, 1)
	})

	t.Run("known", func(t *testing.T) {
		missed := &fakeRecorder{}
		p := &fakePresenter{confirms: []bool{false}}
		mode, err := NewMode(ModeRapid, p, ModeSettings{Missed: missed})
		require.NoError(t, err)

		out, err := mode.Review(context.Background(), turnFor(entry))
		require.NoError(t, err)
		assert.False(t, out.Missed)
		assert.True(t, out.Result.Correct)
		assert.Empty(t, missed.lines)
	})

	t.Run("without missed file", func(t *testing.T) {
		p := &fakePresenter{}
		mode, err := NewMode(ModeRapid, p, ModeSettings{})
		require.NoError(t, err)

		out, err := mode.Review(context.Background(), turnFor(entry))
		require.NoError(t, err)
		assert.False(t, out.Missed)
		assert.Equal(t, 2, p.pauses)
	})
}

func TestLearnMode(t *testing.T) {
	entry := mustEntry(t, "the cloud;la nuvola|nube")

	t.Run("copied and recalled", func(t *testing.T) {
		p := &fakePresenter{responses: []string{"la nuvla", "nube", "la nuvola"}}
		mode, err := NewMode(ModeLearn, p, ModeSettings{MaxAttempts: 2})
		require.NoError(t, err)

		out, err := mode.Review(context.Background(), turnFor(entry))
		require.NoError(t, err)
		assert.False(t, out.Missed)
		assert.Equal(t, 1, out.Attempts)
		assert.Len(t, p.feedback, 2)
		assert.Equal(t, []string{msgCopyAnswer, msgRecallAnswer}, p.notices)
	})

	t.Run("forgotten", func(t *testing.T) {
		missed := &fakeRecorder{}
		p := &fakePresenter{responses: []string{"nube", "nuvola", "cielo"}}
		mode, err := NewMode(ModeLearn, p, ModeSettings{MaxAttempts: 2, Missed: missed})
		require.NoError(t, err)

		out, err := mode.Review(context.Background(), turnFor(entry))
		require.NoError(t, err)
		assert.True(t, out.Missed)
		assert.Equal(t, 2, out.Attempts)
		assert.Equal(t, []string{"the cloud;la nuvola|nube"}, missed.lines)
	})
}

func TestChoiceMode(t *testing.T) {
	pool := []*entities.VocabEntry{
		mustEntry(t, "hello;ciao"),
		mustEntry(t, "thanks;grazie"),
		mustEntry(t, "please;per favore"),
	}

	t.Run("picked by text", func(t *testing.T) {
		p := &fakePresenter{responses: []string{"9", "CIAO"}}
		mode, err := NewMode(ModeChoice, p, ModeSettings{Options: 4, Pool: pool})
		require.NoError(t, err)

		out, err := mode.Review(context.Background(), turnFor(pool[0]))
		require.NoError(t, err)
		assert.False(t, out.Missed)
		assert.Equal(t, 1, out.Attempts)
		assert.Equal(t, []string{msgPickOption}, p.notices)
		require.Len(t, p.options, 1)
		assert.ElementsMatch(t, []string{"ciao", "grazie", "per favore"}, p.options[0])
	})

	t.Run("wrong pick", func(t *testing.T) {
		missed := &fakeRecorder{}
		p := &fakePresenter{responses: []string{"grazie"}}
		mode, err := NewMode(ModeChoice, p, ModeSettings{Options: 4, Pool: pool, Missed: missed})
		require.NoError(t, err)

		out, err := mode.Review(context.Background(), turnFor(pool[0]))
		require.NoError(t, err)
		assert.True(t, out.Missed)
		assert.Equal(t, "grazie", out.Response)
		assert.Len(t, missed.lines, 1)
	})

	t.Run("picked by number", func(t *testing.T) {
		p := &fakePresenter{responses: []string{"1"}}
		mode, err := NewMode(ModeChoice, p, ModeSettings{Options: 2, Pool: pool[:2]})
		require.NoError(t, err)

		out, err := mode.Review(context.Background(), turnFor(pool[0]))
		require.NoError(t, err)
		require.Len(t, p.options, 1)
		assert.Equal(t, p.options[0][0] == "ciao", out.Result.Correct)
	})
}
