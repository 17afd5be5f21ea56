package service

import (
	"context"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

// rapidMode is a self-graded flashcard: the prompt is shown, the answer is
// revealed on a key press and the user decides whether it was missed.
// Without a missed file every card counts as known.
type rapidMode struct {
	modeBase
}

func (m *rapidMode) Review(ctx context.Context, turn Turn) (entities.Outcome, error) {
	out := entities.Outcome{Entry: turn.Entry, Attempts: 1, Result: entities.MatchResult{Distance: -1}}
	prompt := turn.Entry.Prompt(turn.Direction)

	m.presenter.Banner(turn.Number, turn.Total)
	m.presenter.Question(prompt, m.display)
	if err := m.presenter.Pause(ctx); err != nil {
		return out, err
	}

	m.presenter.Banner(turn.Number, turn.Total)
	m.presenter.Question(prompt, m.display)
	m.presenter.Reveal(turn.Entry.Answer(turn.Direction))
	m.recordOutput(turn.Entry)

	if m.settings.Missed == nil {
		out.Result.Correct = true
		return out, m.presenter.Pause(ctx)
	}

	missed, err := m.presenter.Confirm(ctx, msgAddToMissed, false)
	if err != nil {
		return out, err
	}
	if missed {
		out.Missed = true
		m.recordMissed(turn.Entry)
	} else {
		out.Result.Correct = true
	}
	return out, nil
}
