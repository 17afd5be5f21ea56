package service

import (
	"context"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

// practiceMode asks for the translation of each prompt. Any wrong attempt
// marks the entry as missed; the answers are revealed after the last attempt.
type practiceMode struct {
	modeBase
}

func (m *practiceMode) Review(ctx context.Context, turn Turn) (entities.Outcome, error) {
	out := entities.Outcome{Entry: turn.Entry}

	m.presenter.Banner(turn.Number, turn.Total)
	m.presenter.Question(turn.Entry.Prompt(turn.Direction), m.display)

	for out.Attempts < m.settings.MaxAttempts {
		response, err := m.presenter.Ask(ctx)
		if err != nil {
			return out, err
		}
		out.Attempts++
		out.Response = response
		out.Result = m.settings.Validator.Match(turn.Entry, response, turn.Direction)
		m.presenter.Feedback(out.Result, m.settings.Validator.Close(out.Result))

		if out.Result.Correct {
			break
		}
		if !out.Missed {
			out.Missed = true
			m.recordMissed(turn.Entry)
		}
	}

	m.presenter.Reveal(turn.Entry.Answer(turn.Direction))
	if out.Missed {
		if err := m.presenter.Pause(ctx); err != nil {
			return out, err
		}
	}
	return out, nil
}
