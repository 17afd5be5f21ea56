package service

import (
	"context"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

// learnMode shows the answer and has the user copy it, then asks for it
// again from memory.
type learnMode struct {
	modeBase
}

func (m *learnMode) Review(ctx context.Context, turn Turn) (entities.Outcome, error) {
	out := entities.Outcome{Entry: turn.Entry}
	prompt := turn.Entry.Prompt(turn.Direction)
	answer := turn.Entry.Answer(turn.Direction)

	if err := m.copyAnswer(ctx, turn, prompt, answer); err != nil {
		return out, err
	}

	m.presenter.Banner(turn.Number, turn.Total)
	m.presenter.Notice(msgRecallAnswer)
	m.presenter.Question(prompt, DisplayOptions{})

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
	}

	if !out.Result.Correct {
		out.Missed = true
		m.recordMissed(turn.Entry)
	}
	m.presenter.Reveal(answer)
	return out, nil
}

// copyAnswer repeats until the displayed answer is typed back.
func (m *learnMode) copyAnswer(ctx context.Context, turn Turn, prompt, answer entities.Side) error {
	m.presenter.Banner(turn.Number, turn.Total)
	m.presenter.Notice(msgCopyAnswer)
	m.presenter.Question(prompt, m.display)
	m.presenter.Reveal(answer)

	for {
		response, err := m.presenter.Ask(ctx)
		if err != nil {
			return err
		}
		result := m.settings.Validator.MatchCandidates(answer.Candidates, response)
		if result.Correct {
			return nil
		}
		m.presenter.Feedback(result, m.settings.Validator.Close(result))
	}
}
