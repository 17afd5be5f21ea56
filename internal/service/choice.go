package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

// choiceMode asks the user to pick the answer among options taken from
// other entries. An option can be picked by number or by typing it.
type choiceMode struct {
	modeBase
	generator *OptionGenerator
}

func (m *choiceMode) Review(ctx context.Context, turn Turn) (entities.Outcome, error) {
	out := entities.Outcome{Entry: turn.Entry, Result: entities.MatchResult{Distance: -1}}
	q := m.generator.Generate(turn.Entry, turn.Direction, m.settings.Options)

	m.presenter.Banner(turn.Number, turn.Total)
	m.presenter.Question(turn.Entry.Prompt(turn.Direction), m.display)
	m.presenter.Options(q.Options)

	for out.Attempts < m.settings.MaxAttempts {
		response, err := m.presenter.Ask(ctx)
		if err != nil {
			return out, err
		}

		idx, ok := m.pick(response, q.Options)
		if !ok {
			m.presenter.Notice(msgPickOption)
			continue
		}
		out.Attempts++
		out.Response = q.Options[idx]
		out.Result = entities.MatchResult{Distance: -1}
		if idx == q.CorrectIndex {
			out.Result = entities.MatchResult{Correct: true, MatchedForm: q.CorrectAnswer()}
		}
		m.presenter.Feedback(out.Result, false)

		if out.Result.Correct {
			break
		}
		if !out.Missed {
			out.Missed = true
			m.recordMissed(turn.Entry)
		}
	}

	m.presenter.Reveal(turn.Entry.Answer(turn.Direction))
	return out, nil
}

// pick resolves a response to an option index: a 1-based number or the option text.
func (m *choiceMode) pick(response string, options []string) (int, bool) {
	response = strings.TrimSpace(response)
	if n, err := strconv.Atoi(response); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	for i, opt := range options {
		if response != "" && m.settings.Validator.Equivalent(response, opt) {
			return i, true
		}
	}
	return 0, false
}
