package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

var errOutOfInput = errors.New("out of input")

// fakePresenter replays scripted input and records what was shown.
type fakePresenter struct {
	responses []string
	confirms  []bool

	banners   []int
	questions []entities.Side
	options   [][]string
	feedback  []entities.MatchResult
	closeHits int
	revealed  []entities.Side
	notices   []string
	pauses    int
}

func (p *fakePresenter) Banner(current, _ int) { p.banners = append(p.banners, current) }

func (p *fakePresenter) Question(side entities.Side, _ DisplayOptions) {
	p.questions = append(p.questions, side)
}

func (p *fakePresenter) Options(options []string) { p.options = append(p.options, options) }

func (p *fakePresenter) Feedback(result entities.MatchResult, close bool) {
	p.feedback = append(p.feedback, result)
	if close {
		p.closeHits++
	}
}

func (p *fakePresenter) Reveal(side entities.Side) { p.revealed = append(p.revealed, side) }

func (p *fakePresenter) Notice(text string) { p.notices = append(p.notices, text) }

func (p *fakePresenter) Ask(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(p.responses) == 0 {
		return "", errOutOfInput
	}
	r := p.responses[0]
	p.responses = p.responses[1:]
	return r, nil
}

func (p *fakePresenter) Confirm(ctx context.Context, _ string, _ bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if len(p.confirms) == 0 {
		return false, errOutOfInput
	}
	c := p.confirms[0]
	p.confirms = p.confirms[1:]
	return c, nil
}

func (p *fakePresenter) Pause(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.pauses++
	return nil
}

type fakeRecorder struct {
	lines []string
	err   error
}

func (r *fakeRecorder) AppendLine(line string) error {
	if r.err != nil {
		return r.err
	}
	r.lines = append(r.lines, line)
	return nil
}
