package service

import (
	"math/rand"
	"time"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

const defaultOptionCount = 4

// OptionGenerator builds multiple choice questions, taking wrong options
// from the answers of other entries in the pool.
type OptionGenerator struct {
	pool      []*entities.VocabEntry
	validator *AnswerValidator
	rng       *rand.Rand
}

// NewOptionGenerator creates a new option generator over pool.
func NewOptionGenerator(pool []*entities.VocabEntry, validator *AnswerValidator) *OptionGenerator {
	return NewOptionGeneratorWithSource(pool, validator, rand.NewSource(time.Now().UnixNano()))
}

// NewOptionGeneratorWithSource is NewOptionGenerator with a fixed random source.
func NewOptionGeneratorWithSource(pool []*entities.VocabEntry, validator *AnswerValidator, src rand.Source) *OptionGenerator {
	if validator == nil {
		validator = defaultValidator
	}
	return &OptionGenerator{
		pool:      pool,
		validator: validator,
		rng:       rand.New(src),
	}
}

// Generate creates a question for target with up to count options, one of
// them correct. Fewer options are returned when the pool is too small.
func (g *OptionGenerator) Generate(target *entities.VocabEntry, dir entities.Direction, count int) entities.Question {
	if count < 2 {
		count = defaultOptionCount
	}

	answer := target.Answer(dir)
	correct := answer.Display()
	wrong := g.generateWrongOptions(target, dir, count-1)

	options := make([]string, 0, 1+len(wrong))
	options = append(options, correct)
	options = append(options, wrong...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == correct {
			correctIndex = i
			break
		}
	}

	return entities.Question{
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// generateWrongOptions picks answers of other entries that are not accepted
// forms of the target and not equivalent to each other.
func (g *OptionGenerator) generateWrongOptions(target *entities.VocabEntry, dir entities.Direction, count int) []string {
	candidates := make([]*entities.VocabEntry, 0, len(g.pool))
	for _, e := range g.pool {
		if e != nil && e != target && e.Raw != target.Raw {
			candidates = append(candidates, e)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	accepted := target.Answer(dir).Candidates
	wrong := make([]string, 0, count)
	for _, c := range candidates {
		if len(wrong) >= count {
			break
		}

		text := c.Answer(dir).Display()
		if g.validator.MatchCandidates(accepted, text).Correct {
			continue
		}
		if g.validator.MatchCandidates(wrong, text).Correct {
			continue
		}
		wrong = append(wrong, text)
	}

	return wrong
}
