package service

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
	"github.com/aliskhannn/vocab-trainer/internal/vocab"
)

// AnswerValidator checks typed responses against the accepted forms of an entry.
// A response is correct only when it equals one accepted form after
// normalization; the edit distance is reported for feedback and never
// turns a miss into a hit.
type AnswerValidator struct {
	opts vocab.NormalizeOptions
}

// ValidatorOption configures an AnswerValidator.
type ValidatorOption func(*AnswerValidator)

// WithFoldAccents makes "perche" match "perché".
func WithFoldAccents(enabled bool) ValidatorOption {
	return func(v *AnswerValidator) { v.opts.FoldAccents = enabled }
}

// WithIgnorePunctuation makes "ciao" match "ciao!".
func WithIgnorePunctuation(enabled bool) ValidatorOption {
	return func(v *AnswerValidator) { v.opts.IgnorePunctuation = enabled }
}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator(opts ...ValidatorOption) *AnswerValidator {
	v := &AnswerValidator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewAnswerValidator()

// IsMatch reports whether response is an accepted answer for entry in the given direction.
func IsMatch(entry *entities.VocabEntry, response string, dir entities.Direction) bool {
	return defaultValidator.Match(entry, response, dir).Correct
}

// Match checks response against the answer side of entry.
func (v *AnswerValidator) Match(entry *entities.VocabEntry, response string, dir entities.Direction) entities.MatchResult {
	if entry == nil {
		return entities.MatchResult{Distance: -1}
	}
	return v.MatchCandidates(entry.Answer(dir).Candidates, response)
}

// MatchCandidates checks response against an explicit list of accepted forms.
// The response may carry its own parenthetical notes; accepted forms are
// compared as parsed.
func (v *AnswerValidator) MatchCandidates(candidates []string, response string) entities.MatchResult {
	result := entities.MatchResult{Distance: -1}

	forms := vocab.ResponseForms(response, v.opts)
	if len(forms) == 0 {
		return result
	}

	for _, c := range candidates {
		norm := v.normalize(c)
		if norm == "" {
			continue
		}
		for _, user := range forms {
			if norm == user {
				return entities.MatchResult{Correct: true, MatchedForm: c, Distance: 0}
			}

			d := levenshtein.ComputeDistance(user, norm)
			if result.Distance < 0 || d < result.Distance {
				result.Nearest = c
				result.Distance = d
			}
		}
	}

	return result
}

// Close reports whether a missed response was within a typo of the nearest form:
// one edit per five characters, at least one.
func (v *AnswerValidator) Close(result entities.MatchResult) bool {
	if result.Correct || result.Distance < 0 {
		return false
	}
	limit := max(1, utf8.RuneCountInString(result.Nearest)/5)
	return result.Distance <= limit
}

// Equivalent reports whether a typed response names the accepted form under
// the validator's options.
func (v *AnswerValidator) Equivalent(response, form string) bool {
	return v.MatchCandidates([]string{form}, response).Correct
}

func (v *AnswerValidator) normalize(s string) string {
	return vocab.NormalizeWith(s, v.opts)
}
