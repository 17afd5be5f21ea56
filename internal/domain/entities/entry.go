// Package entities contains domain entities used across the application.
package entities

import "strings"

// Direction selects which language is asked and which one is tested.
type Direction string

const (
	// ToLang2 prompts with the first column and expects the second.
	ToLang2 Direction = "to_lang2"
	// ToLang1 prompts with the second column and expects the first.
	ToLang1 Direction = "to_lang1"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == ToLang2 || d == ToLang1
}

// LanguageName describes one language column of a vocabulary source.
type LanguageName struct {
	Short string `mapstructure:"short" validate:"required"` // language code, e.g. "it"
	Full  string `mapstructure:"full" validate:"required"`  // display name, e.g. "Italian"
}

// Origin identifies the source line an entry was parsed from.
type Origin struct {
	File string // source name, usually a file path
	Line int    // 1-based line number
}

// Side is one language column of a vocabulary entry.
type Side struct {
	Text        string   // matchable text with annotations removed, before expansion
	Candidates  []string // expanded accepted forms; Candidates[0] is the display form
	Notes       []string // plain parenthetical annotations in source order
	LiteralHint string   // gloss from the first "(lit: ...)" group
}

// Display returns the canonical display form of the side.
func (s Side) Display() string {
	if len(s.Candidates) == 0 {
		return s.Text
	}
	return s.Candidates[0]
}

var noteEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`)

// Annotation joins the plain notes of the side with "; ".
// A ';' or '\' inside a note is written back escaped, as in the source line,
// so "(a\; b)" and "(a) (b)" give different results.
func (s Side) Annotation() string {
	if len(s.Notes) == 0 {
		return ""
	}
	escaped := make([]string, len(s.Notes))
	for i, n := range s.Notes {
		escaped[i] = noteEscaper.Replace(n)
	}
	return strings.Join(escaped, "; ")
}

// HasAnnotation reports whether the side carried at least one plain note, including "()".
func (s Side) HasAnnotation() bool {
	return len(s.Notes) > 0
}

// VocabEntry is one parsed vocabulary line.
type VocabEntry struct {
	Raw    string // source line as read, trimmed
	Origin Origin
	Lang1  Side
	Lang2  Side
}

// Prompt returns the side shown to the user for the given direction.
func (e *VocabEntry) Prompt(dir Direction) Side {
	if dir == ToLang1 {
		return e.Lang2
	}
	return e.Lang1
}

// Answer returns the side the user's response is tested against.
func (e *VocabEntry) Answer(dir Direction) Side {
	if dir == ToLang1 {
		return e.Lang1
	}
	return e.Lang2
}

// MatchResult is the outcome of checking one response against an entry.
type MatchResult struct {
	Correct     bool   // response equals one accepted form after normalization
	MatchedForm string // the accepted form that matched, empty on a miss
	Nearest     string // closest accepted form on a miss, for feedback only
	Distance    int    // edit distance to Nearest, -1 when not computed
}
