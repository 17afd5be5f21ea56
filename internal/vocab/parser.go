// Package vocab parses vocabulary lines into entries.
//
// A line holds two sides separated by ';'. Each side may list synonyms with
// '/', word alternatives with '|', and notes in parentheses; a note starting
// with "lit:" is a literal-translation hint. A backslash escapes any of
// ; / | ( ) \ so it is read as plain text.
//
//	hello (formal);buongiorno
//	the cloud;la nuvola|nube
//	good luck (lit: in the mouth of the wolf);in bocca al lupo
//
// Everything in this package is a pure function of its input.
package vocab

import (
	"errors"
	"strings"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

const sideSep = ";"

// ParseLine converts one raw line into a vocabulary entry.
// The returned error is a *ParseError wrapping ErrMalformedEntry or
// ErrEmptyExpansion. Origin is left empty; LoadSource fills it in.
func ParseLine(raw string) (entities.VocabEntry, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return entities.VocabEntry{}, malformed("empty line")
	}

	left, right, ok := strings.Cut(protect(line), sideSep)
	if !ok {
		return entities.VocabEntry{}, malformed("missing %q separator", sideSep)
	}
	if strings.Contains(right, sideSep) {
		return entities.VocabEntry{}, malformed("more than one %q separator", sideSep)
	}

	lang1, err := parseSide(left, "first")
	if err != nil {
		return entities.VocabEntry{}, err
	}
	lang2, err := parseSide(right, "second")
	if err != nil {
		return entities.VocabEntry{}, err
	}

	return entities.VocabEntry{
		Raw:   line,
		Lang1: lang1,
		Lang2: lang2,
	}, nil
}

// parseSide works on protected text and restores escapes on the way out.
func parseSide(text, name string) (entities.Side, error) {
	if strings.TrimSpace(text) == "" {
		return entities.Side{}, malformed("%s side is empty", name)
	}

	x, err := extract(text)
	if err != nil {
		return entities.Side{}, labelSide(err, name)
	}

	candidates, err := expand(x.Core)
	if err != nil {
		return entities.Side{}, labelSide(err, name)
	}

	return entities.Side{
		Text:        unprotect(x.Core),
		Candidates:  unprotectAll(candidates),
		Notes:       unprotectAll(x.Notes),
		LiteralHint: unprotect(x.LiteralHint),
	}, nil
}

func labelSide(err error, name string) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.Reason = name + " side: " + perr.Reason
	}
	return err
}
