package vocab

import (
	"strings"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

const literalPrefix = "lit:"

// Extraction is the result of separating parenthetical text from a side.
type Extraction struct {
	Core        string   // text without parenthetical groups, whitespace collapsed
	Notes       []string // plain groups in source order, "()" yields ""
	LiteralHint string   // content of the first "(lit: ...)" group
	HasHint     bool     // a "lit:" group was present
}

// Annotation joins the plain notes the same way entities.Side does.
func (x Extraction) Annotation() string {
	return entities.Side{Notes: x.Notes}.Annotation()
}

// Extract splits text into matchable core text, plain annotations and a
// literal-translation hint. Nested parentheses stay inside the enclosing
// group. An unmatched '(' or ')' is reported as ErrMalformedEntry.
func Extract(text string) (Extraction, error) {
	x, err := extract(protect(text))
	if err != nil {
		return Extraction{}, err
	}

	x.Core = unprotect(x.Core)
	x.Notes = unprotectAll(x.Notes)
	x.LiteralHint = unprotect(x.LiteralHint)
	return x, nil
}

// StripAnnotations removes parenthetical groups from free text such as a
// typed response. Text with unbalanced parentheses is only whitespace-collapsed.
func StripAnnotations(text string) string {
	x, err := extract(text)
	if err != nil {
		return collapseSpaces(text)
	}
	return x.Core
}

func extract(text string) (Extraction, error) {
	var (
		out   Extraction
		core  strings.Builder
		group strings.Builder
		depth int
	)

	for _, r := range text {
		switch {
		case r == '(':
			if depth > 0 {
				group.WriteRune(r)
			}
			depth++
		case r == ')':
			if depth == 0 {
				return Extraction{}, malformed("unmatched ')' in %q", unprotect(text))
			}
			depth--
			if depth > 0 {
				group.WriteRune(r)
				continue
			}
			out.addGroup(group.String())
			group.Reset()
		case depth > 0:
			group.WriteRune(r)
		default:
			core.WriteRune(r)
		}
	}

	if depth > 0 {
		return Extraction{}, malformed("unmatched '(' in %q", unprotect(text))
	}

	out.Core = collapseSpaces(core.String())
	return out, nil
}

// addGroup classifies one group. Only the first "lit:" group becomes the
// hint, later ones are kept verbatim as notes.
func (x *Extraction) addGroup(content string) {
	content = strings.TrimSpace(content)
	if hint, ok := cutLiteralPrefix(content); ok && !x.HasHint {
		x.LiteralHint = hint
		x.HasHint = true
		return
	}
	x.Notes = append(x.Notes, content)
}

func cutLiteralPrefix(s string) (string, bool) {
	if len(s) < len(literalPrefix) || !strings.EqualFold(s[:len(literalPrefix)], literalPrefix) {
		return "", false
	}
	return strings.TrimSpace(s[len(literalPrefix):]), true
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
