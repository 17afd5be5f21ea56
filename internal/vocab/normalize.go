package vocab

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions enables optional, looser comparisons.
// The zero value gives exact comparison after case and whitespace folding.
type NormalizeOptions struct {
	FoldAccents       bool // "perché" compares equal to "perche"
	IgnorePunctuation bool // "Hello." compares equal to "hello"
}

// Normalize prepares text for comparison with the default options.
func Normalize(s string) string {
	return NormalizeWith(s, NormalizeOptions{})
}

// NormalizeWith applies NFC and full Unicode case folding and collapses
// whitespace runs into single spaces. Parentheses are ordinary characters
// here: accepted forms come out of ParseLine with escapes already resolved.
func NormalizeWith(s string, opts NormalizeOptions) string {
	s = norm.NFC.String(s)
	s = cases.Fold().String(s)

	if opts.FoldAccents {
		s = foldAccents(s)
	}
	if opts.IgnorePunctuation {
		s = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) {
				return -1
			}
			return r
		}, s)
	}

	return collapseSpaces(s)
}

// ResponseForms returns the normalized forms a typed response is compared
// under: the text as typed, then the text with parenthetical groups removed.
// Empty and repeated forms are dropped.
func ResponseForms(response string, opts NormalizeOptions) []string {
	var forms []string
	for _, s := range []string{response, StripAnnotations(response)} {
		n := NormalizeWith(s, opts)
		if n == "" || slices.Contains(forms, n) {
			continue
		}
		forms = append(forms, n)
	}
	return forms
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
