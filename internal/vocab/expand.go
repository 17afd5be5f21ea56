package vocab

import (
	"regexp"
	"strings"
)

const (
	synonymSep     = "/"
	alternativeSep = "|"

	// trailingPunct is copied from the last '|' alternative to the others.
	trailingPunct = ",.!?"
)

var spacedAlternative = regexp.MustCompile(`\s*\|\s*`)

// Expand turns a fragment written in the synonym ('/') and alternate-word
// ('|') notation into the full list of candidate strings, in source order
// and without duplicates.
//
// '/' separates whole-phrase synonyms. Inside a phrase, "a|b" offers b as an
// alternative to the words written since the previous '|' group (or the
// start of the phrase), so "la nuvola|nube" means "la nuvola" or "nube" and
// "Hello|Hi there." means "Hello there." or "Hi there.". Groups in the same
// phrase combine as a Cartesian product. A fragment with no non-empty
// alternative fails with ErrEmptyExpansion.
func Expand(text string) ([]string, error) {
	candidates, err := expand(protect(text))
	if err != nil {
		return nil, err
	}
	return unprotectAll(candidates), nil
}

func expand(text string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})

	for _, phrase := range strings.Split(text, synonymSep) {
		for _, c := range expandPhrase(phrase) {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	if len(out) == 0 {
		return nil, emptyExpansion("%q yields no candidates", unprotect(strings.TrimSpace(text)))
	}
	return out, nil
}

func expandPhrase(phrase string) []string {
	phrase = spacedAlternative.ReplaceAllString(phrase, alternativeSep)

	var (
		segments [][]string
		pending  []string
	)
	for _, tok := range strings.Fields(phrase) {
		if !strings.Contains(tok, alternativeSep) {
			pending = append(pending, tok)
			continue
		}

		alts := strings.Split(tok, alternativeSep)
		alts[0] = strings.Join(append(pending, alts[0]), " ")
		pending = nil

		if alts = propagatePunct(compact(alts)); len(alts) > 0 {
			segments = append(segments, alts)
		}
	}
	if len(pending) > 0 {
		segments = append(segments, []string{strings.Join(pending, " ")})
	}

	return product(segments)
}

// compact trims alternatives and drops the empty ones.
func compact(alts []string) []string {
	out := alts[:0]
	for _, a := range alts {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// propagatePunct copies trailing punctuation of the last alternative to the
// others that have none, so "Hello|Hi there!" style groups stay consistent.
func propagatePunct(alts []string) []string {
	if len(alts) < 2 {
		return alts
	}

	last := alts[len(alts)-1]
	trimmed := strings.TrimRight(last, trailingPunct)
	suffix := last[len(trimmed):]
	if suffix == "" {
		return alts
	}

	for i := range alts[:len(alts)-1] {
		if strings.TrimRight(alts[i], trailingPunct) == alts[i] {
			alts[i] += suffix
		}
	}
	return alts
}

func product(segments [][]string) []string {
	if len(segments) == 0 {
		return nil
	}

	out := []string{""}
	for _, seg := range segments {
		next := make([]string, 0, len(out)*len(seg))
		for _, prefix := range out {
			for _, alt := range seg {
				if prefix == "" {
					next = append(next, alt)
				} else {
					next = append(next, prefix+" "+alt)
				}
			}
		}
		out = next
	}
	return out
}
