package vocab

import "strings"

// Escaped grammar characters are swapped for private-use runes while the
// line is parsed and restored once the candidates are built.
var escapes = map[rune]rune{
	';':  '\uE000',
	'/':  '\uE001',
	'|':  '\uE002',
	'(':  '\uE003',
	')':  '\uE004',
	'\\': '\uE005',
}

var unescaper = strings.NewReplacer(
	"\uE000", ";",
	"\uE001", "/",
	"\uE002", "|",
	"\uE003", "(",
	"\uE004", ")",
	"\uE005", `\`,
)

// protect replaces backslash-escaped grammar characters with placeholders.
// A backslash before any other character is kept as is.
func protect(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			if p, ok := escapes[runes[i+1]]; ok {
				b.WriteRune(p)
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func unprotect(s string) string {
	return unescaper.Replace(s)
}

func unprotectAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = unprotect(s)
	}
	return out
}
