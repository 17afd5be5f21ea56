package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

const (
	utf8BOM     = "\xef\xbb\xbf"
	maxLineSize = 1024 * 1024
)

// Source is the result of loading one vocabulary source.
type Source struct {
	Name    string
	Entries []*entities.VocabEntry
	Errors  []*ParseError // rejected lines, in line order
	Skipped int           // blank and comment lines
}

// LoadFile opens path and loads it with LoadSource.
func LoadFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	return LoadSource(path, f)
}

// LoadSource parses every line of r. Blank lines and lines starting with
// '#' or "//" are skipped. A rejected line is recorded in Source.Errors and
// loading continues. When no line yields an entry the returned error is a
// *SourceError wrapping ErrNoValidEntries; the partial Source is returned
// with it so callers can still report the line errors.
func LoadSource(name string, r io.Reader) (*Source, error) {
	src := &Source{Name: name}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		if isSkippable(line) {
			src.Skipped++
			continue
		}

		entry, err := parseSourceLine(line)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("parse %s:%d: %w", name, lineNo, err)
			}
			perr.File = name
			perr.Line = lineNo
			perr.Raw = strings.TrimSpace(line)
			src.Errors = append(src.Errors, perr)
			continue
		}

		entry.Origin = entities.Origin{File: name, Line: lineNo}
		src.Entries = append(src.Entries, &entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read source %s: %w", name, err)
	}

	if len(src.Entries) == 0 {
		return src, &SourceError{Source: name, Errors: src.Errors}
	}
	return src, nil
}

func parseSourceLine(line string) (entities.VocabEntry, error) {
	if !utf8.ValidString(line) {
		return entities.VocabEntry{}, malformed("line is not valid UTF-8")
	}
	return ParseLine(line)
}

func isSkippable(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}
