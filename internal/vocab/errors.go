package vocab

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEntry reports a structural violation of the line grammar.
	ErrMalformedEntry = errors.New("malformed entry")
	// ErrEmptyExpansion reports a side that expands to no candidate strings.
	ErrEmptyExpansion = errors.New("empty expansion")
	// ErrNoValidEntries reports a source that produced no entries at all.
	ErrNoValidEntries = errors.New("no valid entries")
)

// ParseError describes why a single line was rejected.
// Kind is ErrMalformedEntry or ErrEmptyExpansion; File, Line and Raw are
// filled in by the source loader.
type ParseError struct {
	Kind   error
	File   string
	Line   int
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %v: %s", e.File, e.Line, e.Kind, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v: %s", e.Line, e.Kind, e.Reason)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func malformed(format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrMalformedEntry, Reason: fmt.Sprintf(format, args...)}
}

func emptyExpansion(format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrEmptyExpansion, Reason: fmt.Sprintf(format, args...)}
}

// SourceError is returned when a source contributes no valid entries.
// Errors holds every rejected line of that source.
type SourceError struct {
	Source string
	Errors []*ParseError
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v (%d invalid lines)", e.Source, ErrNoValidEntries, len(e.Errors))
}

func (e *SourceError) Unwrap() error {
	return ErrNoValidEntries
}
