package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		core    string
		notes   []string
		hint    string
		hasHint bool
	}{
		{"no groups", "hello world", "hello world", nil, "", false},
		{"single note", "hello (formal)", "hello", []string{"formal"}, "", false},
		{"note in the middle", "to  (be) good", "to good", []string{"be"}, "", false},
		{"literal hint", "good luck (lit: in the mouth of the wolf)", "good luck", nil, "in the mouth of the wolf", true},
		{"literal hint without space", "x (lit:abc)", "x", nil, "abc", true},
		{"literal prefix is case insensitive", "x (LIT: abc)", "x", nil, "abc", true},
		{"first literal wins", "x (lit: a) (lit: b)", "x", []string{"lit: b"}, "a", true},
		{"several notes", "x (one) (two)", "x", []string{"one", "two"}, "", false},
		{"nested parentheses", "x (a (b) c) y", "x y", []string{"a (b) c"}, "", false},
		{"empty group", "x ()", "x", []string{""}, "", false},
		{"group glued to word", "hello(formal)", "hello", []string{"formal"}, "", false},
		{"lit not at start is a note", "x (see lit: y)", "x", []string{"see lit: y"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.core, got.Core)
			assert.Equal(t, tt.notes, got.Notes)
			assert.Equal(t, tt.hint, got.LiteralHint)
			assert.Equal(t, tt.hasHint, got.HasHint)
		})
	}
}

func TestExtract_Unbalanced(t *testing.T) {
	for _, text := range []string{"x (a", "x a)", "x (a (b)", ")("} {
		_, err := Extract(text)
		assert.ErrorIs(t, err, ErrMalformedEntry, text)
	}
}

func TestExtract_AnnotationJoin(t *testing.T) {
	single, err := Extract("x (one two)")
	require.NoError(t, err)
	double, err := Extract("x (one) (two)")
	require.NoError(t, err)

	assert.Equal(t, "one two", single.Annotation())
	assert.Equal(t, "one; two", double.Annotation())
	assert.NotEqual(t, single.Annotation(), double.Annotation())

	escaped, err := Extract(`x (one\; two)`)
	require.NoError(t, err)
	assert.Equal(t, []string{"one; two"}, escaped.Notes)
	assert.Equal(t, `one\; two`, escaped.Annotation())
	assert.NotEqual(t, double.Annotation(), escaped.Annotation())
}

func TestStripAnnotations(t *testing.T) {
	assert.Equal(t, "hello", StripAnnotations("hello (formal)"))
	assert.Equal(t, "hello (formal", StripAnnotations("  hello   (formal "))
}
