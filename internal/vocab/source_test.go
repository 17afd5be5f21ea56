package vocab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSource_SkipsBadLinesAndKeepsGoing(t *testing.T) {
	input := strings.Join([]string{
		"hello;ciao",
		"no separator here",
		"",
		"# a comment",
		"// another comment",
		"the cloud;la nuvola|nube",
		"a;b;c",
		"goodbye;(only a note)",
		"thanks;grazie",
	}, "\n")

	src, err := LoadSource("it.txt", strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, src.Entries, 3)
	assert.Equal(t, "hello;ciao", src.Entries[0].Raw)
	assert.Equal(t, 1, src.Entries[0].Origin.Line)
	assert.Equal(t, "it.txt", src.Entries[0].Origin.File)
	assert.Equal(t, 6, src.Entries[1].Origin.Line)
	assert.Equal(t, 9, src.Entries[2].Origin.Line)
	assert.Equal(t, 3, src.Skipped)

	require.Len(t, src.Errors, 3)
	assert.Equal(t, 2, src.Errors[0].Line)
	assert.ErrorIs(t, src.Errors[0], ErrMalformedEntry)
	assert.Equal(t, "no separator here", src.Errors[0].Raw)
	assert.Equal(t, 7, src.Errors[1].Line)
	assert.ErrorIs(t, src.Errors[1], ErrMalformedEntry)
	assert.Equal(t, 8, src.Errors[2].Line)
	assert.ErrorIs(t, src.Errors[2], ErrEmptyExpansion)
	assert.Contains(t, src.Errors[2].Error(), "it.txt:8:")
}

func TestLoadSource_NoValidEntries(t *testing.T) {
	src, err := LoadSource("bad.txt", strings.NewReader("one\ntwo;\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoValidEntries)

	var serr *SourceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "bad.txt", serr.Source)
	assert.Len(t, serr.Errors, 2)

	require.NotNil(t, src)
	assert.Empty(t, src.Entries)
}

func TestLoadSource_EmptyInput(t *testing.T) {
	_, err := LoadSource("empty.txt", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoValidEntries)
}

func TestLoadSource_StripsByteOrderMark(t *testing.T) {
	src, err := LoadSource("bom.txt", strings.NewReader("\xef\xbb\xbfhello;ciao\n"))
	require.NoError(t, err)
	require.Len(t, src.Entries, 1)
	assert.Equal(t, []string{"hello"}, src.Entries[0].Lang1.Candidates)
}

func TestLoadSource_InvalidUTF8(t *testing.T) {
	src, err := LoadSource("latin1.txt", strings.NewReader("caf\xe9;coffee\nhello;ciao\n"))
	require.NoError(t, err)
	require.Len(t, src.Entries, 1)
	require.Len(t, src.Errors, 1)
	assert.ErrorIs(t, src.Errors[0], ErrMalformedEntry)
	assert.Equal(t, 1, src.Errors[0].Line)
}

func TestLoadSource_WindowsLineEndings(t *testing.T) {
	src, err := LoadSource("crlf.txt", strings.NewReader("hello;ciao\r\nthanks;grazie\r\n"))
	require.NoError(t, err)
	require.Len(t, src.Entries, 2)
	assert.Equal(t, []string{"ciao"}, src.Entries[0].Lang2.Candidates)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello;ciao\n"), 0o644))

	src, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Name)
	require.Len(t, src.Entries, 1)
	assert.Equal(t, path, src.Entries[0].Origin.File)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
