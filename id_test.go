package zrx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zensical/zrx/errs"
)

func TestNewID(t *testing.T) {
	id, err := NewID("file", "docs", "index.md")
	require.NoError(t, err)
	require.Equal(t, "zri:file::docs:index.md:", id.String())
}

func TestNewID_Backslash(t *testing.T) {
	_, err := NewID("file\\x", "docs", "index.md")
	require.ErrorIs(t, err, errs.ErrBackslash)

	_, err = NewID("file", "docs\\sub", "index.md")
	require.ErrorIs(t, err, errs.ErrBackslash)

	_, err = NewID("file", "docs", "sub\\index.md")
	require.ErrorIs(t, err, errs.ErrBackslash)
}

func TestNewID_EmptyComponent(t *testing.T) {
	_, err := NewID("", "docs", "index.md")
	require.ErrorIs(t, err, errs.ErrComponent)

	_, err = NewID("file", "", "index.md")
	require.ErrorIs(t, err, errs.ErrComponent)

	_, err = NewID("file", "docs", "")
	require.ErrorIs(t, err, errs.ErrComponent)
}

func TestNewID_Escaped(t *testing.T) {
	// Components containing the separator are percent-encoded on write and
	// decoded on read.
	id, err := NewID("file", "docs", "a:b")
	require.NoError(t, err)
	require.Equal(t, "zri:file::docs:a%3Ab:", id.String())
	require.Equal(t, "a:b", id.Path())
}

func TestParseID(t *testing.T) {
	id, err := ParseID("zri:file::docs:index.md:")
	require.NoError(t, err)

	require.Equal(t, "file", id.Scheme())
	require.Equal(t, "docs", id.Context())
	require.Equal(t, "index.md", id.Path())

	binding, ok := id.Binding()
	require.False(t, ok)
	require.Empty(t, binding)

	fragment, ok := id.Fragment()
	require.False(t, ok)
	require.Empty(t, fragment)
}

func TestParseID_Full(t *testing.T) {
	id, err := ParseID("zri:git:main:docs:index.md:42")
	require.NoError(t, err)

	binding, ok := id.Binding()
	require.True(t, ok)
	require.Equal(t, "main", binding)

	fragment, ok := id.Fragment()
	require.True(t, ok)
	require.Equal(t, "42", fragment)
}

func TestParseID_Cardinality(t *testing.T) {
	// Only four separators for a six-span schema.
	_, err := ParseID("zri:file:docs:index.md:")
	require.ErrorIs(t, err, errs.ErrCardinality)

	_, err = ParseID("zri:file::docs:index.md::")
	require.ErrorIs(t, err, errs.ErrCardinality)
}

func TestParseID_Prefix(t *testing.T) {
	_, err := ParseID("zrs:file::docs:index.md:")
	require.ErrorIs(t, err, errs.ErrPrefix)

	_, err = ParseID("zrx:file::docs:index.md:")
	require.ErrorIs(t, err, errs.ErrPrefix)
}

func TestParseID_MissingComponent(t *testing.T) {
	_, err := ParseID("zri:::docs:index.md:")
	require.ErrorIs(t, err, errs.ErrComponent)
	require.ErrorContains(t, err, "scheme")

	_, err = ParseID("zri:file:::index.md:")
	require.ErrorIs(t, err, errs.ErrComponent)
	require.ErrorContains(t, err, "context")

	_, err = ParseID("zri:file::docs::")
	require.ErrorIs(t, err, errs.ErrComponent)
	require.ErrorContains(t, err, "path")
}

func TestParseID_Backslash(t *testing.T) {
	_, err := ParseID("zri:file::docs:sub\\index.md:")
	require.ErrorIs(t, err, errs.ErrBackslash)
}

func TestID_RoundTrip(t *testing.T) {
	for _, tc := range [][3]string{
		{"file", "docs", "index.md"},
		{"git", "src", "a/b/c.go"},
		{"file", "docs", "a:b"},
		{"file", "with space", "ünïcode.md"},
	} {
		id, err := NewID(tc[0], tc[1], tc[2])
		require.NoError(t, err)

		parsed, err := ParseID(id.String())
		require.NoError(t, err)
		require.True(t, id.Equal(parsed), "round-trip %q", id.String())
		require.Equal(t, tc[0], parsed.Scheme())
		require.Equal(t, tc[1], parsed.Context())
		require.Equal(t, tc[2], parsed.Path())
	}
}

func TestID_Setters(t *testing.T) {
	id, err := NewID("file", "docs", "index.md")
	require.NoError(t, err)

	require.NoError(t, id.SetScheme("git"))
	require.NoError(t, id.SetBinding("main"))
	require.NoError(t, id.SetContext("src"))
	require.NoError(t, id.SetPath("README.md"))
	require.NoError(t, id.SetFragment("intro"))

	require.Equal(t, "zri:git:main:src:README.md:intro", id.String())
	require.Equal(t, "git", id.Scheme())

	binding, ok := id.Binding()
	require.True(t, ok)
	require.Equal(t, "main", binding)

	// Clearing an optional component makes it absent again.
	require.NoError(t, id.SetBinding(""))
	_, ok = id.Binding()
	require.False(t, ok)
}

func TestID_Setters_Backslash(t *testing.T) {
	id, err := NewID("file", "docs", "index.md")
	require.NoError(t, err)

	before := id.String()
	require.ErrorIs(t, id.SetPath("a\\b"), errs.ErrBackslash)
	require.Equal(t, before, id.String())
}

func TestID_SetPath_Escaped(t *testing.T) {
	id, err := NewID("file", "docs", "index.md")
	require.NoError(t, err)

	require.NoError(t, id.SetPath("a:b"))
	require.Contains(t, id.String(), "%3A")
	require.Equal(t, "a:b", id.Path())

	// The fragment span shifted correctly past the escaped path.
	require.NoError(t, id.SetFragment("anchor"))
	require.Equal(t, "zri:file::docs:a%3Ab:anchor", id.String())
}

func TestID_EqualityOnRawBytes(t *testing.T) {
	// Differently-escaped spellings of the same logical path are distinct
	// identifiers. Deliberate: comparison operates on encoded bytes.
	a, err := ParseID("zri:file::docs:a%3Ab:")
	require.NoError(t, err)
	b, err := ParseID("zri:file::docs:a%3ab:")
	require.NoError(t, err)

	require.Equal(t, a.Path(), b.Path())
	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Sum64(), b.Sum64())
	require.NotZero(t, a.Compare(b))
}

func TestID_Clone(t *testing.T) {
	id, err := NewID("file", "docs", "index.md")
	require.NoError(t, err)

	clone := id.Clone()
	require.True(t, id.Equal(clone))

	require.NoError(t, clone.SetPath("other.md"))
	require.Equal(t, "index.md", id.Path())
	require.Equal(t, "other.md", clone.Path())
}

func TestID_Ordering(t *testing.T) {
	a, err := NewID("file", "docs", "a.md")
	require.NoError(t, err)
	b, err := NewID("file", "docs", "b.md")
	require.NoError(t, err)

	require.Negative(t, a.Compare(b))
	require.Positive(t, b.Compare(a))
	require.Zero(t, a.Compare(a))
}

func TestID_TextMarshaling(t *testing.T) {
	id, err := NewID("file", "docs", "index.md")
	require.NoError(t, err)

	text, err := id.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "zri:file::docs:index.md:", string(text))

	var out ID
	require.NoError(t, out.UnmarshalText(text))
	require.True(t, id.Equal(&out))

	require.Error(t, out.UnmarshalText([]byte("not an identifier")))
}

func TestID_LongValues(t *testing.T) {
	id, err := NewID("file", "docs", strings.Repeat("a", 1000))
	require.NoError(t, err)
	require.Len(t, id.Path(), 1000)

	// A path pushing the buffer past 16 bits is rejected on parse.
	_, err = NewID("file", "docs", strings.Repeat("a", 70000))
	require.ErrorIs(t, err, errs.ErrLength)
}
