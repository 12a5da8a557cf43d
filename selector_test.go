package zrx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zensical/zrx/errs"
)

func TestNewSelector(t *testing.T) {
	selector := NewSelector()
	require.Equal(t, "zrs:::::", selector.String())

	for _, accessor := range []func() (string, bool){
		selector.Scheme,
		selector.Binding,
		selector.Context,
		selector.Path,
		selector.Fragment,
	} {
		value, ok := accessor()
		require.False(t, ok)
		require.Empty(t, value)
	}
}

func TestParseSelector(t *testing.T) {
	selector, err := ParseSelector("zrs::::**/*.md:")
	require.NoError(t, err)

	path, ok := selector.Path()
	require.True(t, ok)
	require.Equal(t, "**/*.md", path)

	_, ok = selector.Scheme()
	require.False(t, ok)
}

func TestParseSelector_Prefix(t *testing.T) {
	_, err := ParseSelector("zri:file::docs:index.md:")
	require.ErrorIs(t, err, errs.ErrPrefix)
}

func TestParseSelector_Cardinality(t *testing.T) {
	_, err := ParseSelector("zrs::::")
	require.ErrorIs(t, err, errs.ErrCardinality)
}

func TestSelector_Setters(t *testing.T) {
	selector := NewSelector()
	require.NoError(t, selector.SetScheme("git"))
	require.NoError(t, selector.SetBinding("release/*"))
	require.NoError(t, selector.SetContext("src"))
	require.NoError(t, selector.SetPath("**/*.go"))
	require.NoError(t, selector.SetFragment("?"))

	require.Equal(t, "zrs:git:release/*:src:**/*.go:?", selector.String())

	binding, ok := selector.Binding()
	require.True(t, ok)
	require.Equal(t, "release/*", binding)

	// Clearing a component resets it to a wildcard.
	require.NoError(t, selector.SetBinding(""))
	_, ok = selector.Binding()
	require.False(t, ok)
}

func TestSelector_Setters_Backslash(t *testing.T) {
	selector := NewSelector()
	require.ErrorIs(t, selector.SetPath("a\\b"), errs.ErrBackslash)
	require.Equal(t, "zrs:::::", selector.String())
}

func TestSelector_RoundTrip(t *testing.T) {
	selector := NewSelector()
	require.NoError(t, selector.SetPath("**/*.md"))

	parsed, err := ParseSelector(selector.String())
	require.NoError(t, err)
	require.True(t, selector.Equal(parsed))
}

func TestSelector_Clone(t *testing.T) {
	selector := NewSelector()
	require.NoError(t, selector.SetScheme("file"))

	clone := selector.Clone()
	require.NoError(t, clone.SetScheme("git"))

	scheme, _ := selector.Scheme()
	require.Equal(t, "file", scheme)
	scheme, _ = clone.Scheme()
	require.Equal(t, "git", scheme)
}

func TestSelector_TextMarshaling(t *testing.T) {
	selector, err := ParseSelector("zrs:git:::**/*.go:")
	require.NoError(t, err)

	text, err := selector.MarshalText()
	require.NoError(t, err)

	var out Selector
	require.NoError(t, out.UnmarshalText(text))
	require.True(t, selector.Equal(&out))
}
