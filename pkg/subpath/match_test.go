package subpath

import (
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"exact", "foo/bar", "foo/bar", true},
		{"exact against noisy input", "foo/bar", "./foo//bar/.", true},
		{"star", "*.csv", "data.csv", true},
		{"star is single level", "*.csv", "datasets/data.csv", false},
		{"doublestar", "docs/**", "docs/a/b/c.md", true},
		{"doublestar any depth", "**/*.txt", "a/b/c.txt", true},
		{"current directory", ".", ".", true},
		{"no match", "foo/*", "bar/baz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match("", tt.pattern, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch_Errors(t *testing.T) {
	_, err := Match("aclEval", "*", "../escape")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParentRef)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "aclEval", perr.Op)

	_, err = Match("", "[", "foo")
	assert.ErrorIs(t, err, doublestar.ErrBadPattern)
}
