package subpath

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Match reports whether the canonical form of path matches the doublestar glob
// pattern. The pattern is matched against the slash-joined components without
// the "./" prefix ("." for the zero-component subpath), so patterns read the
// way they do in ignore files: "docs/**", "*.csv", "datasets/*/manifest.yaml".
// An invalid subpath yields a *Error; a malformed pattern yields
// doublestar.ErrBadPattern.
func Match(op, pattern, path string) (bool, error) {
	if op == "" {
		op = "match"
	}
	components, err := Components(op, path)
	if err != nil {
		return false, err
	}

	name := strings.Join(components, Sep)
	if name == "" {
		name = "."
	}
	return doublestar.Match(pattern, name)
}
