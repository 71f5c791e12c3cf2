package subpath

import (
	"strings"
)

// Subpaths follow the Unix file system hierarchy.
const Sep = "/"

// Dot is the canonical form of the current directory, the zero-component subpath.
const Dot = "./."

// Check reports whether path is eligible for subpath processing. It rejects
// the empty string and anything starting with a slash; absolute paths are the
// host's native path type and are never accepted here. op labels the calling
// operation in the returned *Error and defaults to "check" when empty.
func Check(op, path string) error {
	switch {
	case path == "":
		return newError(op, "check", path, ErrEmptyPath)
	case strings.HasPrefix(path, Sep):
		return newError(op, "check", path, ErrAbsolutePath)
	}
	return nil
}

// IsValid reports whether Normalize would accept path.
func IsValid(path string) bool {
	if err := Check("", path); err != nil {
		return false
	}
	return !hasParentRef(path)
}

// Components splits path into its ordered components, collapsing separator and
// dot-segment noise as it goes: runs of slashes count as one separator, "."
// segments are dropped wherever they appear, and the literal input "." yields
// an empty slice. Any ".." segment is a hard error. The operation either fully
// succeeds or fully fails; there is no partial result.
func Components(op, path string) ([]string, error) {
	if err := Check(op, path); err != nil {
		return nil, err
	}

	parts := strings.Split(path, Sep)
	components := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".":
			// separator noise
		case "..":
			return nil, newError(op, "components", path, ErrParentRef)
		default:
			components = append(components, part)
		}
	}
	return components, nil
}

// FromComponents renders a component sequence in canonical form: "./." for the
// empty sequence, otherwise "./" followed by the components joined with single
// slashes. It assumes each component is nonempty, slash-free and not "." or
// ".." — the invariant Components establishes — and does not re-validate.
func FromComponents(components ...string) string {
	if len(components) == 0 {
		return Dot
	}
	return "./" + strings.Join(components, Sep)
}

// Normalize returns the canonical form of path, or a *Error describing why the
// input was rejected. It is idempotent, and two valid inputs normalize to the
// same string exactly when they denote the same file in a symlink-free tree.
func Normalize(op, path string) (string, error) {
	if op == "" {
		op = "normalize"
	}
	components, err := Components(op, path)
	if err != nil {
		return "", err
	}
	return FromComponents(components...), nil
}

// Join normalizes each path and concatenates their components into a single
// canonical subpath. With no arguments it returns the current directory. The
// first invalid argument aborts the whole join.
func Join(op string, paths ...string) (string, error) {
	if op == "" {
		op = "join"
	}
	var joined []string
	for _, path := range paths {
		components, err := Components(op, path)
		if err != nil {
			return "", err
		}
		joined = append(joined, components...)
	}
	return FromComponents(joined...), nil
}

func hasParentRef(path string) bool {
	for _, part := range strings.Split(path, Sep) {
		if part == ".." {
			return true
		}
	}
	return false
}
