// Package subpath implements canonical handling of subpaths: slash-separated
// relative path strings that address files inside a datasite or other rooted tree.
//
// A subpath is pure syntax. Nothing in this package touches a filesystem,
// resolves symlinks, or checks that a path exists; every operation is a
// deterministic string transformation and is safe to call concurrently.
//
// Every valid subpath has exactly one canonical form: it starts with "./",
// contains no repeated slashes, no "." or ".." components, and no trailing
// slash. The current directory is rendered as "./.". Two subpaths denote the
// same file (absent symlinks) if and only if their canonical forms are equal,
// so canonical subpaths can be compared, deduplicated and used as map keys
// directly.
//
// Inputs that are empty, absolute (leading "/"), or contain a ".." component
// are rejected with a typed *Error. Parent references are never resolved:
// doing that correctly would require symlink-aware filesystem access, which
// this package deliberately does not have.
package subpath
