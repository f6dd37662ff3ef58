// Package location provides the hierarchical path primitive underneath the
// address types. A [Location] is a path together with a recorded base anchor,
// marking where its containing hierarchy was rooted; the suffix below the
// anchor is the [Urn], a stable local identifier usable as a directory-entry
// key. Locations are plain immutable values, cheap to copy and free of any
// filesystem access.
package location

import (
	"path/filepath"
	"strings"
)

// Location is a hierarchical path with a recorded base anchor.
//
// The zero value is the empty path. The base anchor is derived metadata and
// never part of a Location's identity; use [Location.Equal] for comparisons.
type Location struct {
	path string
	base int
}

// New returns a [Location] for path, anchored at its parent directory.
func New(path string) Location {
	path = trimTrailing(path)

	return Location{path: path, base: anchorOf(path)}
}

// WithBase returns a [Location] for path, anchored at base. The base must be
// an ancestor of path (or path itself); otherwise the anchor falls back to
// the parent directory, as with [New].
func WithBase(base string, path string) Location {
	base = trimTrailing(base)
	path = trimTrailing(path)

	if !anchors(base, path) {
		return New(path)
	}

	return Location{path: path, base: len(base)}
}

// String returns the path text of the [Location].
func (l Location) String() string {
	return l.path
}

// IsEmpty reports whether the [Location] holds the empty path.
func (l Location) IsEmpty() bool {
	return l.path == ""
}

// Base returns the recorded base anchor of the [Location].
func (l Location) Base() string {
	return l.path[:l.base]
}

// Urn returns the path suffix below the base anchor as a [Urn].
func (l Location) Urn() Urn {
	return Urn(strings.TrimPrefix(l.path[l.base:], "/"))
}

// Name returns the final path segment, or an empty string when there is none
// (roots and the empty path).
func (l Location) Name() string {
	if l.path == "" {
		return ""
	}

	name := filepath.Base(l.path)
	if name == "/" || name == "." {
		return ""
	}

	return name
}

// Parent returns the parent directory of the path, reporting false at a root
// or on the empty path.
func (l Location) Parent() (string, bool) {
	if l.path == "" {
		return "", false
	}

	parent := filepath.Dir(l.path)
	if parent == l.path {
		return "", false
	}

	return parent, true
}

// Join returns the path extended by elem, as path text. The result is
// lexically cleaned; anchoring the result is the caller's choice, via [New]
// or [WithBase].
func (l Location) Join(elem string) string {
	return filepath.Join(l.path, elem)
}

// Rebase re-anchors the [Location] under a new parent, carrying the [Urn]
// suffix over.
func (l Location) Rebase(parent string) Location {
	parent = trimTrailing(parent)

	return WithBase(parent, filepath.Join(parent, string(l.Urn())))
}

// WithName returns the [Location] with its final path segment replaced by
// name. The name must be a bare segment without separators. The base anchor
// is kept whenever it remains an ancestor of the renamed path.
func (l Location) WithName(name string) Location {
	parent := filepath.Dir(l.path)
	if l.path == "" {
		parent = ""
	}

	renamed := filepath.Join(parent, name)
	if base := l.Base(); anchors(base, renamed) {
		return Location{path: renamed, base: len(base)}
	}

	return New(renamed)
}

// Equal reports whether both Locations hold the same path text. The base
// anchor does not participate.
func (l Location) Equal(other Location) bool {
	return l.path == other.path
}

// Compare lexically orders two Locations by their path text, returning -1, 0
// or +1. The base anchor does not participate.
func (l Location) Compare(other Location) int {
	return strings.Compare(l.path, other.path)
}

// anchorOf computes the default anchor length for path: the byte length of
// its parent-directory prefix, or 0 when the path holds no separator.
func anchorOf(path string) int {
	idx := strings.LastIndexByte(path, '/')

	switch {
	case idx < 0:
		return 0
	case idx == 0:
		// The parent is the root itself, keep its separator.
		return 1
	default:
		return idx
	}
}

// anchors reports whether base is a valid anchor prefix of path, honoring
// segment boundaries.
func anchors(base string, path string) bool {
	if base == "" || !strings.HasPrefix(path, base) {
		return false
	}

	return len(path) == len(base) || path[len(base)] == '/' || strings.HasSuffix(base, "/")
}

// trimTrailing removes trailing path separators, keeping a lone root intact.
func trimTrailing(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		return "/"
	}

	return trimmed
}
