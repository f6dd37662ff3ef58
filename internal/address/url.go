// Package address implements the canonical addressing of resources across
// the application's backends: the local filesystem, the synthetic search
// namespace, virtually opened archives and named remote connections. A [URL]
// couples a [location.Location] with a [Scheme] and an opaque fragment; it
// parses from and serializes to a single wire string, navigates its backend
// hierarchy, and defines the equality/hash contract that lets addresses act
// as identity keys across the rest of the application.
package address

import (
	"fmt"
	"strings"

	"github.com/uncrr/locus/internal/location"
)

// URL is the uniform address of a resource in one of the backends. The zero
// value is the empty regular address. URLs are plain values: deriving ones
// (joins, parents, conversions) copies, and [URL.SetName] is the sole
// in-place mutation.
type URL struct {
	loc    location.Location
	scheme Scheme
	frag   string
}

// Local wraps a bare filesystem path as a regular [URL].
func Local(path string) URL {
	return URL{loc: location.New(path)}
}

// Parse decodes the wire form of a [URL]. The scheme prefix is consumed
// first; a regular remainder is taken verbatim as the location, while the
// remainder of any other scheme is split on the first literal '#' into a
// percent-decoded location and a percent-decoded fragment. No partial [URL]
// is ever produced.
func Parse(text string) (URL, error) {
	scheme, skip, err := ParseScheme([]byte(text))
	if err != nil {
		return URL{}, err
	}
	rest := text[skip:]

	if scheme.kind == SchemeRegular {
		if err := validText(rest); err != nil {
			return URL{}, err
		}

		return URL{loc: location.New(rest), scheme: scheme}, nil
	}

	locPart, fragPart, hasFrag := strings.Cut(rest, "#")

	locText := percentDecode(locPart)
	if err := validText(locText); err != nil {
		return URL{}, err
	}

	var frag string
	if hasFrag {
		frag = percentDecode(fragPart)
		if err := validText(frag); err != nil {
			return URL{}, err
		}
	}

	return URL{loc: location.New(locText), scheme: scheme, frag: frag}, nil
}

// String returns the wire form of the [URL]. Regular and search-item
// addresses print their bare location text, unprefixed and unencoded, so a
// search item is wire-indistinguishable from the plain file it matched.
// Every other scheme prints its prefix, the percent-encoded location and,
// when non-empty, a '#' followed by the percent-encoded fragment.
func (u URL) String() string {
	if u.scheme.regularClass() {
		return u.loc.String()
	}

	var b strings.Builder
	b.WriteString(u.scheme.String())
	b.WriteString(percentEncode(u.loc.String()))

	if u.frag != "" {
		b.WriteByte('#')
		b.WriteString(percentEncode(u.frag))
	}

	return b.String()
}

// Loc returns the [location.Location] of the [URL].
func (u URL) Loc() location.Location {
	return u.loc
}

// Scheme returns the [Scheme] of the [URL].
func (u URL) Scheme() Scheme {
	return u.scheme
}

// Fragment returns the raw fragment of the [URL]: the query for a search
// container, opaque for everything else.
func (u URL) Fragment() string {
	return u.frag
}

// IsRegular reports whether the [URL] addresses the local filesystem.
func (u URL) IsRegular() bool {
	return u.scheme.kind == SchemeRegular
}

// IsSearch reports whether the [URL] addresses a search-results container.
func (u URL) IsSearch() bool {
	return u.scheme.kind == SchemeSearch
}

// IsArchive reports whether the [URL] addresses a virtually opened archive.
func (u URL) IsArchive() bool {
	return u.scheme.kind == SchemeArchive
}

// ToRegular returns the [URL] relabeled as a regular address, dropping the
// scheme and fragment but keeping the location.
func (u URL) ToRegular() URL {
	return URL{loc: u.loc}
}

// ToSearch returns the [URL] relabeled as a search container carrying frag
// as its query.
func (u URL) ToSearch(frag string) URL {
	return URL{loc: u.loc, scheme: Scheme{kind: SchemeSearch}, frag: frag}
}

// AsPath returns the location as a plain filesystem path. Only regular and
// search addresses are path-expressible; archive and remote entries are not
// directly paths in this model.
func (u URL) AsPath() (string, bool) {
	if u.scheme.kind == SchemeRegular || u.scheme.kind == SchemeSearch {
		return u.loc.String(), true
	}

	return "", false
}

// SetName renames the final path segment in place. This is the only mutation
// a [URL] supports.
func (u *URL) SetName(name string) {
	u.loc = u.loc.WithName(name)
}

// Rebase re-anchors a regular [URL] under a new parent directory. Calling it
// on any other scheme is a programming error and panics.
func (u URL) Rebase(parent string) URL {
	if u.scheme.kind != SchemeRegular {
		panic("address: Rebase requires a regular URL")
	}

	return URL{loc: u.loc.Rebase(parent)}
}

// Pair splits the [URL] into its parent and the [location.Urn] identifying
// the resource inside that parent, reporting false at a root.
func (u URL) Pair() (URL, location.Urn, bool) {
	parent, ok := u.ParentURL()
	if !ok {
		return URL{}, "", false
	}

	return parent, u.loc.Urn(), true
}

// validText rejects decoded bytes that cannot be platform path text.
func validText(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("(address-parse) %w: %q", ErrInvalidText, s)
	}

	return nil
}
