package address

import (
	"github.com/uncrr/locus/internal/location"
)

// Base returns the [URL] of the logical container the address was rooted in:
// the recorded base anchor of its location under the same scheme. A search
// item collapses onto its search container, since that is the only hierarchy
// it can be rooted in. The fragment is never carried over.
func (u URL) Base() URL {
	loc := location.New(u.loc.Base())

	if u.scheme.kind == SchemeSearchItem {
		return URL{loc: loc, scheme: Scheme{kind: SchemeSearch}}
	}

	return URL{loc: loc, scheme: u.scheme}
}

// Join returns the [URL] of rel resolved under the address. Joining below a
// search container produces a search item whose base anchor is the container
// itself; joining below a search item keeps the item's existing base anchor,
// so the anchor never drifts across repeated joins. Every other scheme joins
// plainly and keeps its scheme. The fragment is never carried over.
func (u URL) Join(rel string) URL {
	joined := u.loc.Join(rel)

	switch u.scheme.kind {
	case SchemeSearch:
		return URL{
			loc:    location.WithBase(u.loc.String(), joined),
			scheme: Scheme{kind: SchemeSearchItem},
		}
	case SchemeSearchItem:
		return URL{
			loc:    location.WithBase(u.loc.Base(), joined),
			scheme: Scheme{kind: SchemeSearchItem},
		}
	default:
		return URL{loc: location.New(joined), scheme: u.scheme}
	}
}

// ParentURL returns the [URL] of the parent, reporting false at a root. A
// search item whose parent is its recorded base anchor demotes to the search
// container itself; above that it stays a search item on the same anchor.
// The fragment is never carried over.
func (u URL) ParentURL() (URL, bool) {
	base := u.loc.Base()

	parent, ok := u.loc.Parent()
	if !ok {
		return URL{}, false
	}

	switch u.scheme.kind {
	case SchemeSearchItem:
		if parent == base {
			return URL{loc: location.New(parent), scheme: Scheme{kind: SchemeSearch}}, true
		}

		return URL{
			loc:    location.WithBase(base, parent),
			scheme: Scheme{kind: SchemeSearchItem},
		}, true
	case SchemeArchive:
		// TODO: record the archive root on the location so the parent of
		// an entry can stay inside the archive instead of degrading to a
		// plain filesystem address.
		return URL{loc: location.New(parent)}, true
	default:
		return URL{loc: location.New(parent), scheme: u.scheme}, true
	}
}
