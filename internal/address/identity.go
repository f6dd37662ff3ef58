package address

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Hash tags for the scheme classes that keep their own identity. The regular
// class (regular and search-item addresses) carries no tag, so a search item
// hashes onto the plain file at its location.
const (
	hashTagSearch  byte = 0x01
	hashTagArchive byte = 0x02
	hashTagSftp    byte = 0x03
)

// Equal reports whether two URLs address the same resource. Locations must
// match; regular and search-item addresses collapse into one equivalence
// class, while every other pairing requires strictly equal schemes, remote
// connection name included. The fragment never participates, so two search
// containers over the same location are equal regardless of their queries.
func (u URL) Equal(other URL) bool {
	if u.scheme.regularClass() && other.scheme.regularClass() {
		return u.loc.Equal(other.loc)
	}

	return u.loc.Equal(other.loc) && u.scheme.Equal(other.scheme)
}

// Compare orders two URLs by location, then scheme, then fragment, returning
// -1, 0 or +1. The order is finer than [URL.Equal]: it distinguishes the
// regular and search-item schemes that Equal collapses, and it sees the
// fragment that Equal ignores.
func (u URL) Compare(other URL) int {
	if c := u.loc.Compare(other.loc); c != 0 {
		return c
	}

	if c := u.scheme.Compare(other.scheme); c != 0 {
		return c
	}

	switch {
	case u.frag < other.frag:
		return -1
	case u.frag > other.frag:
		return 1
	default:
		return 0
	}
}

// HashU64 returns a stable 64-bit identity hash of the [URL], coherent with
// [URL.Equal]: the location always contributes; a search container folds in
// its tag and its fragment, so containers with different queries keep
// distinct identities; archive and remote addresses fold in their tag only,
// never the connection name. The regular class contributes nothing beyond
// the location, collapsing search items onto plain files.
func (u URL) HashU64() uint64 {
	hasher := blake3.New()
	_, _ = hasher.Write([]byte(u.loc.String()))

	switch u.scheme.kind {
	case SchemeSearch:
		_, _ = hasher.Write([]byte{hashTagSearch})
		_, _ = hasher.Write([]byte(u.frag))
	case SchemeArchive:
		_, _ = hasher.Write([]byte{hashTagArchive})
	case SchemeSftp:
		_, _ = hasher.Write([]byte{hashTagSftp})
	}

	return binary.LittleEndian.Uint64(hasher.Sum(nil))
}
