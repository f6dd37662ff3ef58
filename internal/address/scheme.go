package address

import (
	"bytes"
	"fmt"
	"strings"
)

// SchemeKind enumerates the closed set of backends a [URL] can address.
// Every operation on a [URL] switches over it; a new backend must be wired
// through all of them.
type SchemeKind uint8

const (
	// SchemeRegular addresses a plain local filesystem entry.
	SchemeRegular SchemeKind = iota

	// SchemeSearch addresses the root container of search results.
	SchemeSearch

	// SchemeSearchItem addresses a match inside a [SchemeSearch] container,
	// interpreted relative to its recorded base.
	SchemeSearchItem

	// SchemeArchive addresses an entry of a virtually opened archive.
	SchemeArchive

	// SchemeSftp addresses an entry reachable over a named remote connection.
	SchemeSftp
)

// String returns the bare label of the [SchemeKind].
func (k SchemeKind) String() string {
	switch k {
	case SchemeRegular:
		return "regular"
	case SchemeSearch:
		return "search"
	case SchemeSearchItem:
		return "search_item"
	case SchemeArchive:
		return "archive"
	case SchemeSftp:
		return "sftp"
	}

	return "unknown"
}

// Scheme tags which backend a [URL] addresses. The zero value is the regular
// local filesystem. Only [SchemeSftp] carries data: its connection name.
type Scheme struct {
	kind SchemeKind
	name string
}

// RegularScheme returns the [Scheme] of the local filesystem.
func RegularScheme() Scheme {
	return Scheme{}
}

// SearchScheme returns the [Scheme] of a search-results container.
func SearchScheme() Scheme {
	return Scheme{kind: SchemeSearch}
}

// SearchItemScheme returns the [Scheme] of a match inside a search container.
func SearchItemScheme() Scheme {
	return Scheme{kind: SchemeSearchItem}
}

// ArchiveScheme returns the [Scheme] of a virtually opened archive.
func ArchiveScheme() Scheme {
	return Scheme{kind: SchemeArchive}
}

// SftpScheme returns the [Scheme] of a named remote connection, validating
// the connection name (non-empty, ASCII alphanumeric and dashes only).
func SftpScheme(name string) (Scheme, error) {
	if err := validateSchemeName(name); err != nil {
		return Scheme{}, err
	}

	return Scheme{kind: SchemeSftp, name: name}, nil
}

// ParseScheme consumes a literal "<name>://" prefix from b, returning the
// recognized [Scheme] and the number of bytes consumed. Input without a
// "://" separator is the regular scheme with zero consumed bytes. The sftp
// scheme additionally consumes its connection name up to and including a
// terminating slash. A "search_item" prefix is deliberately not recognized:
// search items have no standalone textual form.
func ParseScheme(b []byte) (Scheme, int, error) {
	idx := bytes.Index(b, []byte("://"))
	if idx < 0 {
		return Scheme{}, 0, nil
	}

	rest := b[idx+len("://"):]

	switch string(b[:idx]) {
	case "regular":
		return Scheme{}, len("regular://"), nil
	case "search":
		return Scheme{kind: SchemeSearch}, len("search://"), nil
	case "archive":
		return Scheme{kind: SchemeArchive}, len("archive://"), nil
	case "sftp":
		name, skip, err := parseSchemeName(rest)
		if err != nil {
			return Scheme{}, 0, err
		}

		return Scheme{kind: SchemeSftp, name: name}, len("sftp://") + skip, nil
	default:
		return Scheme{}, 0, fmt.Errorf("(address-scheme) %w: %s", ErrUnknownScheme, string(b))
	}
}

// parseSchemeName reads a connection name terminated by a slash or the end
// of input, reporting how many bytes it consumed (the slash included).
func parseSchemeName(b []byte) (string, int, error) {
	end := bytes.IndexByte(b, '/')

	skip := 0
	name := b
	if end >= 0 {
		name = b[:end]
		skip = 1
	}

	if err := validateSchemeName(string(name)); err != nil {
		return "", 0, err
	}

	return string(name), len(name) + skip, nil
}

func validateSchemeName(name string) error {
	if name == "" {
		return fmt.Errorf("(address-scheme) %w", ErrSchemeNameEmpty)
	}

	for i := range len(name) {
		if !isSchemeNameByte(name[i]) {
			return fmt.Errorf("(address-scheme) %w: %s", ErrSchemeNameInvalid, name)
		}
	}

	return nil
}

func isSchemeNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}

// Kind returns the backend tag of the [Scheme].
func (s Scheme) Kind() SchemeKind {
	return s.kind
}

// Name returns the remote connection name, empty for every kind but
// [SchemeSftp].
func (s Scheme) Name() string {
	return s.name
}

// String returns the textual prefix of the [Scheme]. It is the exact inverse
// of [ParseScheme] for every kind except [SchemeSearchItem], whose form
// exists for diagnostics only.
func (s Scheme) String() string {
	switch s.kind {
	case SchemeRegular:
		return "regular://"
	case SchemeSearch:
		return "search://"
	case SchemeSearchItem:
		return "search_item://"
	case SchemeArchive:
		return "archive://"
	case SchemeSftp:
		return "sftp://" + s.name + "/"
	}

	return "unknown://"
}

// Equal reports whether both Schemes tag the same backend, the connection
// name included.
func (s Scheme) Equal(other Scheme) bool {
	return s.kind == other.kind && s.name == other.name
}

// Compare orders Schemes by kind, then by connection name.
func (s Scheme) Compare(other Scheme) int {
	if s.kind != other.kind {
		if s.kind < other.kind {
			return -1
		}

		return 1
	}

	return strings.Compare(s.name, other.name)
}

// regularClass reports whether the [Scheme] belongs to the {regular,
// search_item} identity class: both address a plain file at their location.
func (s Scheme) regularClass() bool {
	return s.kind == SchemeRegular || s.kind == SchemeSearchItem
}
