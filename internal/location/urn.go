package location

// Urn is the stable local identifier of a [Location]: its path suffix below
// the base anchor, without a leading separator. Urns are plain comparable
// strings, suitable as directory-entry keys.
type Urn string

// String returns the [Urn] as path text.
func (u Urn) String() string {
	return string(u)
}

// IsEmpty reports whether the [Urn] identifies the anchor itself.
func (u Urn) IsEmpty() bool {
	return u == ""
}
