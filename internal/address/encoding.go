package address

import (
	"strings"
)

const upperhex = "0123456789ABCDEF"

// needsEscape reports whether b must be percent-encoded on the wire: the C0
// control bytes, DEL, and '#', which would otherwise read as the fragment
// separator. Everything else passes through, '/' included.
func needsEscape(b byte) bool {
	return b <= 0x1f || b == 0x7f || b == '#'
}

// percentEncode escapes the wire-unsafe bytes of s. The input is returned
// as-is when nothing needs escaping.
func percentEncode(s string) string {
	hits := 0

	for i := range len(s) {
		if needsEscape(s[i]) {
			hits++
		}
	}

	if hits == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*hits)

	for i := range len(s) {
		c := s[i]

		if needsEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		} else {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// percentDecode resolves every %XX escape in s, upper or lower case. A '%'
// not followed by two hex digits is no escape and passes through verbatim.
func percentDecode(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])

			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2

				continue
			}
		}

		b.WriteByte(c)
	}

	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

// MarshalText implements [encoding.TextMarshaler], emitting the wire form of
// the [URL].
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], parsing the wire form
// of a [URL].
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*u = parsed

	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler]. The binary form is
// the wire text.
func (u URL) MarshalBinary() ([]byte, error) {
	return u.MarshalText()
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (u *URL) UnmarshalBinary(data []byte) error {
	return u.UnmarshalText(data)
}
