package format

import "strings"

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether a byte must be percent-encoded inside a
// formatted string: the ':' separator itself and ASCII control characters.
func shouldEscape(c byte) bool {
	return c < 0x20 || c == 0x7F || c == separator
}

// Encode percent-encodes the separator and control characters in value.
//
// The returned flag reports whether any byte was encoded. In the common
// case nothing needs encoding and value is returned unchanged without
// allocating.
func Encode(value string) (string, bool) {
	count := 0
	for i := 0; i < len(value); i++ {
		if shouldEscape(value[i]) {
			count++
		}
	}

	if count == 0 {
		return value, false
	}

	var b strings.Builder
	b.Grow(len(value) + 2*count)

	for i := 0; i < len(value); i++ {
		c := value[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0F])
		} else {
			b.WriteByte(c)
		}
	}

	return b.String(), true
}

// Decode percent-decodes value and returns it as a string.
//
// Decoding is total: a '%' that is not followed by two hexadecimal digits
// passes through literally, and invalid UTF-8 sequences in the result are
// replaced with the Unicode replacement character.
func Decode(value []byte) string {
	var b strings.Builder
	b.Grow(len(value))

	for i := 0; i < len(value); {
		c := value[i]
		if c == '%' && i+2 < len(value) && isHex(value[i+1]) && isHex(value[i+2]) {
			b.WriteByte(unhex(value[i+1])<<4 | unhex(value[i+2]))
			i += 3
		} else {
			b.WriteByte(c)
			i++
		}
	}

	return strings.ToValidUTF8(b.String(), "�")
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}

	return false
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
