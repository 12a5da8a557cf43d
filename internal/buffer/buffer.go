// Package buffer provides the growable byte buffer backing formatted strings.
package buffer

// Buffer is a growable byte slice with in-place range replacement.
//
// It is the storage behind a formatted string: a small, owned byte sequence
// that is mostly read, occasionally spliced. Index validation panics rather
// than returning errors, as callers are expected to pass ranges derived from
// span bookkeeping that is valid by construction.
type Buffer struct {
	// B is the underlying byte slice.
	B []byte
}

// From creates a Buffer holding a copy of data.
func From(data []byte) Buffer {
	b := make([]byte, len(data))
	copy(b, data)

	return Buffer{B: b}
}

// FromString creates a Buffer holding a copy of value.
func FromString(value string) Buffer {
	return Buffer{B: []byte(value)}
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Len returns the length of the buffer.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() Buffer {
	return From(b.B)
}

// Splice replaces the bytes in [start, end) with repl, shifting the tail of
// the buffer by the length difference and growing the allocation if needed.
// Panics if the range is out of bounds.
func (b *Buffer) Splice(start, end int, repl []byte) {
	if start < 0 || end < start || end > len(b.B) {
		panic("buffer: splice range out of bounds")
	}

	oldN := len(b.B)
	newN := oldN - (end - start) + len(repl)

	if newN > cap(b.B) {
		nb := make([]byte, newN, grow(newN))
		copy(nb, b.B[:start])
		copy(nb[start:], repl)
		copy(nb[start+len(repl):], b.B[end:])
		b.B = nb

		return
	}

	if newN > oldN {
		b.B = b.B[:newN]
	}

	// copy is memmove-safe, so the tail can shift in either direction.
	copy(b.B[start+len(repl):], b.B[end:oldN])
	copy(b.B[start:], repl)

	if newN < oldN {
		b.B = b.B[:newN]
	}
}

// grow returns the capacity for a reallocation holding n bytes, padding
// small buffers so repeated component updates amortize.
func grow(n int) int {
	if n < 64 {
		return 64
	}

	return n + n/4
}
